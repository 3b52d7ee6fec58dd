package comfy

import "sort"

// Preprocessor describes a remote pose node and its default inputs.
// Only inputs named here are forwarded; unknown caller options are
// dropped rather than sent to the server.
type Preprocessor struct {
	ID             string
	NodeClass      string
	Display        string
	Defaults       map[string]interface{}
	EmitsKeypoints bool
}

// registry holds the pose-relevant preprocessor subset.
var registry = map[string]Preprocessor{
	"openpose": {
		ID:        "openpose",
		NodeClass: "OpenposePreprocessor",
		Display:   "OpenPose",
		Defaults: map[string]interface{}{
			"detect_hand": "enable",
			"detect_body": "enable",
			"detect_face": "enable",
			"resolution":  512,
		},
		EmitsKeypoints: true,
	},
	"dwpose": {
		ID:        "dwpose",
		NodeClass: "DWPreprocessor",
		Display:   "DWPose",
		Defaults: map[string]interface{}{
			"detect_hand":    "enable",
			"detect_body":    "enable",
			"detect_face":    "enable",
			"resolution":     512,
			"bbox_detector":  "yolox_l.onnx",
			"pose_estimator": "dw-ll_ucoco_384_bs5.torchscript.pt",
		},
		EmitsKeypoints: true,
	},
}

// Preprocessors lists the registry sorted by id.
func Preprocessors() []Preprocessor {
	out := make([]Preprocessor, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PreprocessorByID looks a preprocessor up.
func PreprocessorByID(id string) (Preprocessor, bool) {
	p, ok := registry[id]
	return p, ok
}

// BuildWorkflow assembles the three-node graph that runs a
// preprocessor on an uploaded image: LoadImage into the node into
// SaveImage. Nodes that emit keypoints get a fourth node saving the
// keypoint document next to the image.
func BuildWorkflow(p Preprocessor, imageName string, options map[string]interface{}) Workflow {
	inputs := map[string]interface{}{
		"image": []interface{}{"1", 0},
	}
	for k, v := range p.Defaults {
		inputs[k] = v
	}
	for k, v := range options {
		if _, known := p.Defaults[k]; known {
			inputs[k] = v
		}
	}

	wf := Workflow{
		"1": {
			ClassType: "LoadImage",
			Inputs:    map[string]interface{}{"image": imageName},
		},
		"2": {
			ClassType: p.NodeClass,
			Inputs:    inputs,
		},
		"3": {
			ClassType: "SaveImage",
			Inputs: map[string]interface{}{
				"images":          []interface{}{"2", 0},
				"filename_prefix": "preprocess_" + p.ID,
			},
		},
	}

	if p.EmitsKeypoints {
		wf["4"] = Node{
			ClassType: "SavePoseKpsAsJsonFile",
			Inputs: map[string]interface{}{
				"pose_kps":        []interface{}{"2", 1},
				"filename_prefix": "keypoints_" + p.ID,
			},
		}
	}
	return wf
}
