package shell

import (
	"encoding/json"

	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
)

type FrameJSON struct {
	Index     int   `json:"index"`
	People    int   `json:"people"`
	Keypoints []int `json:"keypoints"`
	Visible   []int `json:"visible"`
}

func FrameToJSON(index int, doc *openpose.Document) FrameJSON {
	poses := doc.Poses()

	keypoints := make([]int, len(poses))
	visible := make([]int, len(poses))
	for i, p := range poses {
		keypoints[i] = len(p)
		visible[i] = p.Visible()
	}

	return FrameJSON{
		Index:     index,
		People:    len(poses),
		Keypoints: keypoints,
		Visible:   visible,
	}
}

func displayFramesJSON(c *ishell.Context, docs []*openpose.Document) error {
	jsonFrames := make([]FrameJSON, len(docs))
	for i, doc := range docs {
		jsonFrames[i] = FrameToJSON(i, doc)
	}

	output, err := json.MarshalIndent(jsonFrames, "", "  ")
	if err != nil {
		return err
	}

	c.Println(string(output))
	return nil
}
