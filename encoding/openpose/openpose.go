// Package openpose implements the person-keypoint interchange format:
// a version-tagged document with one entry per figure carrying the
// keypoints as a flat [x, y, confidence] sequence. Field names, the
// version literal and the flat triple encoding are contractual; third
// party tools parse this byte layout.
package openpose

import (
	"github.com/justinfleek/lattice-pose/pose"
)

// FormatVersion is the interchange schema version tag.
const FormatVersion = 1.3

// Person carries the keypoints of one figure. Coordinates stay in the
// normalized [0,1] space of the input, never pixel units. The face,
// hand and 3D arrays are always present and empty; this pipeline only
// produces body pose, but consumers expect the full field set.
type Person struct {
	PersonID             []int     `json:"person_id"`
	PoseKeypoints2D      []float64 `json:"pose_keypoints_2d"`
	FaceKeypoints2D      []float64 `json:"face_keypoints_2d"`
	HandLeftKeypoints2D  []float64 `json:"hand_left_keypoints_2d"`
	HandRightKeypoints2D []float64 `json:"hand_right_keypoints_2d"`
	PoseKeypoints3D      []float64 `json:"pose_keypoints_3d"`
	FaceKeypoints3D      []float64 `json:"face_keypoints_3d"`
	HandLeftKeypoints3D  []float64 `json:"hand_left_keypoints_3d"`
	HandRightKeypoints3D []float64 `json:"hand_right_keypoints_3d"`
}

// Document is one interchange document: a version tag plus the people
// list in input order.
type Document struct {
	Version float64  `json:"version"`
	People  []Person `json:"people"`
}

// Export flattens poses into an interchange document. Every keypoint
// passes through unfiltered, in index order; there is no visibility
// cutoff at export time. An empty input produces an empty (not null)
// people list.
func Export(poses []pose.Pose) *Document {
	people := make([]Person, 0, len(poses))
	for _, p := range poses {
		people = append(people, newPerson(p))
	}
	return &Document{
		Version: FormatVersion,
		People:  people,
	}
}

func newPerson(p pose.Pose) Person {
	flat := make([]float64, 0, len(p)*3)
	for _, k := range p {
		flat = append(flat, k.X, k.Y, k.Confidence)
	}
	return Person{
		PersonID:             []int{-1},
		PoseKeypoints2D:      flat,
		FaceKeypoints2D:      []float64{},
		HandLeftKeypoints2D:  []float64{},
		HandRightKeypoints2D: []float64{},
		PoseKeypoints3D:      []float64{},
		FaceKeypoints3D:      []float64{},
		HandLeftKeypoints3D:  []float64{},
		HandRightKeypoints3D: []float64{},
	}
}

// Poses converts the document back into the in-memory model, one pose
// per person, triples unpacked in order.
func (d *Document) Poses() []pose.Pose {
	poses := make([]pose.Pose, 0, len(d.People))
	for _, person := range d.People {
		flat := person.PoseKeypoints2D
		p := make(pose.Pose, 0, len(flat)/3)
		for i := 0; i+2 < len(flat); i += 3 {
			p = append(p, pose.Keypoint{
				X:          flat[i],
				Y:          flat[i+1],
				Confidence: flat[i+2],
			})
		}
		poses = append(poses, p)
	}
	return poses
}
