package openpose

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Frame is a document as emitted by pose preprocessor nodes: the
// interchange fields plus an optional canvas size. When the canvas
// size is present the keypoint coordinates are pixel units relative
// to it.
type Frame struct {
	Document
	CanvasWidth  int `json:"canvas_width,omitempty"`
	CanvasHeight int `json:"canvas_height,omitempty"`
}

// Unmarshal parses a single interchange document. Unknown fields are
// tolerated; a keypoint array whose length is not a multiple of three
// is not.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse pose document")
	}
	if err := checkTriples(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseAny parses either a single document or the array-of-frames
// wrapping produced by preprocessor nodes. Frames carrying a canvas
// size have their coordinates rescaled back to the normalized [0,1]
// space; everything else passes through unchanged.
func ParseAny(data []byte) ([]*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty pose document")
	}

	var frames []Frame
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &frames); err != nil {
			return nil, errors.Wrap(err, "failed to parse pose frames")
		}
	} else {
		var f Frame
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return nil, errors.Wrap(err, "failed to parse pose document")
		}
		frames = []Frame{f}
	}

	docs := make([]*Document, 0, len(frames))
	for i := range frames {
		doc := frames[i].normalized()
		if err := checkTriples(doc); err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// normalized returns the frame's document with pixel coordinates
// divided out by the canvas size when one is declared.
func (f *Frame) normalized() *Document {
	doc := f.Document
	if f.CanvasWidth <= 0 || f.CanvasHeight <= 0 {
		return &doc
	}

	w := float64(f.CanvasWidth)
	h := float64(f.CanvasHeight)
	people := make([]Person, len(doc.People))
	for i, person := range doc.People {
		flat := make([]float64, len(person.PoseKeypoints2D))
		for j, v := range person.PoseKeypoints2D {
			switch j % 3 {
			case 0:
				flat[j] = v / w
			case 1:
				flat[j] = v / h
			default:
				flat[j] = v
			}
		}
		person.PoseKeypoints2D = flat
		people[i] = person
	}
	doc.People = people
	return &doc
}

func checkTriples(d *Document) error {
	for i, person := range d.People {
		if len(person.PoseKeypoints2D)%3 != 0 {
			return errors.Errorf("person %d: keypoint array length %d is not a multiple of 3",
				i, len(person.PoseKeypoints2D))
		}
	}
	return nil
}
