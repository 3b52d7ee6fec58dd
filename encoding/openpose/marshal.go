package openpose

import (
	"encoding/json"
)

// Marshal encodes the document in the interchange byte layout.
func Marshal(d *Document) ([]byte, error) {
	return json.Marshal(d)
}

// MarshalIndent encodes the document with two-space indentation, for
// files meant to be read by people.
func MarshalIndent(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// MarshalFrames encodes a frame sequence as a JSON array, the shape
// ParseAny accepts back.
func MarshalFrames(docs []*Document) ([]byte, error) {
	return json.MarshalIndent(docs, "", "  ")
}
