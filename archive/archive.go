// Package archive reads and writes pose-pack bundles: zip files
// carrying a manifest, one interchange document per frame and,
// optionally, the rendered frame images.
package archive

import (
	"fmt"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
	"github.com/justinfleek/lattice-pose/version"
)

// BundleVersion is the pose-pack schema version this package writes.
const BundleVersion = 1

// Ext is the conventional bundle file extension.
const Ext = ".posepack"

// Manifest describes a bundle.
type Manifest struct {
	Version      int    `json:"version"`
	Generator    string `json:"generator"`
	FrameCount   int    `json:"frame_count"`
	CanvasWidth  int    `json:"canvas_width"`
	CanvasHeight int    `json:"canvas_height"`
}

// Frame is one bundle frame: the interchange document plus an
// optional PNG render.
type Frame struct {
	Document *openpose.Document
	Render   []byte
}

// Bundle is an in-memory pose pack.
type Bundle struct {
	Manifest Manifest
	Frames   []Frame
}

// NewBundle starts an empty bundle for the given canvas size.
func NewBundle(canvasWidth, canvasHeight int) *Bundle {
	return &Bundle{
		Manifest: Manifest{
			Version:      BundleVersion,
			Generator:    "lattice-pose " + version.Version,
			CanvasWidth:  canvasWidth,
			CanvasHeight: canvasHeight,
		},
	}
}

// AddFrame appends a frame. The render may be nil.
func (b *Bundle) AddFrame(doc *openpose.Document, render []byte) {
	b.Frames = append(b.Frames, Frame{Document: doc, Render: render})
	b.Manifest.FrameCount = len(b.Frames)
}

func frameName(i int) string {
	return fmt.Sprintf("frames/frame_%04d.json", i)
}

func renderName(i int) string {
	return fmt.Sprintf("renders/frame_%04d.png", i)
}
