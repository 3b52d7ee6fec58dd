// Package export composes the frame renderer and the interchange
// exporter for downstream consumers, and carries the image encoding
// helpers the tooling layers need.
package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/justinfleek/lattice-pose/encoding/openpose"
	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/render"
)

// Result pairs the rendered conditioning image with the interchange
// document for the same pose list.
type Result struct {
	Image    image.Image
	Document *openpose.Document
}

// ConditioningConfig is the fixed render policy for downstream
// consumption: solid black background, both passes on, positional
// colors, 4px bones and markers.
func ConditioningConfig(width, height int) render.Config {
	return render.Config{
		Width:          width,
		Height:         height,
		Background:     color.Black,
		ShowBones:      true,
		ShowKeypoints:  true,
		BoneWidth:      4,
		KeypointRadius: 4,
		OpenPoseColors: true,
	}
}

// ForConditioning renders poses under the fixed policy and exports the
// matching interchange document. Either sub-call failing fails the
// whole call; a partial result is never returned.
func ForConditioning(poses []pose.Pose, width, height int) (*Result, error) {
	img, err := render.New().Render(poses, ConditioningConfig(width, height))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render conditioning image")
	}

	return &Result{
		Image:    img,
		Document: openpose.Export(poses),
	}, nil
}

// PNG encodes an image for callers that need bytes on the wire or on
// disk.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode png")
	}
	return buf.Bytes(), nil
}

// Thumbnail scales the image down so its longest edge fits maxEdge,
// preserving aspect. Images already inside the bound come back
// untouched.
func Thumbnail(img image.Image, maxEdge int) image.Image {
	if maxEdge <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxEdge), uint(maxEdge), img, resize.Lanczos3)
}
