package export

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/render"
)

func standingPose() pose.Pose {
	p := make(pose.Pose, pose.BodyKeypointCount)
	for i := range p {
		p[i] = pose.Keypoint{
			X:          0.3 + 0.02*float64(i),
			Y:          0.2 + 0.03*float64(i),
			Confidence: 0.9,
		}
	}
	return p
}

func TestForConditioning(t *testing.T) {
	poses := []pose.Pose{standingPose()}

	res, err := ForConditioning(poses, 256, 384)
	require.NoError(t, err)
	require.NotNil(t, res)

	bounds := res.Image.Bounds()
	assert.Equal(t, 256, bounds.Dx())
	assert.Equal(t, 384, bounds.Dy())

	require.Len(t, res.Document.People, 1)
	assert.Equal(t, 1.3, res.Document.Version)
	assert.Len(t, res.Document.People[0].PoseKeypoints2D, 3*pose.BodyKeypointCount)
}

func TestForConditioningNoPartialResult(t *testing.T) {
	res, err := ForConditioning([]pose.Pose{standingPose()}, 0, 100)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestForConditioningEmptyInput(t *testing.T) {
	res, err := ForConditioning(nil, 64, 64)
	require.NoError(t, err)

	require.NotNil(t, res.Document.People)
	assert.Len(t, res.Document.People, 0)

	// Fixed policy paints the canvas black.
	c := color.NRGBAModel.Convert(res.Image.At(32, 32)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, c)
}

func TestPNGRoundTrip(t *testing.T) {
	res, err := ForConditioning([]pose.Pose{standingPose()}, 64, 64)
	require.NoError(t, err)

	data, err := PNG(res.Image)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, res.Image.Bounds(), decoded.Bounds())
}

func TestThumbnail(t *testing.T) {
	res, err := ForConditioning(nil, 200, 100)
	require.NoError(t, err)

	thumb := Thumbnail(res.Image, 50)
	assert.Equal(t, 50, thumb.Bounds().Dx())
	assert.Equal(t, 25, thumb.Bounds().Dy())

	// A zero bound disables scaling.
	same := Thumbnail(res.Image, 0)
	assert.Equal(t, res.Image.Bounds(), same.Bounds())
}

func TestSequenceOrder(t *testing.T) {
	frames := [][]pose.Pose{
		{{{X: 0.25, Y: 0.5, Confidence: 0.9}}},
		{{{X: 0.5, Y: 0.5, Confidence: 0.9}}},
		{{{X: 0.75, Y: 0.5, Confidence: 0.9}}},
	}
	cfg := render.Config{
		Width:          64,
		Height:         64,
		ShowKeypoints:  true,
		KeypointRadius: 5,
		Custom:         color.NRGBA{255, 255, 255, 255},
	}

	images, err := Sequence(context.Background(), frames, cfg, 2)
	require.NoError(t, err)
	require.Len(t, images, 3)

	// Each frame marks its own x position: output order must follow
	// input order.
	centers := []int{16, 32, 48}
	for i, img := range images {
		c := color.NRGBAModel.Convert(img.At(centers[i], 32)).(color.NRGBA)
		assert.Equal(t, uint8(255), c.R, "frame %d marker missing", i)
	}
}

func TestSequenceInvalidConfig(t *testing.T) {
	_, err := Sequence(context.Background(), [][]pose.Pose{{}}, render.Config{}, 2)
	assert.Error(t, err)
}

func TestSequenceEmpty(t *testing.T) {
	images, err := Sequence(context.Background(), nil, render.Config{Width: 8, Height: 8}, 0)
	require.NoError(t, err)
	assert.Len(t, images, 0)
}
