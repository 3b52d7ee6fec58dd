// Package render draws skeleton frames onto raster canvases. It scales
// normalized keypoints into pixel space, strokes bones from an ordered
// topology table and fills keypoint markers, with colors supplied by a
// pluggable policy.
package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/justinfleek/lattice-pose/pose"
)

// ErrInvalidConfig flags a configuration the renderer refuses to draw
// with.
var ErrInvalidConfig = errors.New("invalid render config")

// Config controls one render call. Any field combination is legal;
// turning both passes off yields a canvas filled with Background.
type Config struct {
	Width          int
	Height         int
	Background     color.Color
	ShowBones      bool
	ShowKeypoints  bool
	BoneWidth      float64
	KeypointRadius float64
	OpenPoseColors bool
	Custom         color.Color
}

// Validate fails fast on a degenerate canvas size rather than letting
// a zero surface through.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "canvas size %dx%d", c.Width, c.Height)
	}
	return nil
}

// colors resolves the policy for one call: the renderer's positional
// policy when positional coloring is requested, otherwise a uniform
// custom color, white when unset.
func (c Config) colors(positional pose.ColorPolicy) pose.ColorPolicy {
	if c.OpenPoseColors {
		return positional
	}
	if c.Custom != nil {
		return pose.Uniform(c.Custom)
	}
	return pose.Uniform(color.White)
}

// Renderer draws skeleton frames. Topology and positional palette are
// fixed at construction; the renderer keeps no state between calls
// and is safe for concurrent use.
type Renderer struct {
	skeleton pose.Skeleton
	colors   pose.ColorPolicy
}

// Option adjusts a Renderer at construction time.
type Option func(*Renderer)

// WithSkeleton swaps the bone topology table.
func WithSkeleton(s pose.Skeleton) Option {
	return func(r *Renderer) {
		r.skeleton = s
	}
}

// WithColors swaps the positional color policy.
func WithColors(p pose.ColorPolicy) Option {
	return func(r *Renderer) {
		r.colors = p
	}
}

// New builds a renderer with the standard body topology and palette
// unless options say otherwise.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		skeleton: pose.BodySkeleton(),
		colors:   pose.BodyColors(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws poses onto a fresh canvas and returns the image. The
// background fill always happens first, even with both passes off.
// Each pose then contributes its bone pass followed by its keypoint
// pass, in input order; overlapping draws are order-sensitive, so the
// sequence is part of the contract. An empty pose list renders the
// background only.
func (r *Renderer) Render(poses []pose.Pose, cfg Config) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer dc.Close()

	background := color.Color(color.Black)
	if cfg.Background != nil {
		background = cfg.Background
	}
	dc.ClearWithColor(gg.FromColor(background))

	colors := cfg.colors(r.colors)

	for _, p := range poses {
		if cfg.ShowBones {
			if err := r.strokeBones(dc, p, colors, cfg); err != nil {
				return nil, err
			}
		}
		if cfg.ShowKeypoints {
			if err := fillKeypoints(dc, p, colors, cfg); err != nil {
				return nil, err
			}
		}
	}

	// Close flushes any queued draw work into the pixmap.
	if err := dc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finish canvas")
	}
	return dc.Image(), nil
}

// strokeBones walks the topology table in order. A bone is skipped
// whole when either endpoint index is out of range for this pose or
// either endpoint misses the visibility cutoff; there are no partial
// segments.
func (r *Renderer) strokeBones(dc *gg.Context, p pose.Pose, colors pose.ColorPolicy, cfg Config) error {
	w := float64(cfg.Width)
	h := float64(cfg.Height)

	dc.SetLineWidth(cfg.BoneWidth)
	dc.SetLineCap(gg.LineCapRound)

	for i, bone := range r.skeleton {
		if bone.A < 0 || bone.A >= len(p) || bone.B < 0 || bone.B >= len(p) {
			continue
		}
		a, b := p[bone.A], p[bone.B]
		if !a.Visible() || !b.Visible() {
			continue
		}

		dc.SetColor(colors.BoneColor(i))
		dc.DrawLine(a.X*w, a.Y*h, b.X*w, b.Y*h)
		if err := dc.Stroke(); err != nil {
			return errors.Wrapf(err, "failed to stroke bone %d", i)
		}
	}
	return nil
}

// fillKeypoints marks every visible keypoint with a filled circle.
func fillKeypoints(dc *gg.Context, p pose.Pose, colors pose.ColorPolicy, cfg Config) error {
	w := float64(cfg.Width)
	h := float64(cfg.Height)

	for i, k := range p {
		if !k.Visible() {
			continue
		}

		dc.SetColor(colors.KeypointColor(i))
		dc.DrawCircle(k.X*w, k.Y*h, cfg.KeypointRadius)
		if err := dc.Fill(); err != nil {
			return errors.Wrapf(err, "failed to fill keypoint %d", i)
		}
	}
	return nil
}
