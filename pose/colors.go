package pose

import "image/color"

// ColorPolicy supplies the two color derivations used while drawing:
// bones take a color keyed by their position in the skeleton table,
// keypoint markers take a color keyed by the body region of their own
// index. The derivations are defined independently and need not agree
// for a given region.
type ColorPolicy interface {
	BoneColor(tableIdx int) color.Color
	KeypointColor(kpIdx int) color.Color
}

// wheel is the fixed 18-hue positional palette of the interchange
// convention. Bone i of the standard table strokes with wheel[i].
var wheel = [18]color.RGBA{
	{255, 0, 0, 255},
	{255, 85, 0, 255},
	{255, 170, 0, 255},
	{255, 255, 0, 255},
	{170, 255, 0, 255},
	{85, 255, 0, 255},
	{0, 255, 0, 255},
	{0, 255, 85, 255},
	{0, 255, 170, 255},
	{0, 255, 255, 255},
	{0, 170, 255, 255},
	{0, 85, 255, 255},
	{0, 0, 255, 255},
	{85, 0, 255, 255},
	{170, 0, 255, 255},
	{255, 0, 255, 255},
	{255, 0, 170, 255},
	{255, 0, 85, 255},
}

// regionColors keys marker colors off the body region of the keypoint
// index. Hues are drawn from the positional wheel so markers stay on
// the same palette as bones without matching them.
var regionColors = map[Region]color.RGBA{
	RegionHead:     {255, 0, 85, 255},
	RegionRightArm: {255, 170, 0, 255},
	RegionLeftArm:  {0, 255, 85, 255},
	RegionRightLeg: {0, 170, 255, 255},
	RegionLeftLeg:  {170, 0, 255, 255},
}

type bodyColors struct{}

// BodyColors returns the standard positional policy: the 18-hue wheel
// for bones, region hues for keypoint markers. Indices outside either
// table fall back to white.
func BodyColors() ColorPolicy {
	return bodyColors{}
}

func (bodyColors) BoneColor(tableIdx int) color.Color {
	if tableIdx < 0 || tableIdx >= len(wheel) {
		return color.White
	}
	return wheel[tableIdx]
}

func (bodyColors) KeypointColor(kpIdx int) color.Color {
	if c, ok := regionColors[RegionOf(kpIdx)]; ok {
		return c
	}
	return color.White
}

type uniform struct {
	c color.Color
}

// Uniform colors every bone and marker with the same color.
func Uniform(c color.Color) ColorPolicy {
	return uniform{c}
}

func (u uniform) BoneColor(int) color.Color {
	return u.c
}

func (u uniform) KeypointColor(int) color.Color {
	return u.c
}
