package pose

import (
	"image/color"
	"testing"
)

func TestBodyColorsBonePalette(t *testing.T) {
	want := []color.RGBA{
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

	p := BodyColors()
	for i, c := range want {
		if got := p.BoneColor(i); got != c {
			t.Errorf("bone color %d = %v, want %v", i, got, c)
		}
	}

	if got := p.BoneColor(-1); got != color.White {
		t.Errorf("bone color -1 = %v, want white", got)
	}
	if got := p.BoneColor(18); got != color.White {
		t.Errorf("bone color 18 = %v, want white", got)
	}
}

func TestBodyColorsKeypointRegions(t *testing.T) {
	p := BodyColors()

	cases := []struct {
		idx  int
		want color.RGBA
	}{
		{Nose, color.RGBA{255, 0, 85, 255}},
		{Neck, color.RGBA{255, 0, 85, 255}},
		{LeftEar, color.RGBA{255, 0, 85, 255}},
		{RightElbow, color.RGBA{255, 170, 0, 255}},
		{LeftWrist, color.RGBA{0, 255, 85, 255}},
		{RightKnee, color.RGBA{0, 170, 255, 255}},
		{LeftAnkle, color.RGBA{170, 0, 255, 255}},
	}

	for _, c := range cases {
		if got := p.KeypointColor(c.idx); got != color.Color(c.want) {
			t.Errorf("keypoint color %d = %v, want %v", c.idx, got, c.want)
		}
	}

	// Outside the convention there is no region hue.
	if got := p.KeypointColor(25); got != color.White {
		t.Errorf("keypoint color 25 = %v, want white", got)
	}
}

func TestUniform(t *testing.T) {
	c := color.RGBA{12, 34, 56, 255}
	p := Uniform(c)

	for i := 0; i < 20; i++ {
		if got := p.BoneColor(i); got != color.Color(c) {
			t.Errorf("bone color %d = %v, want %v", i, got, c)
		}
		if got := p.KeypointColor(i); got != color.Color(c) {
			t.Errorf("keypoint color %d = %v, want %v", i, got, c)
		}
	}
}

func TestBoneColorMatchesWheelForStandardTable(t *testing.T) {
	// The standard table has 17 bones; every one maps inside the wheel.
	p := BodyColors()
	for i := range BodySkeleton() {
		if got := p.BoneColor(i); got == color.Color(color.White) {
			t.Errorf("bone %d fell back to white", i)
		}
	}
}
