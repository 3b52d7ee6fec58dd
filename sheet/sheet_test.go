package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/justinfleek/lattice-pose/pose"
	"github.com/justinfleek/lattice-pose/render"
)

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	g := CreateGenerator(filepath.Join(t.TempDir(), "out.pdf"), GeneratorOptions{})

	err := g.Generate([][]pose.Pose{{}}, render.Config{Width: 0, Height: 100})
	if err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestGenerateRejectsEmptySequence(t *testing.T) {
	g := CreateGenerator(filepath.Join(t.TempDir(), "out.pdf"), GeneratorOptions{})

	if err := g.Generate(nil, render.Config{Width: 100, Height: 100}); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

func TestGenerateWritesSheet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames.pdf")
	g := CreateGenerator(out, GeneratorOptions{
		Title:          "pose frames",
		AddPageNumbers: true,
	})

	frames := [][]pose.Pose{
		{{{X: 0.5, Y: 0.5, Confidence: 0.9}, {X: 0.6, Y: 0.5, Confidence: 0.9}}},
		{{{X: 0.4, Y: 0.4, Confidence: 0.9}}},
	}
	cfg := render.Config{
		Width:          128,
		Height:         128,
		ShowBones:      true,
		ShowKeypoints:  true,
		BoneWidth:      2,
		KeypointRadius: 2,
		OpenPoseColors: true,
	}

	if err := g.Generate(frames, cfg); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatal("sheet file is empty")
	}
}
