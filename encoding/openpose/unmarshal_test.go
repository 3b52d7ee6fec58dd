package openpose

import (
	"testing"

	"github.com/justinfleek/lattice-pose/pose"
)

func TestUnmarshalRoundTrip(t *testing.T) {
	poses := []pose.Pose{
		{
			{X: 0.5, Y: 0.5, Confidence: 0.9},
			{X: 0.6, Y: 0.5, Confidence: 0.8},
		},
		{
			{X: 0.25, Y: 0.75, Confidence: 0.05},
		},
	}

	data, err := Marshal(Export(poses))
	if err != nil {
		t.Fatal(err)
	}

	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	got := doc.Poses()
	if len(got) != len(poses) {
		t.Fatalf("poses = %d, want %d", len(got), len(poses))
	}
	for i := range poses {
		if len(got[i]) != len(poses[i]) {
			t.Fatalf("pose %d: keypoints = %d, want %d", i, len(got[i]), len(poses[i]))
		}
		for j := range poses[i] {
			if got[i][j] != poses[i][j] {
				t.Errorf("pose %d keypoint %d = %v, want %v", i, j, got[i][j], poses[i][j])
			}
		}
	}
}

func TestUnmarshalRejectsBrokenTriples(t *testing.T) {
	data := []byte(`{"version":1.3,"people":[{"person_id":[-1],"pose_keypoints_2d":[0.5,0.5]}]}`)

	if _, err := Unmarshal(data); err == nil {
		t.Error("expected error for keypoint array of length 2")
	}
}

func TestUnmarshalToleratesExtraFields(t *testing.T) {
	data := []byte(`{"version":1.3,"canvas_width":512,"people":[` +
		`{"person_id":[-1],"pose_keypoints_2d":[0.5,0.5,0.9],"extra":"ignored"}]}`)

	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.People) != 1 {
		t.Fatalf("people = %d, want 1", len(doc.People))
	}
}

func TestParseAnySingleDocument(t *testing.T) {
	data := []byte(`{"version":1.3,"people":[{"person_id":[-1],"pose_keypoints_2d":[0.5,0.25,0.9]}]}`)

	docs, err := ParseAny(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("frames = %d, want 1", len(docs))
	}

	p := docs[0].Poses()[0]
	if p[0].X != 0.5 || p[0].Y != 0.25 {
		t.Errorf("keypoint = %v, coordinates changed without a canvas size", p[0])
	}
}

func TestParseAnyNormalizesCanvasFrames(t *testing.T) {
	data := []byte(`[{"version":1.3,"canvas_width":200,"canvas_height":100,` +
		`"people":[{"person_id":[-1],"pose_keypoints_2d":[100,50,0.9,150,25,0.8]}]}]`)

	docs, err := ParseAny(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("frames = %d, want 1", len(docs))
	}

	p := docs[0].Poses()[0]
	want := pose.Pose{
		{X: 0.5, Y: 0.5, Confidence: 0.9},
		{X: 0.75, Y: 0.25, Confidence: 0.8},
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("keypoint %d = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestParseAnyMultipleFrames(t *testing.T) {
	data := []byte(`[` +
		`{"version":1.3,"people":[]},` +
		`{"version":1.3,"people":[{"person_id":[-1],"pose_keypoints_2d":[0.1,0.2,0.3]}]}` +
		`]`)

	docs, err := ParseAny(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("frames = %d, want 2", len(docs))
	}
	if len(docs[0].People) != 0 || len(docs[1].People) != 1 {
		t.Errorf("people counts = %d,%d, want 0,1", len(docs[0].People), len(docs[1].People))
	}
}

func TestParseAnyEmptyInput(t *testing.T) {
	if _, err := ParseAny([]byte("  \n")); err == nil {
		t.Error("expected error for empty input")
	}
}
