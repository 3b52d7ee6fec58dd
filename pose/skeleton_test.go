package pose

import "testing"

func TestBodySkeleton(t *testing.T) {
	want := Skeleton{
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {5, 6}, {6, 7},
		{1, 8}, {8, 9}, {9, 10}, {1, 11}, {11, 12}, {12, 13},
		{1, 0}, {0, 14}, {14, 16}, {0, 15}, {15, 17},
	}

	got := BodySkeleton()
	if len(got) != len(want) {
		t.Fatalf("bone count = %d, want %d", len(got), len(want))
	}

	for i, b := range want {
		if got[i] != b {
			t.Errorf("bone %d = %v, want %v", i, got[i], b)
		}
	}

	for i, b := range got {
		if b.A < 0 || b.A >= BodyKeypointCount || b.B < 0 || b.B >= BodyKeypointCount {
			t.Errorf("bone %d endpoints %v out of convention range", i, b)
		}
	}
}
