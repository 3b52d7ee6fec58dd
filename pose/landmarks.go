package pose

import "strconv"

// Landmark indices of the 18-point body convention. The positional
// meaning is fixed by the interchange format; renderer and exporter
// both rely on this ordering.
const (
	Nose = iota
	Neck
	RightShoulder
	RightElbow
	RightWrist
	LeftShoulder
	LeftElbow
	LeftWrist
	RightHip
	RightKnee
	RightAnkle
	LeftHip
	LeftKnee
	LeftAnkle
	RightEye
	LeftEye
	RightEar
	LeftEar
)

// BodyKeypointCount is the keypoint count of the body convention.
const BodyKeypointCount = 18

// Region is a coarse body area, used for keypoint marker coloring.
type Region int

const (
	RegionNone Region = iota
	RegionHead
	RegionRightArm
	RegionLeftArm
	RegionRightLeg
	RegionLeftLeg
)

func (r Region) String() string {
	switch r {
	case RegionHead:
		return "head"
	case RegionRightArm:
		return "right_arm"
	case RegionLeftArm:
		return "left_arm"
	case RegionRightLeg:
		return "right_leg"
	case RegionLeftLeg:
		return "left_leg"
	}
	return "none"
}

// Named index groups of the body convention. RegionOf derives from
// these tables, so swapping the convention means swapping the groups,
// not editing range checks.
var (
	HeadIndices     = []int{Nose, Neck, RightEye, LeftEye, RightEar, LeftEar}
	RightArmIndices = []int{RightShoulder, RightElbow, RightWrist}
	LeftArmIndices  = []int{LeftShoulder, LeftElbow, LeftWrist}
	RightLegIndices = []int{RightHip, RightKnee, RightAnkle}
	LeftLegIndices  = []int{LeftHip, LeftKnee, LeftAnkle}
)

var regionByIndex = buildRegionIndex()

func buildRegionIndex() map[int]Region {
	m := make(map[int]Region, BodyKeypointCount)
	groups := []struct {
		indices []int
		region  Region
	}{
		{HeadIndices, RegionHead},
		{RightArmIndices, RegionRightArm},
		{LeftArmIndices, RegionLeftArm},
		{RightLegIndices, RegionRightLeg},
		{LeftLegIndices, RegionLeftLeg},
	}
	for _, g := range groups {
		for _, i := range g.indices {
			m[i] = g.region
		}
	}
	return m
}

// RegionOf classifies a keypoint index into its body region. Indices
// outside the convention have no region.
func RegionOf(kpIdx int) Region {
	r, ok := regionByIndex[kpIdx]
	if !ok {
		return RegionNone
	}
	return r
}

var landmarkNames = [BodyKeypointCount]string{
	"nose", "neck",
	"right_shoulder", "right_elbow", "right_wrist",
	"left_shoulder", "left_elbow", "left_wrist",
	"right_hip", "right_knee", "right_ankle",
	"left_hip", "left_knee", "left_ankle",
	"right_eye", "left_eye", "right_ear", "left_ear",
}

// LandmarkName returns the conventional name of a keypoint index, or
// "keypoint_<i>" outside the convention.
func LandmarkName(kpIdx int) string {
	if kpIdx >= 0 && kpIdx < len(landmarkNames) {
		return landmarkNames[kpIdx]
	}
	return "keypoint_" + strconv.Itoa(kpIdx)
}
