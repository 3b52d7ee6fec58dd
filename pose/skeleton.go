package pose

// Bone connects two keypoint indices with a drawable segment.
type Bone struct {
	A int
	B int
}

// Skeleton is an ordered bone table shared by all poses. Table order
// is the positional color key: bone i takes the i-th palette entry
// when positional coloring is on.
type Skeleton []Bone

// BodySkeleton returns the standard 17-bone table of the 18-point
// body convention.
func BodySkeleton() Skeleton {
	return Skeleton{
		{Neck, RightShoulder},
		{Neck, LeftShoulder},
		{RightShoulder, RightElbow},
		{RightElbow, RightWrist},
		{LeftShoulder, LeftElbow},
		{LeftElbow, LeftWrist},
		{Neck, RightHip},
		{RightHip, RightKnee},
		{RightKnee, RightAnkle},
		{Neck, LeftHip},
		{LeftHip, LeftKnee},
		{LeftKnee, LeftAnkle},
		{Neck, Nose},
		{Nose, RightEye},
		{RightEye, RightEar},
		{Nose, LeftEye},
		{LeftEye, LeftEar},
	}
}
