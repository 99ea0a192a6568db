package badge

// Tracker holds the pose of a single badge. The zero value is ready to use and
// starts in the neutral pose. A Tracker is owned by one event loop and is not
// safe for concurrent use.
type Tracker struct {
	pose    Pose
	mounted bool
}

// NewTracker returns a tracker in the neutral pose.
func NewTracker() *Tracker {
	return &Tracker{pose: Neutral(), mounted: true}
}

// Pose returns the current pose.
func (t *Tracker) Pose() Pose {
	if !t.mounted {
		return Neutral()
	}
	return t.pose
}

// Move applies a pointer sample. Samples over an empty surface leave the pose
// untouched and report false.
func (t *Tracker) Move(sample Sample, surface Surface) bool {
	pose, ok := ComputePose(sample, surface)
	if !ok {
		return false
	}
	t.pose = pose
	t.mounted = true
	return true
}

// Leave resets to the neutral pose and returns it.
func (t *Tracker) Leave() Pose {
	t.pose = Neutral()
	t.mounted = true
	return t.pose
}
