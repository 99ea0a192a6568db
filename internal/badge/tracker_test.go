package badge

import "testing"

func TestTrackerStartsNeutral(t *testing.T) {
	t.Parallel()

	var zero Tracker
	if zero.Pose() != Neutral() {
		t.Fatalf("zero tracker should be neutral, got %+v", zero.Pose())
	}
	if NewTracker().Pose() != Neutral() {
		t.Fatalf("new tracker should be neutral")
	}
}

func TestTrackerLeaveAlwaysNeutral(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	samples := []Sample{{X: 0, Y: 0}, {X: 190, Y: 90}, {X: 250, Y: -40}}
	for _, s := range samples {
		if !tr.Move(s, Surface{Width: 200, Height: 100}) {
			t.Fatalf("move rejected for %+v", s)
		}
		got := tr.Leave()
		want := Pose{Tilt: Tilt{}, Glare: Glare{X: 50, Y: 50}}
		if got != want || tr.Pose() != want {
			t.Fatalf("expected neutral after leave, got %+v", got)
		}
	}
}

func TestTrackerEmptySurfaceKeepsPriorPose(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.Move(Sample{X: 150, Y: 25}, Surface{Width: 200, Height: 100})
	before := tr.Pose()
	if tr.Move(Sample{X: 10, Y: 10}, Surface{Width: 0, Height: 100}) {
		t.Fatalf("expected move over empty surface to be skipped")
	}
	if tr.Move(Sample{X: 10, Y: 10}, Surface{Width: 100, Height: 0}) {
		t.Fatalf("expected move over empty surface to be skipped")
	}
	if tr.Pose() != before {
		t.Fatalf("pose changed: %+v -> %+v", before, tr.Pose())
	}
}

func TestTrackerLastSampleWins(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	surface := Surface{Width: 200, Height: 100}
	tr.Move(Sample{X: 10, Y: 90}, surface)
	tr.Move(Sample{X: 150, Y: 25}, surface)
	want, _ := ComputePose(Sample{X: 150, Y: 25}, surface)
	if tr.Pose() != want {
		t.Fatalf("expected pose of latest sample %+v, got %+v", want, tr.Pose())
	}
}
