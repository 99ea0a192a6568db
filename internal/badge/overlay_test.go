package badge

import "testing"

func TestOverlayTransitions(t *testing.T) {
	t.Parallel()

	var o Overlay
	if o.State() != Closed || o.Visible() {
		t.Fatalf("overlay must start closed")
	}
	o.Activate()
	if o.State() != Open {
		t.Fatalf("activate should open")
	}
	if o.Click(TargetContent) {
		t.Fatalf("content click must not change state")
	}
	if !o.Visible() {
		t.Fatalf("content click must keep overlay open")
	}
	if !o.Click(TargetCloseControl) || o.Visible() {
		t.Fatalf("close control should dismiss")
	}
	o.Activate()
	if !o.Click(TargetBackdrop) || o.Visible() {
		t.Fatalf("backdrop click should dismiss")
	}
}

func TestOverlayClickWhileClosedIsNoop(t *testing.T) {
	t.Parallel()

	o := NewOverlay(false)
	for _, target := range []Target{TargetContent, TargetCloseControl, TargetBackdrop} {
		if o.Click(target) {
			t.Fatalf("click %v on closed overlay reported change", target)
		}
		if o.State() != Closed {
			t.Fatalf("closed overlay reopened")
		}
	}
}

func TestOverlayCyclesIndefinitely(t *testing.T) {
	t.Parallel()

	o := NewOverlay(false)
	for i := 0; i < 5; i++ {
		o.Activate()
		if o.State().String() != "open" {
			t.Fatalf("cycle %d: expected open", i)
		}
		o.Dismiss()
		if o.State().String() != "closed" {
			t.Fatalf("cycle %d: expected closed", i)
		}
	}
}

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := map[string]Target{
		"content":  TargetContent,
		"Backdrop": TargetBackdrop,
		"close":    TargetCloseControl,
		"":         TargetCloseControl,
		"bogus":    TargetCloseControl,
	}
	for in, want := range tests {
		if got := ParseTarget(in); got != want {
			t.Errorf("ParseTarget(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestVideoEmbedURL(t *testing.T) {
	t.Parallel()

	if got := (Video{}).EmbedURL(); got != "https://www.youtube.com/embed/5Ou8olYntuc" {
		t.Fatalf("unexpected default embed url %q", got)
	}
	if got := (Video{ID: "abc"}).EmbedURL(); got != "https://www.youtube.com/embed/abc" {
		t.Fatalf("unexpected embed url %q", got)
	}
}
