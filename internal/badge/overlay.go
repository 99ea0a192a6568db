package badge

import "strings"

// OverlayState is the visibility of the video overlay.
type OverlayState int

const (
	Closed OverlayState = iota
	Open
)

func (s OverlayState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Target identifies which part of the overlay received a click.
type Target int

const (
	// TargetContent is the overlay content itself; clicks there are absorbed.
	TargetContent Target = iota
	// TargetCloseControl is the dedicated close button.
	TargetCloseControl
	// TargetBackdrop is the region surrounding the content.
	TargetBackdrop
)

// ParseTarget maps a form value to a Target. Unknown values resolve to the close control.
func ParseTarget(v string) Target {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "content":
		return TargetContent
	case "backdrop":
		return TargetBackdrop
	default:
		return TargetCloseControl
	}
}

// Overlay is the two-state machine behind the badge's video modal. The zero value is Closed.
type Overlay struct {
	state OverlayState
}

// NewOverlay restores an overlay from a persisted visibility flag.
func NewOverlay(open bool) Overlay {
	if open {
		return Overlay{state: Open}
	}
	return Overlay{}
}

// State returns the current state.
func (o *Overlay) State() OverlayState { return o.state }

// Visible reports whether the overlay is open.
func (o *Overlay) Visible() bool { return o.state == Open }

// Activate opens the overlay.
func (o *Overlay) Activate() {
	o.state = Open
}

// Dismiss closes the overlay.
func (o *Overlay) Dismiss() {
	o.state = Closed
}

// Click routes a click on the open overlay. Content clicks never dismiss; the close
// control and backdrop do. It reports whether the state changed.
func (o *Overlay) Click(target Target) bool {
	if o.state != Open || target == TargetContent {
		return false
	}
	o.Dismiss()
	return true
}
