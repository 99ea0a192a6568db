// Package badge implements the pointer-reactive tilt badge shown on product pages:
// the tilt/glare transform, the pose tracker, and the video overlay state machine.
package badge

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxTilt is the rotation in degrees reached when the pointer sits on an edge of the surface.
const MaxTilt = 15.0

// ErrInvalidSample is returned when a pointer sample or surface carries non-finite values.
var ErrInvalidSample = errors.New("badge: invalid pointer sample")

// Sample is a pointer position relative to the badge's bounding rectangle, in device pixels.
type Sample struct {
	X float64
	Y float64
}

// Surface is the badge's rendered bounding box at sample time.
type Surface struct {
	Width  float64
	Height float64
}

// Empty reports whether the surface has no area (unmounted or collapsed).
func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Tilt is the rotation pair applied to the badge, in degrees.
type Tilt struct {
	RotateX float64
	RotateY float64
}

// Glare is the highlight position in percent of the surface. Values may fall outside
// [0,100] when the pointer is sampled just beyond the rectangle.
type Glare struct {
	X float64
	Y float64
}

// Pose combines the tilt and glare derived from a single pointer sample.
type Pose struct {
	Tilt  Tilt
	Glare Glare
}

// Neutral returns the at-rest pose: no rotation, centered glare.
func Neutral() Pose {
	return Pose{Glare: Glare{X: 50, Y: 50}}
}

// ComputePose converts a pointer sample into a pose. Horizontal displacement drives
// rotation about the vertical axis and vertical displacement drives rotation about the
// horizontal axis. It returns false without a pose when the surface is empty.
func ComputePose(sample Sample, surface Surface) (Pose, bool) {
	if surface.Empty() {
		return Pose{}, false
	}
	centerX := surface.Width / 2
	centerY := surface.Height / 2
	return Pose{
		Tilt: Tilt{
			RotateX: ((centerY - sample.Y) / centerY) * MaxTilt,
			RotateY: ((sample.X - centerX) / centerX) * MaxTilt,
		},
		Glare: Glare{
			X: (sample.X / surface.Width) * 100,
			Y: (sample.Y / surface.Height) * 100,
		},
	}, true
}

// Validate rejects NaN and infinite coordinates or dimensions.
func Validate(sample Sample, surface Surface) error {
	for _, v := range []float64{sample.X, sample.Y, surface.Width, surface.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v", ErrInvalidSample, v)
		}
	}
	return nil
}

// Style renders the pose as an inline CSS declaration: the 3D transform plus the
// --glare-x/--glare-y custom properties consumed by the stylesheet.
func (p Pose) Style() string {
	return "transform: rotateX(" + num(p.Tilt.RotateX) + "deg) rotateY(" + num(p.Tilt.RotateY) + "deg); " +
		"--glare-x: " + num(p.Glare.X) + "%; --glare-y: " + num(p.Glare.Y) + "%;"
}

// WakeStyle positions the wake element under the glare point.
func (p Pose) WakeStyle() string {
	return "left: " + num(p.Glare.X) + "%; top: " + num(p.Glare.Y) + "%;"
}

// num formats with the shortest representation; negative zero prints as 0.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
