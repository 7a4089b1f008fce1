package spring

import "github.com/charmbracelet/harmonica"

// Profile names a speed curve for the integrator: the angular frequency and
// damping ratio handed to harmonica at a fixed 60 steps per second.
type Profile struct {
	Frequency float64
	Damping   float64
}

var (
	// Gentle drifts to the target with no overshoot.
	Gentle = Profile{Frequency: 3.0, Damping: 1.0}
	// Normal is the default burst speed.
	Normal = Profile{Frequency: 6.0, Damping: 1.0}
	// Brisk snaps to the target quickly.
	Brisk = Profile{Frequency: 11.0, Damping: 1.0}
	// Bouncy is underdamped and overshoots before settling.
	Bouncy = Profile{Frequency: 8.0, Damping: 0.55}
)

const stepsPerSecond = 60

func (p Profile) spring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(stepsPerSecond), p.Frequency, p.Damping)
}

// ProfileByName maps a config token to a Profile. Unknown tokens fall back
// to Normal.
func ProfileByName(name string) Profile {
	switch name {
	case "gentle":
		return Gentle
	case "brisk":
		return Brisk
	case "bouncy":
		return Bouncy
	default:
		return Normal
	}
}
