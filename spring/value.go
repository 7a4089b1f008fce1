package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is how close position and velocity must be to the target
// before an animation is considered finished.
const settleEpsilon = 1e-3

type listenerEntry struct {
	id int
	fn func(float64)
}

// Value is a mutable scalar advanced toward a target by a damped spring.
// Listeners observe every step in registration order. A Value is not safe
// for concurrent use; it is meant to be driven from the game loop.
type Value struct {
	pos    float64
	vel    float64
	target float64

	spring    harmonica.Spring
	animating bool

	nextID    int
	listeners []listenerEntry
}

func NewValue(initial float64) *Value {
	return &Value{pos: initial, target: initial}
}

// Current returns the value as of the last step.
func (v *Value) Current() float64 {
	return v.pos
}

// Target returns the equilibrium position of the in-flight animation, or the
// last one to run.
func (v *Value) Target() float64 {
	return v.target
}

// Animating reports whether an animation is in flight.
func (v *Value) Animating() bool {
	return v.animating
}

// SetCurrent jumps the value without notifying listeners and halts any
// in-flight animation.
func (v *Value) SetCurrent(x float64) {
	v.pos = x
	v.vel = 0
	v.target = x
	v.animating = false
}

// Animate retargets the value. The spring state is rebuilt from the profile,
// so a mid-flight retarget keeps the current position but adopts the new
// curve.
func (v *Value) Animate(target float64, p Profile) {
	v.target = target
	v.spring = p.spring()
	v.animating = true
}

// Update advances an in-flight animation by one step and notifies listeners
// with the new value. A listener may call SetCurrent or unsubscribe during
// notification.
func (v *Value) Update() {
	if !v.animating {
		return
	}
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	if math.Abs(v.pos-v.target) < settleEpsilon && math.Abs(v.vel) < settleEpsilon {
		v.pos = v.target
		v.vel = 0
		v.animating = false
	}
	v.notify()
}

// AddListener registers fn to observe every step. The returned func removes
// the listener; calling it more than once is fine.
func (v *Value) AddListener(fn func(float64)) func() {
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

func (v *Value) notify() {
	// Snapshot so listeners can unsubscribe mid-notification.
	snapshot := make([]listenerEntry, len(v.listeners))
	copy(snapshot, v.listeners)
	for _, l := range snapshot {
		l.fn(v.pos)
	}
}
