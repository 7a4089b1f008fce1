package spring

import (
	"math"
	"testing"
)

const maxSteps = 600

func TestAnimateConverges(t *testing.T) {
	cases := []struct {
		name    string
		initial float64
		target  float64
		profile Profile
	}{
		{"up_normal", 0, 100, Normal},
		{"down_gentle", 50, -200, Gentle},
		{"brisk_large", -400, 800, Brisk},
		{"bouncy", 0, 100, Bouncy},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := NewValue(c.initial)
			v.Animate(c.target, c.profile)
			if !v.Animating() {
				t.Fatalf("expected animation in flight after Animate")
			}
			for i := 0; i < maxSteps && v.Animating(); i++ {
				v.Update()
			}
			if v.Animating() {
				t.Fatalf("animation did not settle within %d steps", maxSteps)
			}
			if v.Current() != c.target {
				t.Fatalf("expected settled value %v, got %v", c.target, v.Current())
			}
		})
	}
}

func TestCriticallyDampedApproachIsMonotone(t *testing.T) {
	v := NewValue(0)
	v.Animate(100, Normal)
	prev := math.Abs(100 - v.Current())
	for i := 0; i < maxSteps && v.Animating(); i++ {
		v.Update()
		dist := math.Abs(100 - v.Current())
		if dist > prev+1e-9 {
			t.Fatalf("step %d moved away from target: %v > %v", i, dist, prev)
		}
		prev = dist
	}
}

func TestListenersObserveEveryStep(t *testing.T) {
	v := NewValue(0)
	steps := 0
	var last float64
	v.AddListener(func(x float64) {
		steps++
		last = x
	})

	v.Animate(10, Normal)
	for i := 0; i < 5; i++ {
		v.Update()
	}
	if steps != 5 {
		t.Fatalf("expected 5 notifications, got %d", steps)
	}
	if last != v.Current() {
		t.Fatalf("listener saw %v, current is %v", last, v.Current())
	}

	// A settled value must not notify.
	for v.Animating() {
		v.Update()
	}
	settled := steps
	v.Update()
	v.Update()
	if steps != settled {
		t.Fatalf("idle Update notified listeners")
	}
}

func TestUnsubscribe(t *testing.T) {
	v := NewValue(0)
	first := 0
	second := 0
	unsub := v.AddListener(func(float64) { first++ })
	v.AddListener(func(float64) { second++ })

	v.Animate(10, Normal)
	v.Update()
	unsub()
	v.Update()

	if first != 1 {
		t.Fatalf("expected removed listener to see 1 step, saw %d", first)
	}
	if second != 2 {
		t.Fatalf("expected remaining listener to see 2 steps, saw %d", second)
	}

	// Unsubscribing twice is a no-op.
	unsub()
	v.Update()
	if first != 1 {
		t.Fatalf("double unsubscribe re-registered the listener")
	}
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	v := NewValue(0)
	var unsub func()
	calls := 0
	unsub = v.AddListener(func(float64) {
		calls++
		unsub()
	})
	v.Animate(10, Normal)
	v.Update()
	v.Update()
	if calls != 1 {
		t.Fatalf("expected a self-removing listener to fire once, fired %d times", calls)
	}
}

func TestSetCurrentHaltsAnimation(t *testing.T) {
	v := NewValue(0)
	notified := 0
	v.AddListener(func(float64) { notified++ })

	v.Animate(100, Normal)
	v.Update()
	v.SetCurrent(-42)

	if v.Animating() {
		t.Fatalf("SetCurrent should halt the animation")
	}
	if v.Current() != -42 {
		t.Fatalf("expected current -42, got %v", v.Current())
	}
	before := notified
	v.Update()
	if notified != before {
		t.Fatalf("halted value should not step or notify")
	}
}
