package gesture

import (
	"testing"

	"touchsnake/internal/snake"
)

func TestPointerLifecycle(t *testing.T) {
	var p Pointer

	if _, ok := p.Poll(); ok {
		t.Fatal("idle pointer reported a touch")
	}

	steps := []struct {
		down  bool
		pos   Vec
		phase Phase
		want  Vec
	}{
		{true, Vec{10, 10}, Started, Vec{10, 10}},
		{true, Vec{10, 10}, Stationary, Vec{10, 10}},
		{true, Vec{20, 10}, Moved, Vec{20, 10}},
		{false, Vec{}, Ended, Vec{20, 10}},
	}
	for i, s := range steps {
		p.Set(s.down, s.pos)
		got, ok := p.Poll()
		if !ok {
			t.Fatalf("step %d: no touch", i)
		}
		if got.Phase != s.phase || got.Pos != s.want {
			t.Errorf("step %d: got %s at %v, want %s at %v", i, got.Phase, got.Pos, s.phase, s.want)
		}
	}

	if _, ok := p.Poll(); ok {
		t.Error("touch reported after Ended")
	}
}

func TestPointerTapBetweenPolls(t *testing.T) {
	var p Pointer
	p.Set(true, Vec{5, 6})
	p.Set(false, Vec{})

	if got, ok := p.Poll(); !ok || got.Phase != Started || got.Pos != (Vec{5, 6}) {
		t.Errorf("first poll = %v %v, want Started at (5,6)", got, ok)
	}
	if got, ok := p.Poll(); !ok || got.Phase != Ended {
		t.Errorf("second poll = %v %v, want Ended", got, ok)
	}
}

func TestPointerCancel(t *testing.T) {
	var p Pointer
	p.Cancel()
	if _, ok := p.Poll(); ok {
		t.Fatal("cancel without a gesture produced a touch")
	}

	p.Set(true, Vec{1, 1})
	p.Poll()
	p.Set(true, Vec{3, 1})
	p.Cancel()

	got, ok := p.Poll()
	if !ok || got.Phase != Cancelled || got.Pos != (Vec{3, 1}) {
		t.Errorf("got %v %v, want Cancelled at (3,1)", got, ok)
	}
	if p.Active() {
		t.Error("pointer still active after cancel")
	}
}

func TestPointerCancelBeforeFirstPoll(t *testing.T) {
	var p Pointer
	p.Set(true, Vec{1, 1})
	p.Cancel()

	want := []Phase{Started, Cancelled}
	for i, phase := range want {
		got, ok := p.Poll()
		if !ok || got.Phase != phase {
			t.Fatalf("poll %d = %s (ok=%v), want %s", i, got.Phase, ok, phase)
		}
	}
	if _, ok := p.Poll(); ok {
		t.Error("touch reported after Cancelled")
	}
}

func TestPointerReleaseAndPressBetweenPolls(t *testing.T) {
	var p Pointer
	p.Set(true, Vec{1, 1})
	p.Poll()

	p.Set(false, Vec{})
	p.Set(true, Vec{50, 50})

	steps := []struct {
		phase Phase
		pos   Vec
	}{
		{Ended, Vec{1, 1}},
		{Started, Vec{50, 50}},
		{Stationary, Vec{50, 50}},
	}
	for i, s := range steps {
		got, ok := p.Poll()
		if !ok || got.Phase != s.phase || got.Pos != s.pos {
			t.Errorf("poll %d = %s at %v (ok=%v), want %s at %v", i, got.Phase, got.Pos, ok, s.phase, s.pos)
		}
	}
}

func TestPointerDoubleTapLatchesNewStart(t *testing.T) {
	var (
		p  Pointer
		tr Tracker
	)
	p.Set(true, Vec{10, 10})
	tr.Observe(mustPoll(t, &p))

	p.Set(false, Vec{})
	p.Set(true, Vec{100, 100})
	p.Set(true, Vec{100, 60})

	tr.Observe(mustPoll(t, &p)) // Ended
	tr.Observe(mustPoll(t, &p)) // Started at the second press
	r := tr.Observe(mustPoll(t, &p))

	if r.Start != (Vec{100, 100}) {
		t.Errorf("start = %v, want (100,100)", r.Start)
	}
	if r.Touch.Phase != Moved || r.Direction != snake.Up {
		t.Errorf("got %s %s, want Moved Up", r.Touch.Phase, r.Direction)
	}
}

func mustPoll(t *testing.T, p *Pointer) Touch {
	t.Helper()
	got, ok := p.Poll()
	if !ok {
		t.Fatal("no touch")
	}
	return got
}
