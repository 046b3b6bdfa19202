package snake

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, opposite Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.opposite {
			t.Errorf("%s.Opposite() = %s, expected %s", tc.dir, got, tc.opposite)
		}
		if got := tc.dir.Opposite().Opposite(); got != tc.dir {
			t.Errorf("%s.Opposite().Opposite() = %s", tc.dir, got)
		}
	}

	bogus := Direction(42)
	if bogus.Valid() {
		t.Error("Direction(42) should not be valid")
	}
	if bogus.Opposite() != bogus {
		t.Error("Opposite() of an undefined direction should return it unchanged")
	}
	if bogus.Delta() != (core.Position{}) {
		t.Error("Delta() of an undefined direction should be zero")
	}
}

func TestDirectionDeltaUpIsPositiveY(t *testing.T) {
	tests := []struct {
		dir   Direction
		delta core.Position
	}{
		{DirUp, core.Pos(0, 1)},
		{DirDown, core.Pos(0, -1)},
		{DirLeft, core.Pos(-1, 0)},
		{DirRight, core.Pos(1, 0)},
	}

	for _, tc := range tests {
		if got := tc.dir.Delta(); got != tc.delta {
			t.Errorf("%s.Delta() = %v, expected %v", tc.dir, got, tc.delta)
		}
	}
}

func TestDirectionFromInput(t *testing.T) {
	in := core.NewInputFrame()
	if _, ok := DirectionFromInput(in); ok {
		t.Error("empty frame should carry no direction")
	}

	in.Set(core.ActionPause)
	if _, ok := DirectionFromInput(in); ok {
		t.Error("non-directional actions should be ignored")
	}

	// The latest directional key wins
	tests := []struct {
		name string
		keys []core.Action
		want Direction
	}{
		{"right then left", []core.Action{core.ActionRight, core.ActionLeft}, DirLeft},
		{"left then right", []core.Action{core.ActionLeft, core.ActionRight}, DirRight},
		{"left then down", []core.Action{core.ActionLeft, core.ActionDown}, DirDown},
		{"up, pause", []core.Action{core.ActionUp, core.ActionPause}, DirUp},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := core.NewInputFrame()
			for _, k := range tc.keys {
				f.Set(k)
			}
			if d, ok := DirectionFromInput(f); !ok || d != tc.want {
				t.Errorf("resolved to %s, expected %s", d, tc.want)
			}
		})
	}

	// Without ordering info, held directions resolve as Left, Down, Up, Right
	held := core.InputFrame{Actions: map[core.Action]bool{
		core.ActionRight: true,
		core.ActionUp:    true,
		core.ActionDown:  true,
	}}
	if d, _ := DirectionFromInput(held); d != DirDown {
		t.Errorf("unordered frame resolved to %s, expected down", d)
	}

	in.Clear()
	if _, ok := DirectionFromInput(in); ok || in.LastDirection != core.ActionNone {
		t.Error("Clear() should drop the direction")
	}
}
