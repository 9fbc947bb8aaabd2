package main

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/shared/gamemath"
)

func TestReplayEveryLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": {Data: []byte("100000\n100000\n111111\n")},
		"b.txt": {Data: []byte("1000\n1000\n1111\n")},
	}
	levels, names, err := level.LoadAll(fsys, ".", 64, 64)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	// Character maps carry no zones; give the first level an exit.
	levels["a"].Zones = []level.Zone{{Kind: level.ZoneExit, Rect: gamemath.Rect{X: 320, Y: 64, Width: 64, Height: 64}}}

	opts := replayOptions{
		physics: config.DefaultPhysics(),
		script:  []byte("axis = 1"),
		dt:      1.0 / 60.0,
		ticks:   300,
		every:   60,
	}
	want := map[string]bool{"a": true, "b": false}
	for _, name := range names {
		done, err := replay(levels[name], opts)
		if err != nil {
			t.Fatalf("replay %s: %v", name, err)
		}
		if done != want[name] {
			t.Fatalf("replay %s complete = %v, want %v", name, done, want[name])
		}
	}
}

func TestReplayBadScript(t *testing.T) {
	grid, err := level.ParseString("00\n11\n", 64, 64)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	opts := replayOptions{physics: config.DefaultPhysics(), script: []byte("axis = ("), dt: 1.0 / 60.0, ticks: 1, every: 1}
	if _, err := replay(&level.Level{Name: "bad", Grid: grid}, opts); err == nil {
		t.Fatalf("expected a compile error")
	}
}
