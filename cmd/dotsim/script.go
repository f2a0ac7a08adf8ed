package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
)

// step holds the actions pressed during a run of consecutive ticks.
type step struct {
	actions []cfg.ActionID
	frames  int
}

// Script is a parsed input sequence such as "right:30,right+jump:1,idle:20".
type Script struct {
	steps []step
	total int
}

var scriptActions = map[string]cfg.ActionID{
	"left":  cfg.ActionMoveLeft,
	"right": cfg.ActionMoveRight,
	"jump":  cfg.ActionJump,
}

// ParseScript parses comma separated "actions:frames" entries. Actions are
// joined with '+'; "idle" presses nothing.
func ParseScript(s string) (*Script, error) {
	script := &Script{}
	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}

	for i, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		names, count, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("entry %d %q: missing ':frames'", i+1, entry)
		}
		frames, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return nil, fmt.Errorf("entry %d %q: frames: %w", i+1, entry, err)
		}
		if frames <= 0 {
			return nil, fmt.Errorf("entry %d %q: frames must be positive", i+1, entry)
		}

		st := step{frames: frames}
		for _, name := range strings.Split(names, "+") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "idle" {
				continue
			}
			id, ok := scriptActions[name]
			if !ok {
				return nil, fmt.Errorf("entry %d %q: unknown action %q", i+1, entry, name)
			}
			st.actions = append(st.actions, id)
		}
		script.steps = append(script.steps, st)
		script.total += frames
	}
	return script, nil
}

// Len is the number of ticks the script covers.
func (s *Script) Len() int {
	return s.total
}

// Pressed returns the actions held on the given zero-based tick. Ticks past
// the end of the script press nothing.
func (s *Script) Pressed(tick int) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for _, st := range s.steps {
		if tick < st.frames {
			for _, id := range st.actions {
				pressed[id] = true
			}
			return pressed
		}
		tick -= st.frames
	}
	return pressed
}

// Advance rolls input forward one tick, so edges are computed the same way
// as for polled devices.
func (s *Script) Advance(input *components.InputData, tick int) {
	input.Advance(s.Pressed(tick))
}
