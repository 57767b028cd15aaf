// Package theme holds the two-valued light/dark display mode.
//
// A State is built once per request and handed to every renderer that
// depends on it, so the dependency is visible where each consumer is
// constructed. Toggle is the only mutator.
package theme

import (
	"github.com/pkg/errors"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ErrUnknownMode is returned by ParseMode for anything but "light" or "dark".
var ErrUnknownMode = errors.New("unknown theme mode")

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	}
	return "", errors.Wrapf(ErrUnknownMode, "%q", s)
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m Mode) String() string { return string(m) }

type State struct {
	mode Mode
}

// NewState returns a State in mode m. Unknown modes fall back to Dark.
func NewState(m Mode) *State {
	if m != Light && m != Dark {
		m = Dark
	}
	return &State{mode: m}
}

func (s *State) Mode() Mode { return s.mode }

// Toggle flips the mode and returns the new value.
func (s *State) Toggle() Mode {
	s.mode = s.mode.Opposite()
	return s.mode
}

// Visuals returns every theme-dependent element for the current mode.
func (s *State) Visuals() Visuals { return VisualsFor(s.mode) }
