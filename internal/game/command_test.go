package game

import (
	"errors"
	"testing"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
		over     bool
	}{
		{StatePlaying, "playing", false},
		{StateWon, "won", true},
		{StateLost, "lost", true},
		{State(99), "unknown", false},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
		if got := tt.state.Over(); got != tt.over {
			t.Errorf("State(%d).Over() = %v, want %v", tt.state, got, tt.over)
		}
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
		err   bool
	}{
		{"mine", ActionMark, false},
		{"free", ActionExplore, false},
		{" FREE ", ActionExplore, false},
		{"Mine", ActionMark, false},
		{"flag", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.input)
		if tt.err {
			if !errors.Is(err, ErrUnknownAction) {
				t.Errorf("ParseAction(%q) error = %v, want ErrUnknownAction", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{Row: 2, Col: 5, Action: ActionExplore}
	if got := cmd.String(); got != "free (2,5)" {
		t.Errorf("Command.String() = %q", got)
	}
	if got := Action(9).String(); got != "unknown" {
		t.Errorf("Action(9).String() = %q", got)
	}
}
