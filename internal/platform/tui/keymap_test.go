package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/anypang/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"x", runeKey("x"), core.ActionCancel, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionCancel, false},
		{"h", runeKey("h"), core.ActionHint, false},
		{"question mark", runeKey("?"), core.ActionHint, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, s := range []string{"d", "z", "h"} {
		if km.MapKeyToFrame(runeKey(s), &frame) {
			t.Fatalf("%q reported as quit", s)
		}
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should report quit")
	}

	expected := []core.Action{core.ActionRight, core.ActionHint}
	if len(frame.Order) != len(expected) {
		t.Fatalf("Order = %v, expected %v", frame.Order, expected)
	}
	for i, a := range expected {
		if frame.Order[i] != a {
			t.Errorf("Order[%d] = %v, expected %v", i, frame.Order[i], a)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
