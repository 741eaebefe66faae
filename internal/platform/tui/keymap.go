package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/anypang/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to actions.
var gameKeys = map[string]core.Action{
	"up": core.ActionUp, "w": core.ActionUp,
	"down": core.ActionDown, "s": core.ActionDown,
	"left": core.ActionLeft, "a": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight,
	" ": core.ActionConfirm, "enter": core.ActionConfirm,
	"x": core.ActionCancel, "backspace": core.ActionCancel,
	"h": core.ActionHint, "?": core.ActionHint,
	"b": core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"up": MenuActionUp, "w": MenuActionUp, "k": MenuActionUp,
	"down": MenuActionDown, "s": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionScoreboard,
	"q": MenuActionQuit, "ctrl+c": MenuActionQuit,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey translates a key message to a game action.
// isQuit is set for the quit keys, which the platform handles itself.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.game[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
