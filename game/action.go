package game

import "fmt"

type ActionKind int

const (
	ActionReveal ActionKind = iota
	ActionFlag
	ActionChord
)

func (kind ActionKind) String() string {
	switch kind {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionChord:
		return "chord"
	}
	return fmt.Sprintf("ActionKind(%d)", int(kind))
}

// Action is a single move against a cell
type Action struct {
	Kind ActionKind
	Pos  Position
}

func (action Action) String() string {
	return fmt.Sprintf("%s%v", action.Kind, action.Pos)
}

func RevealAt(pos Position) Action {
	return Action{Kind: ActionReveal, Pos: pos}
}

func FlagAt(pos Position) Action {
	return Action{Kind: ActionFlag, Pos: pos}
}

func ChordAt(pos Position) Action {
	return Action{Kind: ActionChord, Pos: pos}
}
