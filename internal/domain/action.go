package domain

import "strings"

// Action is the stocking action recommended for a part.
type Action string

const (
	ActionOrder    Action = "Order"
	ActionReduce   Action = "Reduce Stock"
	ActionNoAction Action = "No Action"
)

var actionsByLabel = map[string]Action{
	"order":        ActionOrder,
	"reduce stock": ActionReduce,
	"no action":    ActionNoAction,
}

// ParseAction returns the action for a given label (case-insensitive).
func ParseAction(label string) (Action, bool) {
	action, ok := actionsByLabel[strings.ToLower(strings.TrimSpace(label))]

	return action, ok
}

// Valid reports whether the action is one of the three defined actions.
func (a Action) Valid() bool {
	_, ok := actionsByLabel[strings.ToLower(string(a))]
	return ok
}
