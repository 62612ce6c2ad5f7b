package tasklist

// Part identifies which control of a rendered entry received an interaction.
type Part int

const (
	PartNone Part = iota
	PartCheckbox
	PartLabel
	PartReminder
	PartDelete
)

func (p Part) String() string {
	switch p {
	case PartCheckbox:
		return "checkbox"
	case PartLabel:
		return "label"
	case PartReminder:
		return "reminder"
	case PartDelete:
		return "delete"
	}
	return "none"
}

// Action is what an interaction on an entry does. Exactly one action is
// resolved per interaction.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionDelete
	ActionRemind
)

func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionDelete:
		return "delete"
	case ActionRemind:
		return "remind"
	}
	return "none"
}

// ActionFor resolves the clicked part to an action.
// Precedence: delete, then toggle (label or checkbox), then remind.
func ActionFor(p Part) Action {
	switch {
	case p == PartDelete:
		return ActionDelete
	case p == PartLabel || p == PartCheckbox:
		return ActionToggle
	case p == PartReminder:
		return ActionRemind
	}
	return ActionNone
}
