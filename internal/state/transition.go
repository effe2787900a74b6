package state

type transitionKind int

const (
	transitionReplace transitionKind = iota
	transitionPush
	transitionPop
)

func (k transitionKind) String() string {
	switch k {
	case transitionReplace:
		return "replace"
	case transitionPush:
		return "push"
	default:
		return "pop"
	}
}

// Transition tells the machine how to rebuild the stack after an update.
type Transition struct {
	kind transitionKind
	old  State
	next State
}

// Replace puts next where the updated screen was. Returning the screen
// itself keeps it on top.
func Replace(next State) Transition {
	return Transition{kind: transitionReplace, next: next}
}

// Push restores old in place of the updated screen and stacks next on top.
func Push(old, next State) Transition {
	return Transition{kind: transitionPush, old: old, next: next}
}

// Pop drops the updated screen, uncovering the one beneath.
func Pop() Transition {
	return Transition{kind: transitionPop}
}
