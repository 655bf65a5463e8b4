package augment

// MutationAction identifies one kind of relationship mutation.
type MutationAction int

const (
	// ActionCreate connects two nodes with a new relationship.
	ActionCreate MutationAction = iota
	// ActionDelete removes an existing relationship between two nodes.
	ActionDelete
)

// mutationActions is the fixed enumeration the orchestrator walks, in order.
var mutationActions = [...]MutationAction{ActionCreate, ActionDelete}

// Actions returns the supported mutation actions in orchestration order.
func Actions() []MutationAction {
	return mutationActions[:]
}

// Valid reports whether the action is a member of the closed enumeration.
func (a MutationAction) Valid() bool {
	return a == ActionCreate || a == ActionDelete
}

// Label returns the wire-visible mutation verb used to name generated fields.
// The label is part of the public API surface ("AddPersonKnows") and must not
// change; internal branching uses the enum values, never the label.
func (a MutationAction) Label() string {
	switch a {
	case ActionCreate:
		return "Add"
	case ActionDelete:
		return "Remove"
	default:
		return ""
	}
}

// Verb returns the authorization scope verb for the action, or the empty
// string for actions outside the closed set. Callers appending authorization
// directives treat an empty verb as "append nothing".
func (a MutationAction) Verb() string {
	switch a {
	case ActionCreate:
		return "Create"
	case ActionDelete:
		return "Delete"
	default:
		return ""
	}
}
