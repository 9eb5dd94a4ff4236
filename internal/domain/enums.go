package domain

import "strings"

type Action string

const (
	ActionIn  Action = "in"
	ActionOut Action = "out"
)

// ParseAction accepts "in"/"out" in any case, surrounded by whitespace.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionIn:
		return ActionIn, nil
	case ActionOut:
		return ActionOut, nil
	}
	return "", ErrInvalidAction
}

type AnomalyKind string

const (
	// AnomalyReplacedIn marks an In discarded because a later In arrived first.
	AnomalyReplacedIn AnomalyKind = "replaced_in"
	AnomalyOrphanOut  AnomalyKind = "orphan_out"
	AnomalyOpenIn     AnomalyKind = "open_in"
)

// NoProject is stored when a punch carries no project label.
const NoProject = "-"

// AllFilter is the filter value meaning "no restriction".
const AllFilter = "All"
