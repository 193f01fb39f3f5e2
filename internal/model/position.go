package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// Position represents where a player lines up on the pitch.
// The position is the only input of the bonus tier classification.
//
// Design decision: We use iota-based constants rather than the raw labels
// so that the classification is an exhaustive switch instead of a chain of
// string comparisons. The String() method returns the domain label.
type Position int

const (
	// PositionUnspecified is used for players without a known position.
	PositionUnspecified Position = iota

	// PositionForward is an attacking player ("Delantero").
	PositionForward

	// PositionGoalkeeper is the player defending the goal ("Portero").
	PositionGoalkeeper

	// PositionDefender is a defensive player ("Defensa").
	PositionDefender
)

// String returns the domain label of the position.
func (p Position) String() string {
	switch p {
	case PositionForward:
		return "Delantero"
	case PositionGoalkeeper:
		return "Portero"
	case PositionDefender:
		return "Defensa"
	default:
		return "Sin posición"
	}
}

// MarshalText encodes the position as its domain label.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// positionLabels maps case-folded labels to positions.
// Both the Spanish labels used by the roster and their English names are accepted.
var positionLabels = map[string]Position{
	"delantero":  PositionForward,
	"forward":    PositionForward,
	"portero":    PositionGoalkeeper,
	"goalkeeper": PositionGoalkeeper,
	"defensa":    PositionDefender,
	"defender":   PositionDefender,
}

// ParsePosition converts a label into a Position.
// Matching ignores surrounding whitespace and letter case (Unicode case folding).
// Unknown labels map to PositionUnspecified; positions are never rejected.
func ParsePosition(label string) Position {
	key := cases.Fold().String(strings.TrimSpace(label))
	if p, ok := positionLabels[key]; ok {
		return p
	}
	return PositionUnspecified
}
