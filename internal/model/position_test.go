package model

import "testing"

// TestPositionString tests the String method of Position.
func TestPositionString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		position Position
		expected string
	}{
		{PositionForward, "Delantero"},
		{PositionGoalkeeper, "Portero"},
		{PositionDefender, "Defensa"},
		{PositionUnspecified, "Sin posición"},
		{Position(999), "Sin posición"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.position.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.position.String(), tc.expected)
			}
		})
	}
}

// TestParsePosition tests label parsing, including case folding and unknown labels.
func TestParsePosition(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		label    string
		expected Position
	}{
		{"Delantero", PositionForward},
		{"DELANTERO", PositionForward},
		{"forward", PositionForward},
		{"Portero", PositionGoalkeeper},
		{"  portero  ", PositionGoalkeeper},
		{"Goalkeeper", PositionGoalkeeper},
		{"Defensa", PositionDefender},
		{"defender", PositionDefender},
		{"Mediocampista", PositionUnspecified},
		{"", PositionUnspecified},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()
			if got := ParsePosition(tc.label); got != tc.expected {
				t.Errorf("ParsePosition(%q) = %v, expected %v", tc.label, got, tc.expected)
			}
		})
	}
}

// TestPositionMarshalText verifies that positions encode as their label.
func TestPositionMarshalText(t *testing.T) {
	t.Parallel()

	text, err := PositionGoalkeeper.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "Portero" {
		t.Errorf("expected 'Portero', got %q", string(text))
	}
}

// TestBonusTierString tests the String method of BonusTier.
func TestBonusTierString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		tier     BonusTier
		expected string
	}{
		{TierHigh, "alta"},
		{TierStandard, "estándar"},
		{TierBase, "base"},
		{BonusTier(42), "base"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.tier.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.tier.String(), tc.expected)
			}
		})
	}
}
