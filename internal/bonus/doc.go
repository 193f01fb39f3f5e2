// Package bonus classifies players into bonus tiers by position.
//
// The classification only announces the tier of each player. No monetary
// amount is computed and nothing is returned to the caller.
package bonus
