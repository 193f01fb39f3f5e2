// Package model defines the core data structures of the championship.
//
// This package contains the following main types:
//   - Team: A named, ordered collection of players
//   - Player: A participant with a name and a playing position
//   - Referee: An official, registered independently of teams
//   - Championship: The roster of teams and referees carried through a run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The registry, bonus and report packages all consume these
// types, so centralizing them prevents import cycles.
package model
