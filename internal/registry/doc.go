// Package registry registers the participants of the championship.
//
// Registration produces the fixed demonstration roster: two teams with their
// players and one referee. Every created entity is announced with a
// human-readable confirmation line on the registry's output writer.
package registry
