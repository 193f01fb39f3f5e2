// Package config provides configuration structures and utilities for campeonato.
// It defines which report formats a run renders and how verbose logging is,
// and loads optional overrides from a YAML configuration file.
//
// Without a configuration file the defaults reproduce the fixed
// demonstration: a plain text report followed by an HTML report.
package config
