// Package report renders the championship roster in different formats.
//
// This package contains generators for different output formats:
//   - TextGenerator: Plain text for terminal display
//   - HTMLGenerator: A minimal HTML page
//   - MarkdownGenerator: GitHub Flavored Markdown for documentation
//   - JSONGenerator: Structured JSON for tool integration
//
// Design decision: We separate report rendering from the roster data
// structures (which are in the model package). This allows adding new output
// formats without modifying the core data structures.
//
// Generators implement the Generator interface, so the caller can either
// inject a concrete generator or pick one by name with ForFormat.
package report
