package report

import (
	"io"

	"golang.org/x/text/cases"

	"github.com/nao1215/campeonato/internal/model"
)

// Format names accepted by ForFormat.
const (
	// FormatText selects the plain text report.
	FormatText = "TEXTO"

	// FormatHTML selects the HTML report. Unknown names fall back to it.
	FormatHTML = "HTML"

	// FormatMarkdown selects the Markdown report.
	FormatMarkdown = "MARKDOWN"

	// FormatJSON selects the JSON report.
	FormatJSON = "JSON"
)

// Title is the report title shared by every format.
const Title = "Reporte del Campeonato"

// Generator renders teams and referees as a single formatted string.
// Generation never fails: empty lists render as empty sections.
type Generator interface {
	Generate(teams []model.Team, referees []model.Referee) string
}

// ForFormat returns the generator for a format name.
// Matching is case-insensitive but otherwise exact. Any name that is not a
// known format selects the HTML generator.
func ForFormat(format string) Generator {
	switch normalizeFormat(format) {
	case normalizeFormat(FormatText):
		return NewTextGenerator()
	case normalizeFormat(FormatMarkdown), "md":
		return NewMarkdownGenerator()
	case normalizeFormat(FormatJSON):
		return NewJSONGenerator(WithPrettyPrint())
	default:
		return NewHTMLGenerator()
	}
}

// normalizeFormat folds a format name for comparison.
// Surrounding whitespace is kept, so " TEXTO " is not a known format.
func normalizeFormat(format string) string {
	return cases.Fold().String(format)
}

// Write renders the report with g and writes it to w followed by a newline.
// It returns the number of bytes written.
func Write(w io.Writer, g Generator, teams []model.Team, referees []model.Referee) (int, error) {
	return io.WriteString(w, g.Generate(teams, referees)+"\n")
}
