package report

import (
	"strings"

	"github.com/nao1215/campeonato/internal/model"
)

// TextGenerator renders the roster as plain text.
type TextGenerator struct{}

// NewTextGenerator creates a TextGenerator.
func NewTextGenerator() *TextGenerator {
	return &TextGenerator{}
}

// Generate renders a header line followed by the team and referee sections.
// Every entry is prefixed with "- " and every line ends with a newline.
func (g *TextGenerator) Generate(teams []model.Team, referees []model.Referee) string {
	var sb strings.Builder

	sb.WriteString("--- " + Title + " (TEXTO) ---\n")

	sb.WriteString("EQUIPOS:\n")
	for _, team := range teams {
		sb.WriteString("- " + team.Name + "\n")
	}

	sb.WriteString("ÁRBITROS:\n")
	for _, referee := range referees {
		sb.WriteString("- " + referee.Name + "\n")
	}

	return sb.String()
}
