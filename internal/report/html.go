package report

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/campeonato/internal/model"
)

// HTMLGenerator renders the roster as a minimal HTML page.
// Names are escaped, so the page is always well formed.
type HTMLGenerator struct{}

// NewHTMLGenerator creates an HTMLGenerator.
func NewHTMLGenerator() *HTMLGenerator {
	return &HTMLGenerator{}
}

// Generate renders an <h1> title and one <h2>-headed unordered list each for
// teams and referees.
func (g *HTMLGenerator) Generate(teams []model.Team, referees []model.Referee) string {
	var sb strings.Builder

	sb.WriteString("<html><body>\n")
	sb.WriteString(" <h1>" + html.EscapeString(Title) + "</h1>\n")

	sb.WriteString(" <h2>Equipos</h2>\n <ul>\n")
	for _, team := range teams {
		writeListItem(&sb, team.Name)
	}

	sb.WriteString(" </ul>\n <h2>Árbitros</h2>\n <ul>\n")
	for _, referee := range referees {
		writeListItem(&sb, referee.Name)
	}

	sb.WriteString(" </ul>\n</body></html>")

	return sb.String()
}

func writeListItem(sb *strings.Builder, text string) {
	sb.WriteString(" <li>")
	sb.WriteString(html.EscapeString(text))
	sb.WriteString("</li>\n")
}
