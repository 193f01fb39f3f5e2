package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/nao1215/campeonato/internal/model"
)

// MarkdownGenerator renders the roster in Markdown format.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation instead of concatenating markup by hand, which keeps escaping
// and list syntax in one place.
type MarkdownGenerator struct{}

// NewMarkdownGenerator creates a MarkdownGenerator.
func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{}
}

// Generate renders a level one title and a bullet list each for teams and
// referees. Empty sections keep their heading and have no list.
func (g *MarkdownGenerator) Generate(teams []model.Team, referees []model.Referee) string {
	md := markdown.NewMarkdown(io.Discard)

	md.H1(Title)
	md.PlainText("")

	md.H2("Equipos")
	md.PlainText("")
	if len(teams) > 0 {
		names := make([]string, 0, len(teams))
		for _, team := range teams {
			names = append(names, team.Name)
		}
		md.BulletList(names...)
		md.PlainText("")
	}

	md.H2("Árbitros")
	md.PlainText("")
	if len(referees) > 0 {
		names := make([]string, 0, len(referees))
		for _, referee := range referees {
			names = append(names, referee.Name)
		}
		md.BulletList(names...)
	}

	return md.String()
}
