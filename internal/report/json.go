package report

import (
	"encoding/json"

	"github.com/nao1215/campeonato/internal/model"
)

// JSONGenerator renders the roster in JSON format.
// This format is designed for tool integration and includes the players of
// each team, which the other formats omit.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because it is sufficient for a handful of flat structs.
type JSONGenerator struct {
	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONGeneratorOption configures a JSONGenerator.
type JSONGeneratorOption func(*JSONGenerator)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONGeneratorOption {
	return func(g *JSONGenerator) {
		g.indent = true
		g.indentPrefix = prefix
		g.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONGeneratorOption {
	return WithIndent("", "  ")
}

// NewJSONGenerator creates a JSONGenerator. Output is compact by default.
func NewJSONGenerator(opts ...JSONGeneratorOption) *JSONGenerator {
	g := &JSONGenerator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// jsonReport is the document produced by JSONGenerator.
type jsonReport struct {
	Title    string          `json:"title"`
	Teams    []model.Team    `json:"teams"`
	Referees []model.Referee `json:"referees"`
}

// Generate renders the roster as a JSON document. Nil lists are encoded as
// empty arrays.
func (g *JSONGenerator) Generate(teams []model.Team, referees []model.Referee) string {
	doc := jsonReport{
		Title:    Title,
		Teams:    make([]model.Team, 0, len(teams)),
		Referees: make([]model.Referee, 0, len(referees)),
	}
	for _, team := range teams {
		if team.Players == nil {
			team.Players = []model.Player{}
		}
		doc.Teams = append(doc.Teams, team)
	}
	doc.Referees = append(doc.Referees, referees...)

	var data []byte
	var err error
	if g.indent {
		data, err = json.MarshalIndent(doc, g.indentPrefix, g.indentString)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		// Only reachable if a model type stops being encodable.
		return "{}"
	}

	return string(data)
}
