package registry

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/campeonato/internal/model"
)

// Registry creates the championship roster.
type Registry struct {
	// out receives the confirmation lines.
	out io.Writer

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets a custom logger for the registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a Registry that announces registrations on out.
// A nil out discards the confirmation lines.
func New(out io.Writer, opts ...Option) *Registry {
	if out == nil {
		out = io.Discard
	}

	r := &Registry{
		out:    out,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// entry describes a participant of the fixed roster.
// Positions are kept as the labels used on the team sheets.
type entry struct {
	name     string
	position string
}

// roster is the fixed demonstration roster, by team, in registration order.
var roster = []struct {
	team    string
	players []entry
}{
	{
		team: "Los Ganadores",
		players: []entry{
			{name: "Juan Pérez", position: "Delantero"},
			{name: "Pedro Pan", position: "Portero"},
		},
	},
	{
		team: "Los Retadores",
		players: []entry{
			{name: "Alicia Smith", position: "Defensa"},
		},
	},
}

// referees is the fixed list of hired referees.
var referees = []string{"Miguel Díaz"}

// Register builds the fixed roster and returns its teams and referees in
// registration order. Each call returns freshly allocated slices.
func (r *Registry) Register() ([]model.Team, []model.Referee) {
	teams := make([]model.Team, 0, len(roster))
	for _, t := range roster {
		team := model.NewTeam(t.team)
		for _, p := range t.players {
			team.AddPlayer(model.NewPlayer(p.name, model.ParsePosition(p.position)))
		}
		teams = append(teams, team)
		r.announceTeam(team)
	}

	hired := make([]model.Referee, 0, len(referees))
	for _, name := range referees {
		referee := model.NewReferee(name)
		hired = append(hired, referee)
		fmt.Fprintf(r.out, "Árbitro '%s' contratado.\n", referee.Name)
		r.logger.Debug("referee registered", "referee", referee.Name)
	}

	return teams, hired
}

func (r *Registry) announceTeam(team model.Team) {
	fmt.Fprintf(r.out, "Equipo '%s' registrado.\n", team.Name)
	r.logger.Debug("team registered",
		"team", team.Name,
		"players", len(team.Players),
	)
}
