package bonus

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/campeonato/internal/model"
)

// Header is written before the tier lines of a classification run.
const Header = "\n--- Calculando Bonificaciones de Jugadores ---"

// Classifier announces the bonus tier of every player of the given teams.
type Classifier interface {
	Classify(teams []model.Team)
}

// TierFor returns the bonus tier of a position.
// Forwards get the high tier, goalkeepers the standard tier and every other
// position, including defenders, the base tier.
func TierFor(position model.Position) model.BonusTier {
	switch position {
	case model.PositionForward:
		return model.TierHigh
	case model.PositionGoalkeeper:
		return model.TierStandard
	default:
		return model.TierBase
	}
}

// PositionClassifier is the default Classifier. It writes one line per player.
type PositionClassifier struct {
	out    io.Writer
	logger *slog.Logger
}

// Option configures a PositionClassifier.
type Option func(*PositionClassifier)

// WithLogger sets a custom logger for the classifier.
func WithLogger(logger *slog.Logger) Option {
	return func(c *PositionClassifier) {
		c.logger = logger
	}
}

// NewPositionClassifier creates a PositionClassifier writing to out.
// A nil out discards the tier lines.
func NewPositionClassifier(out io.Writer, opts ...Option) *PositionClassifier {
	if out == nil {
		out = io.Discard
	}

	c := &PositionClassifier{
		out:    out,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Classify writes the header and then one tier line per player, in team and
// player order.
func (c *PositionClassifier) Classify(teams []model.Team) {
	fmt.Fprintln(c.out, Header)

	for _, team := range teams {
		for _, player := range team.Players {
			tier := TierFor(player.Position)
			fmt.Fprintln(c.out, Line(player, tier))
			c.logger.Debug("bonus tier assigned",
				"team", team.Name,
				"player", player.Name,
				"tier", tier.String(),
			)
		}
	}
}

// Line formats the announcement for a player in the given tier.
// Tiers with a dedicated rule name the position that earned them.
func Line(player model.Player, tier model.BonusTier) string {
	switch tier {
	case model.TierHigh:
		return fmt.Sprintf("Calculando bonificación %s para %s: %s", tier, model.PositionForward, player.Name)
	case model.TierStandard:
		return fmt.Sprintf("Calculando bonificación %s para %s: %s", tier, model.PositionGoalkeeper, player.Name)
	default:
		return fmt.Sprintf("Calculando bonificación %s para: %s", tier, player.Name)
	}
}
