package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/campeonato/internal/bonus"
	"github.com/nao1215/campeonato/internal/model"
	"github.com/nao1215/campeonato/internal/registry"
	"github.com/nao1215/campeonato/internal/report"
)

// Banners printed before the reports of a run.
const (
	// FirstReportBanner precedes the first report.
	FirstReportBanner = "\n--- Generando Reportes ---"

	// NextReportBanner precedes every following report.
	NextReportBanner = "\n--- Generando más Reportes ---"
)

// Registerer produces the teams and referees of a championship.
// *registry.Registry implements it.
type Registerer interface {
	Register() ([]model.Team, []model.Referee)
}

// RegisterStep fills the championship with the registered participants.
type RegisterStep struct {
	registerer Registerer
}

// NewRegisterStep creates a registration step.
func NewRegisterStep(registerer Registerer) *RegisterStep {
	return &RegisterStep{registerer: registerer}
}

// Name returns the step name.
func (s *RegisterStep) Name() string {
	return "register"
}

// Do replaces the championship roster with the registered participants.
func (s *RegisterStep) Do(_ context.Context, championship *model.Championship) error {
	championship.Teams, championship.Referees = s.registerer.Register()
	return nil
}

// BonusStep classifies the players of the registered teams.
type BonusStep struct {
	classifier bonus.Classifier
}

// NewBonusStep creates a bonus classification step.
func NewBonusStep(classifier bonus.Classifier) *BonusStep {
	return &BonusStep{classifier: classifier}
}

// Name returns the step name.
func (s *BonusStep) Name() string {
	return "bonus"
}

// Do runs the classifier over the championship teams.
func (s *BonusStep) Do(_ context.Context, championship *model.Championship) error {
	s.classifier.Classify(championship.Teams)
	return nil
}

// ReportStep prints a banner followed by a generated report.
type ReportStep struct {
	generator report.Generator
	out       io.Writer
	banner    string
	name      string
}

// ReportStepOption configures a ReportStep.
type ReportStepOption func(*ReportStep)

// WithBanner sets the line printed before the report.
// An empty banner prints nothing.
func WithBanner(banner string) ReportStepOption {
	return func(s *ReportStep) {
		s.banner = banner
	}
}

// WithStepName overrides the step name used in logs.
func WithStepName(name string) ReportStepOption {
	return func(s *ReportStep) {
		s.name = name
	}
}

// NewReportStep creates a step writing the report of generator to out.
func NewReportStep(generator report.Generator, out io.Writer, opts ...ReportStepOption) *ReportStep {
	s := &ReportStep{
		generator: generator,
		out:       out,
		name:      "report",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return s.name
}

// Do writes the banner and the report.
func (s *ReportStep) Do(_ context.Context, championship *model.Championship) error {
	if s.banner != "" {
		if _, err := fmt.Fprintln(s.out, s.banner); err != nil {
			return fmt.Errorf("failed to write report banner: %w", err)
		}
	}

	if _, err := report.Write(s.out, s.generator, championship.Teams, championship.Referees); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// NewDemo builds the demonstration pipeline: register the participants,
// classify the players, then render one report per format in order.
// All domain output goes to out; logger receives the diagnostics and may be nil.
func NewDemo(out io.Writer, formats []string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewRegisterStep(registry.New(out, registry.WithLogger(logger))),
		NewBonusStep(bonus.NewPositionClassifier(out, bonus.WithLogger(logger))),
	)

	for i, format := range formats {
		banner := NextReportBanner
		if i == 0 {
			banner = FirstReportBanner
		}
		p.AddStep(NewReportStep(
			report.ForFormat(format),
			out,
			WithBanner(banner),
			WithStepName("report:"+format),
		))
	}

	return p
}
