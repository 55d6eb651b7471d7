// Package executor is the thin orchestration shell around the pure
// evaluation core: it resolves the scenario and persona, runs the rule
// engine and the metrics engine, merges both into the flat evaluation
// record and hands it to the optional store.
package executor

import (
	"context"
	"time"

	"github.com/casewise/compliance-agent/internal/models"
	"github.com/rs/zerolog"
)

// RuleEngine produces the compliance verdict for a response.
type RuleEngine interface {
	Evaluate(scenario models.Scenario, response string, persona *models.Persona) (models.Verdict, error)
}

// MetricsEngine computes the supplementary linguistic scores.
type MetricsEngine interface {
	Compute(response string, scenario models.Scenario, verdict models.Verdict) models.MetricsBundle
}

// ScenarioSource resolves scenario and persona records by identifier.
type ScenarioSource interface {
	Scenario(id string) (models.Scenario, error)
	Persona(id int) (models.Persona, error)
}

// RecordStore persists finished evaluation records.
type RecordStore interface {
	Save(ctx context.Context, record models.EvaluationRecord) error
}

type Executor struct {
	scenarios ScenarioSource
	rules     RuleEngine
	metrics   MetricsEngine
	store     RecordStore
	logger    *zerolog.Logger
}

// NewExecutor wires the pipeline. store may be nil for evaluate-only use.
func NewExecutor(scenarios ScenarioSource, rules RuleEngine, metrics MetricsEngine, store RecordStore, logger *zerolog.Logger) *Executor {
	return &Executor{
		scenarios: scenarios,
		rules:     rules,
		metrics:   metrics,
		store:     store,
		logger:    logger,
	}
}

// Execute runs one evaluation end to end. The persona, when present, is
// carried through as record metadata only; it does not influence scoring.
func (e *Executor) Execute(ctx context.Context, req models.EvaluationRequest) (models.EvaluationRecord, error) {
	e.logger.Info().
		Str("scenario_id", req.ScenarioID).
		Str("agent_name", req.AgentName).
		Msg("starting evaluation")

	sc, err := e.scenarios.Scenario(req.ScenarioID)
	if err != nil {
		return models.EvaluationRecord{}, err
	}

	var persona *models.Persona
	if req.PersonaID != 0 {
		p, err := e.scenarios.Persona(req.PersonaID)
		if err != nil {
			return models.EvaluationRecord{}, err
		}
		persona = &p
	}

	verdict, err := e.rules.Evaluate(sc, req.Response, persona)
	if err != nil {
		return models.EvaluationRecord{}, err
	}

	bundle := e.metrics.Compute(req.Response, sc, verdict)
	record := models.Merge(req, sc, verdict, bundle, time.Now().UTC())

	if e.store != nil {
		// History is best-effort: a storage failure must not void a
		// completed evaluation.
		if err := e.store.Save(ctx, record); err != nil {
			e.logger.Error().Err(err).Str("scenario_id", sc.ID).Msg("failed to store evaluation record")
		}
	}

	e.logger.Info().
		Str("scenario_id", sc.ID).
		Str("overall", string(verdict.Overall)).
		Int("compliance_score", verdict.ComplianceScore).
		Msg("evaluation complete")

	return record, nil
}
