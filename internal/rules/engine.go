// Package rules implements the compliance rule engine: given a scenario and a
// raw agent response it produces the per-dimension verdict, the reasoning
// text and the compliance score. Everything here is pure and deterministic;
// the same inputs always yield the same verdict.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casewise/compliance-agent/internal/gate"
	"github.com/casewise/compliance-agent/internal/lexicon"
	"github.com/casewise/compliance-agent/internal/models"
)

// ErrInvalidScenario is returned when a scenario is missing the fields the
// engine needs. Evaluation is aborted with no partial result.
var ErrInvalidScenario = errors.New("invalid scenario")

// A ruleSet inspects the response and records scenario-specific violations,
// missing actions and the escalation determination on the evaluation.
type ruleSet func(e *evaluation)

// builtinRuleSets maps scenario identifiers to their bespoke rule sets.
// Dispatch is by exact identifier; everything else falls through to the
// generic keyword rule set.
var builtinRuleSets = map[string]ruleSet{
	"CS-REFUND-POLICY":   evaluateRefundPolicy,
	"CS-MEDICAL-ADVICE":  evaluateMedicalAdvice,
	"CS-DATA-REQUEST":    evaluateDataRequest,
	"CS-BILLING-DISPUTE": evaluateBillingDispute,
	"CS-PRODUCT-DEFECT":  evaluateProductDefect,
}

// evaluation is the mutable working state of a single rule-engine run.
type evaluation struct {
	scenario models.Scenario
	text     string
	lower    string

	policy     models.Outcome
	escalation models.Flag
	violations []string
	missing    []string
}

func (e *evaluation) violate(v string) {
	e.violations = append(e.violations, v)
	e.policy = models.OutcomeFail
}

func (e *evaluation) miss(m string) {
	e.missing = append(e.missing, m)
}

func (e *evaluation) containsAny(keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(e.lower, k) {
			return true
		}
	}
	return false
}

// Engine evaluates agent responses against scenario policies. It holds no
// state between calls and is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs the full rule pipeline: quality gate, tone check, scenario
// dispatch, hallucination check, overall verdict, reasoning and compliance
// score. The persona is accepted for future persona-conditioned evaluation
// but does not alter scoring.
func (en *Engine) Evaluate(scenario models.Scenario, response string, persona *models.Persona) (models.Verdict, error) {
	_ = persona

	if scenario.ID == "" {
		return models.Verdict{}, fmt.Errorf("%w: missing scenario id", ErrInvalidScenario)
	}

	if gate.IsGibberish(response) {
		return gibberishVerdict(), nil
	}

	quality := gate.QualityScore(response)

	e := &evaluation{
		scenario:   scenario,
		text:       response,
		lower:      strings.ToLower(response),
		policy:     models.OutcomePass,
		escalation: models.FlagNA,
	}

	tone := models.ToneOK
	if e.containsAny(lexicon.RudeWords) {
		tone = models.ToneNotOK
		e.violations = append(e.violations, "hostile or dismissive language")
	}

	rules, ok := builtinRuleSets[scenario.ID]
	if !ok {
		rules = evaluateGeneric
	}
	rules(e)

	// Short authoritative-sounding claims are more likely fabricated than
	// long, substantiated ones. Responses over 100 characters are never
	// flagged, even when they carry the same markers.
	hallucination := models.FlagNo
	if e.containsAny(lexicon.HallucinationMarkers) && len(e.lower) < 100 {
		hallucination = models.FlagYes
		e.violations = append(e.violations, "potential hallucination / fabricated information")
	}

	overall := models.OutcomePass
	if e.policy == models.OutcomeFail || len(e.violations) > 0 || len(e.missing) > 0 {
		overall = models.OutcomeFail
	}

	return models.Verdict{
		Intent:          models.OutcomePass,
		Policy:          e.policy,
		Hallucination:   hallucination,
		Tone:            tone,
		Escalation:      e.escalation,
		Overall:         overall,
		Reasoning:       buildReasoning(overall, e.escalation, tone, e.violations, e.missing),
		ComplianceScore: complianceScore(overall, quality, tone, hallucination, len(e.violations), len(e.missing)),
		Violations:      e.violations,
		MissingActions:  e.missing,
	}, nil
}

// GibberishReasoningPrefix is the stable prefix of the diagnostic produced
// when the quality gate rejects a response.
const GibberishReasoningPrefix = "QUALITY GATE FAILED:"

func gibberishVerdict() models.Verdict {
	return models.Verdict{
		Intent:        models.OutcomeFail,
		Policy:        models.OutcomeFail,
		Hallucination: models.FlagNA,
		Tone:          models.ToneNotOK,
		Escalation:    models.FlagNA,
		Overall:       models.OutcomeFail,
		Reasoning: GibberishReasoningPrefix +
			" Response appears to be nonsensical, gibberish, or not coherent English.\n\n" +
			"- The system detected that this response does not contain meaningful, structured text.\n" +
			"- A valid agent response must be written in clear, professional English.\n" +
			"- Please provide an actual customer service response to evaluate.",
		ComplianceScore: 0,
	}
}
