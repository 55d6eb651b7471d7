package models

import (
	"time"
)

// Outcome is the PASS/FAIL vocabulary used by the intent, policy and overall
// dimensions. Values are persisted as-is and must not change.
type Outcome string

const (
	OutcomePass Outcome = "PASS"
	OutcomeFail Outcome = "FAIL"
)

// Flag is the YES/NO/NA vocabulary used by the hallucination and escalation
// dimensions.
type Flag string

const (
	FlagYes Flag = "YES"
	FlagNo  Flag = "NO"
	FlagNA  Flag = "NA"
)

// ToneStatus is the OK/NOT_OK vocabulary of the tone dimension.
type ToneStatus string

const (
	ToneOK    ToneStatus = "OK"
	ToneNotOK ToneStatus = "NOT_OK"
)

// RiskType categorizes what kind of policy risk a scenario exercises.
type RiskType string

const (
	RiskPolicy     RiskType = "policy"
	RiskAuthority  RiskType = "authority"
	RiskEscalation RiskType = "escalation"
	RiskSecurity   RiskType = "security"
	RiskCustom     RiskType = "custom"
)

// Scenario is a configured test case: a simulated customer message paired
// with the policy the agent response is judged against. Immutable for the
// duration of an evaluation.
type Scenario struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	UserMessage      string   `json:"user_message" yaml:"user_message"`
	PolicySummary    string   `json:"policy_summary" yaml:"policy_summary"`
	RequiredActions  []string `json:"required_actions" yaml:"required_actions"`
	ForbiddenActions []string `json:"forbidden_actions" yaml:"forbidden_actions"`
	RiskType         RiskType `json:"risk_type" yaml:"risk_type"`

	// Flat keyword lists used by the generic rule set when the action
	// descriptions are not scenario-specific prose.
	RequiredKeywords  []string `json:"required_keywords,omitempty" yaml:"required_keywords"`
	ForbiddenKeywords []string `json:"forbidden_keywords,omitempty" yaml:"forbidden_keywords"`

	Custom bool `json:"custom,omitempty" yaml:"custom"`
}

// Persona carries communication-style metadata for the simulated customer.
// It is passed through to the evaluation record only; it does not alter
// scoring.
type Persona struct {
	ID                 int    `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	Description        string `json:"description" yaml:"description"`
	CommunicationStyle string `json:"communication_style" yaml:"communication_style"`
	Tone               string `json:"tone,omitempty" yaml:"tone"`
	Emoji              string `json:"emoji,omitempty" yaml:"emoji"`
}

// Verdict is the rule engine's sole output: five per-dimension results, the
// derived overall outcome, a human-readable reasoning string and the 0-100
// compliance score. Immutable once produced.
type Verdict struct {
	Intent          Outcome    `json:"intent"`
	Policy          Outcome    `json:"policy"`
	Hallucination   Flag       `json:"hallucination"`
	Tone            ToneStatus `json:"tone"`
	Escalation      Flag       `json:"escalation"`
	Overall         Outcome    `json:"overall"`
	Reasoning       string     `json:"reasoning"`
	ComplianceScore int        `json:"compliance_score"`

	Violations     []string `json:"violations,omitempty"`
	MissingActions []string `json:"missing_actions,omitempty"`
}

// MetricsBundle is the secondary set of linguistic-quality scores computed
// independently of the PASS/FAIL verdict. Every score lies in [0,100].
type MetricsBundle struct {
	CoherenceScore       int `json:"coherence_score"`
	EmpathyScore         int `json:"empathy_score"`
	ClarityScore         int `json:"clarity_score"`
	ProfessionalismScore int `json:"professionalism_score"`
	SentimentScore       int `json:"sentiment_score"`
	ReadabilityScore     int `json:"readability_score"`
	KeywordCoverage      int `json:"keyword_coverage"`
	ResponseLength       int `json:"response_length"`
}

// EvaluationRequest is the caller-facing input: which scenario to judge
// against, the raw agent response, and optional metadata.
type EvaluationRequest struct {
	ScenarioID string `json:"scenario_id"`
	Response   string `json:"response"`
	AgentName  string `json:"agent_name,omitempty"`
	TeamOrg    string `json:"team_org,omitempty"`
	PersonaID  int    `json:"persona_id,omitempty"`
}

// EvaluationRecord is the flat merged result persisted and returned to
// callers: all Verdict fields, all MetricsBundle fields, plus caller-supplied
// metadata. Field names match the stored history shape exactly.
type EvaluationRecord struct {
	ScenarioID   string    `json:"scenario_id"`
	ScenarioName string    `json:"scenario_name"`
	AgentName    string    `json:"agent_name"`
	TeamOrg      string    `json:"team_org"`
	PersonaID    int       `json:"persona_id,omitempty"`
	RawResponse  string    `json:"raw_response"`
	UserMessage  string    `json:"user_message"`
	Timestamp    time.Time `json:"timestamp"`

	Intent          Outcome    `json:"intent"`
	Policy          Outcome    `json:"policy"`
	Hallucination   Flag       `json:"hallucination"`
	Tone            ToneStatus `json:"tone"`
	Escalation      Flag       `json:"escalation"`
	Overall         Outcome    `json:"overall"`
	Reasoning       string     `json:"reasoning"`
	ComplianceScore int        `json:"compliance_score"`

	CoherenceScore       int `json:"coherence_score"`
	EmpathyScore         int `json:"empathy_score"`
	ClarityScore         int `json:"clarity_score"`
	ProfessionalismScore int `json:"professionalism_score"`
	SentimentScore       int `json:"sentiment_score"`
	ReadabilityScore     int `json:"readability_score"`
	KeywordCoverage      int `json:"keyword_coverage"`
	ResponseLength       int `json:"response_length"`
}

// Merge builds the flat record from a verdict, a metrics bundle and the
// request metadata.
func Merge(req EvaluationRequest, sc Scenario, v Verdict, m MetricsBundle, at time.Time) EvaluationRecord {
	return EvaluationRecord{
		ScenarioID:   sc.ID,
		ScenarioName: sc.Name,
		AgentName:    req.AgentName,
		TeamOrg:      req.TeamOrg,
		PersonaID:    req.PersonaID,
		RawResponse:  req.Response,
		UserMessage:  sc.UserMessage,
		Timestamp:    at,

		Intent:          v.Intent,
		Policy:          v.Policy,
		Hallucination:   v.Hallucination,
		Tone:            v.Tone,
		Escalation:      v.Escalation,
		Overall:         v.Overall,
		Reasoning:       v.Reasoning,
		ComplianceScore: v.ComplianceScore,

		CoherenceScore:       m.CoherenceScore,
		EmpathyScore:         m.EmpathyScore,
		ClarityScore:         m.ClarityScore,
		ProfessionalismScore: m.ProfessionalismScore,
		SentimentScore:       m.SentimentScore,
		ReadabilityScore:     m.ReadabilityScore,
		KeywordCoverage:      m.KeywordCoverage,
		ResponseLength:       m.ResponseLength,
	}
}
