package rules

import (
	"strings"
	"testing"

	"github.com/casewise/compliance-agent/internal/models"
)

func TestComplianceScore(t *testing.T) {
	tests := []struct {
		name          string
		overall       models.Outcome
		quality       int
		tone          models.ToneStatus
		hallucination models.Flag
		violations    int
		missing       int
		want          int
	}{
		{"pass low quality floor", models.OutcomePass, 20, models.ToneOK, models.FlagNo, 0, 0, 70},
		{"pass quality above floor", models.OutcomePass, 75, models.ToneOK, models.FlagNo, 0, 0, 85},
		{"pass quality eighty", models.OutcomePass, 80, models.ToneOK, models.FlagNo, 0, 0, 95},
		{"pass quality ninety", models.OutcomePass, 90, models.ToneOK, models.FlagNo, 0, 0, 100},
		{"fail single violation", models.OutcomeFail, 50, models.ToneOK, models.FlagNo, 1, 0, 40},
		{"fail violations and missing", models.OutcomeFail, 50, models.ToneOK, models.FlagNo, 1, 2, 10},
		{"fail floor at zero", models.OutcomeFail, 50, models.ToneOK, models.FlagNo, 3, 2, 0},
		{"fail low quality cap", models.OutcomeFail, 10, models.ToneOK, models.FlagNo, 1, 0, 15},
		{"fail tone cap", models.OutcomeFail, 50, models.ToneNotOK, models.FlagNo, 1, 0, 10},
		{"fail hallucination cap", models.OutcomeFail, 50, models.ToneOK, models.FlagYes, 1, 0, 5},
		{"hallucination cap beats tone cap", models.OutcomeFail, 10, models.ToneNotOK, models.FlagYes, 1, 0, 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := complianceScore(test.overall, test.quality, test.tone, test.hallucination, test.violations, test.missing)
			if got != test.want {
				t.Errorf("complianceScore() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestBuildReasoning(t *testing.T) {
	t.Run("pass with escalation", func(t *testing.T) {
		got := buildReasoning(models.OutcomePass, models.FlagYes, models.ToneOK, nil, nil)
		if !strings.HasPrefix(got, "PASS: Response complies with all policies.") {
			t.Errorf("reasoning = %q", got)
		}
		if !strings.Contains(got, "Escalation: Appropriately escalated") {
			t.Errorf("reasoning %q missing escalation line", got)
		}
	})

	t.Run("fail joins clauses", func(t *testing.T) {
		got := buildReasoning(models.OutcomeFail, models.FlagNo, models.ToneNotOK,
			[]string{"a", "b"}, []string{"c"})
		want := "VIOLATIONS: a, b\n\nMISSING: c\n\nTONE: Inappropriate language detected"
		if got != want {
			t.Errorf("reasoning = %q, want %q", got, want)
		}
	})
}
