package rules

import (
	"strings"

	"github.com/casewise/compliance-agent/internal/models"
)

// complianceScore derives the single 0-100 summary score. Passing responses
// climb a staircase rewarding structural quality on top of a 70 floor.
// Failing responses earn from a shrinking ceiling, then severity caps apply:
// poor structure, then tone, then hallucination. Hallucination is the most
// severe signal and dominates every other cap.
func complianceScore(overall models.Outcome, quality int, tone models.ToneStatus, hallucination models.Flag, violations, missing int) int {
	if overall == models.OutcomePass {
		score := max(70, quality)
		if quality >= 60 {
			score = 85
		}
		if quality >= 80 {
			score = 95
		}
		if quality >= 90 {
			score = 100
		}
		return score
	}

	score := max(0, 60-violations*20-missing*15)

	if quality < 30 {
		score = min(score, 15)
	}
	if tone == models.ToneNotOK {
		score = min(score, 10)
	}
	if hallucination == models.FlagYes {
		score = min(score, 5)
	}

	return max(0, score)
}

// buildReasoning renders the human-readable verdict summary: a fixed success
// template on PASS, otherwise the violation, missing-action and tone clauses
// separated by blank lines.
func buildReasoning(overall models.Outcome, escalation models.Flag, tone models.ToneStatus, violations, missing []string) string {
	if overall == models.OutcomePass {
		escalationStatus := "Not required/Not needed"
		if escalation == models.FlagYes {
			escalationStatus = "Appropriately escalated"
		}
		return "PASS: Response complies with all policies.\n\n" +
			"- Required actions: All present\n" +
			"- Forbidden actions: None detected\n" +
			"- Escalation: " + escalationStatus + "\n" +
			"- Tone: Professional"
	}

	var clauses []string
	if len(violations) > 0 {
		clauses = append(clauses, "VIOLATIONS: "+strings.Join(violations, ", "))
	}
	if len(missing) > 0 {
		clauses = append(clauses, "MISSING: "+strings.Join(missing, ", "))
	}
	if tone == models.ToneNotOK {
		clauses = append(clauses, "TONE: Inappropriate language detected")
	}

	return strings.Join(clauses, "\n\n")
}
