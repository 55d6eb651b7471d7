package rules

import (
	"fmt"
	"strings"

	"github.com/casewise/compliance-agent/internal/lexicon"
)

// evaluateGeneric is the default rule set for custom scenarios. It works
// entirely off the keyword lists configured on the scenario record, with a
// single prose fallback: when the required actions call for empathy or an
// apology, the response must carry an empathy marker.
func evaluateGeneric(e *evaluation) {
	for _, keyword := range e.scenario.ForbiddenKeywords {
		if strings.Contains(e.lower, strings.ToLower(keyword)) {
			e.violate(fmt.Sprintf("used forbidden keyword: %q", keyword))
		}
	}

	for _, keyword := range e.scenario.RequiredKeywords {
		if !strings.Contains(e.lower, strings.ToLower(keyword)) {
			e.miss(fmt.Sprintf("must mention: %q", keyword))
		}
	}

	actions := strings.ToLower(strings.Join(e.scenario.RequiredActions, " "))
	if strings.Contains(actions, "empath") || strings.Contains(actions, "apolog") {
		if !lexicon.EmpathyFallback.MatchString(e.text) {
			e.miss("empathetic acknowledgment")
		}
	}
}
