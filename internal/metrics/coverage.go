package metrics

import (
	"math"
	"strings"

	"github.com/casewise/compliance-agent/internal/models"
)

// keywordCoverage measures what share of the scenario's required actions the
// response addresses. An action counts as covered when at least 40% of its
// significant words (longer than three characters) appear in the response.
// No requirements means coverage cannot be measured and scores 0, not 100.
func keywordCoverage(lower string, scenario models.Scenario) int {
	if len(scenario.RequiredActions) == 0 {
		return 0
	}

	covered := 0
	for _, action := range scenario.RequiredActions {
		var keywords []string
		for _, w := range strings.Fields(strings.ToLower(action)) {
			if len(w) > 3 {
				keywords = append(keywords, w)
			}
		}
		if len(keywords) == 0 {
			continue
		}

		matched := 0
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				matched++
			}
		}
		if matched >= int(math.Ceil(float64(len(keywords))*0.4)) {
			covered++
		}
	}

	return int(math.Round(float64(covered) / float64(len(scenario.RequiredActions)) * 100))
}
