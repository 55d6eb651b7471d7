package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/casewise/compliance-agent/internal/models"
)

// Summary aggregates one batch run.
type Summary struct {
	Total         int     `json:"total"`
	Passed        int     `json:"passed"`
	Failed        int     `json:"failed"`
	Errors        int     `json:"errors"`
	AvgCompliance float64 `json:"avg_compliance_score"`
}

// WriteRecords emits one JSON line per successfully evaluated record.
func WriteRecords(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for _, result := range results {
		if result.Error != nil {
			continue
		}
		if err := enc.Encode(result.Record); err != nil {
			return fmt.Errorf("write record from line %d: %w", result.LineNumber, err)
		}
	}
	return nil
}

// Summarize computes the pass/fail totals and mean compliance score of a run.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}

	scored := 0
	total := 0
	for _, result := range results {
		if result.Error != nil {
			s.Errors++
			continue
		}
		if result.Record.Overall == models.OutcomePass {
			s.Passed++
		} else {
			s.Failed++
		}
		total += result.Record.ComplianceScore
		scored++
	}

	if scored > 0 {
		s.AvgCompliance = float64(total) / float64(scored)
	}
	return s
}
