package batch

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/casewise/compliance-agent/internal/executor"
	"github.com/casewise/compliance-agent/internal/metrics"
	"github.com/casewise/compliance-agent/internal/models"
	"github.com/casewise/compliance-agent/internal/rules"
	"github.com/casewise/compliance-agent/internal/scenario"
)

func newTestExecutor(t *testing.T) *executor.Executor {
	t.Helper()

	logger := zerolog.Nop()
	repo, err := scenario.NewRepository()
	if err != nil {
		t.Fatalf("building repository: %v", err)
	}
	return executor.NewExecutor(repo, rules.NewEngine(), metrics.NewEngine(), nil, &logger)
}

func TestProcess(t *testing.T) {
	logger := zerolog.Nop()
	processor := NewProcessor(newTestExecutor(t), 4, &logger)

	records := []InputRecord{
		{
			Request: models.EvaluationRequest{
				ScenarioID: "CS-REFUND-POLICY",
				Response:   "I understand this is frustrating, but our 30-day return policy means I cannot approve this myself. I'm escalating this to my supervisor who will respond within 2 business days.",
			},
			LineNumber: 1,
		},
		{
			Request: models.EvaluationRequest{
				ScenarioID: "CS-REFUND-POLICY",
				Response:   "Sure, I'll process that refund right now.",
			},
			LineNumber: 2,
		},
		{LineNumber: 3, Error: errors.New("line 3: invalid character 'n'")},
		{
			Request:    models.EvaluationRequest{ScenarioID: "CS-NOPE", Response: "whatever you say friend"},
			LineNumber: 4,
		},
	}

	results := processor.Process(context.Background(), records)
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].LineNumber < results[j].LineNumber })

	if results[0].Error != nil || results[0].Record.Overall != models.OutcomePass {
		t.Errorf("line 1: %+v", results[0])
	}
	if results[1].Error != nil || results[1].Record.Overall != models.OutcomeFail {
		t.Errorf("line 2: %+v", results[1])
	}
	if results[2].Error == nil {
		t.Error("line 3: malformed input should keep its error")
	}
	if !errors.Is(results[3].Error, scenario.ErrScenarioNotFound) {
		t.Errorf("line 4: err = %v, want ErrScenarioNotFound", results[3].Error)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Record: models.EvaluationRecord{Overall: models.OutcomePass, ComplianceScore: 80}},
		{Record: models.EvaluationRecord{Overall: models.OutcomeFail, ComplianceScore: 20}},
		{Error: errors.New("bad line")},
	}

	summary := Summarize(results)
	if summary.Total != 3 || summary.Passed != 1 || summary.Failed != 1 || summary.Errors != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.AvgCompliance != 50 {
		t.Errorf("avg compliance = %.2f, want 50", summary.AvgCompliance)
	}
}

func TestWriteRecords(t *testing.T) {
	results := []Result{
		{Record: models.EvaluationRecord{ScenarioID: "CS-REFUND-POLICY", Overall: models.OutcomePass}, LineNumber: 1},
		{Error: errors.New("bad line"), LineNumber: 2},
		{Record: models.EvaluationRecord{ScenarioID: "CS-DATA-REQUEST", Overall: models.OutcomeFail}, LineNumber: 3},
	}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, results); err != nil {
		t.Fatalf("WriteRecords() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d lines, want 2 (errored result skipped)", len(lines))
	}
	if !strings.Contains(lines[0], "CS-REFUND-POLICY") || !strings.Contains(lines[1], "CS-DATA-REQUEST") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
