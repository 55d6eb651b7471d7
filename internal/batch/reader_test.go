package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func collect(t *testing.T, input string) []InputRecord {
	t.Helper()

	logger := zerolog.Nop()
	reader := NewReader(strings.NewReader(input), &logger)

	var records []InputRecord
	for record := range reader.ReadAll(context.Background()) {
		records = append(records, record)
	}
	return records
}

func TestReadAll(t *testing.T) {
	input := `{"scenario_id":"CS-REFUND-POLICY","response":"Escalating to my supervisor.","agent_name":"a1"}
{"scenario_id":"CS-MEDICAL-ADVICE","response":"Please consult your doctor."}
`

	records := collect(t, input)
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	if records[0].Request.ScenarioID != "CS-REFUND-POLICY" || records[0].LineNumber != 1 {
		t.Errorf("first record = %+v", records[0])
	}
	if records[0].Request.AgentName != "a1" {
		t.Errorf("agent_name = %q", records[0].Request.AgentName)
	}
	if records[1].Request.ScenarioID != "CS-MEDICAL-ADVICE" || records[1].LineNumber != 2 {
		t.Errorf("second record = %+v", records[1])
	}
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	input := "\n{\"scenario_id\":\"CS-DATA-REQUEST\",\"response\":\"x\"}\n\n\n{\"scenario_id\":\"CS-BILLING-DISPUTE\",\"response\":\"y\"}\n"

	records := collect(t, input)
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Line numbers count blank lines so they match the source file.
	if records[0].LineNumber != 2 {
		t.Errorf("first line number = %d, want 2", records[0].LineNumber)
	}
	if records[1].LineNumber != 5 {
		t.Errorf("second line number = %d, want 5", records[1].LineNumber)
	}
}

func TestReadAllMalformedLine(t *testing.T) {
	input := "{\"scenario_id\":\"CS-REFUND-POLICY\",\"response\":\"ok\"}\nnot json at all\n"

	records := collect(t, input)
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Error != nil {
		t.Errorf("first record error = %v, want nil", records[0].Error)
	}
	if records[1].Error == nil {
		t.Error("malformed line should carry an error")
	}
	if records[1].LineNumber != 2 {
		t.Errorf("malformed line number = %d, want 2", records[1].LineNumber)
	}
}

func TestReadAllCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var lines strings.Builder
	for range 100 {
		lines.WriteString("{\"scenario_id\":\"CS-REFUND-POLICY\",\"response\":\"ok\"}\n")
	}

	logger := zerolog.Nop()
	reader := NewReader(strings.NewReader(lines.String()), &logger)

	// Cancel after the first record; the channel must still close so the
	// consumer loop terminates instead of deadlocking.
	out := reader.ReadAll(ctx)
	<-out
	cancel()
	for range out {
	}
}
