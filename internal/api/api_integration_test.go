package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/casewise/compliance-agent/internal/api"
	"github.com/casewise/compliance-agent/internal/executor"
	"github.com/casewise/compliance-agent/internal/metrics"
	"github.com/casewise/compliance-agent/internal/models"
	"github.com/casewise/compliance-agent/internal/rules"
	"github.com/casewise/compliance-agent/internal/scenario"
)

// setupTestAPI wires the real pipeline with no store: built-in scenarios,
// rule engine and metrics engine behind the actual routes.
func setupTestAPI(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()

	repo, err := scenario.NewRepository()
	if err != nil {
		t.Fatalf("building repository: %v", err)
	}

	exec := executor.NewExecutor(repo, rules.NewEngine(), metrics.NewEngine(), nil, &logger)
	handler := api.NewHandler(exec, repo, nil, &logger)

	container := restful.NewContainer()
	api.RegisterRoutes(container, handler)
	return container
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("status = %q, want ok", response.Status)
	}
}

func TestAPI_Evaluate(t *testing.T) {
	container := setupTestAPI(t)

	body, _ := json.Marshal(models.EvaluationRequest{
		ScenarioID: "CS-REFUND-POLICY",
		Response:   "I understand this is frustrating, but our 30-day return policy means I cannot approve this myself. I'm escalating this to my supervisor who will respond within 2 business days.",
		AgentName:  "agent-7",
		TeamOrg:    "support-emea",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}

	var record models.EvaluationRecord
	if err := json.Unmarshal(recorder.Body.Bytes(), &record); err != nil {
		t.Fatalf("parsing response: %v", err)
	}

	if record.Overall != models.OutcomePass {
		t.Errorf("overall = %s, want PASS", record.Overall)
	}
	if record.Escalation != models.FlagYes {
		t.Errorf("escalation = %s, want YES", record.Escalation)
	}
	if record.AgentName != "agent-7" {
		t.Errorf("agent_name = %q", record.AgentName)
	}
	if record.ScenarioName == "" || record.UserMessage == "" {
		t.Error("scenario context not merged into record")
	}
	if record.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestAPI_Evaluate_UnknownScenario(t *testing.T) {
	container := setupTestAPI(t)

	body, _ := json.Marshal(models.EvaluationRequest{ScenarioID: "CS-NOPE", Response: "hello there friend"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", recorder.Code)
	}
}

func TestAPI_Evaluate_MissingScenarioID(t *testing.T) {
	container := setupTestAPI(t)

	body, _ := json.Marshal(models.EvaluationRequest{Response: "hello there friend"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestAPI_Scenarios(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var scenarios []models.Scenario
	if err := json.Unmarshal(recorder.Body.Bytes(), &scenarios); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(scenarios) != 5 {
		t.Errorf("len(scenarios) = %d, want 5", len(scenarios))
	}
}

func TestAPI_Personas(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/personas", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var personas []models.Persona
	if err := json.Unmarshal(recorder.Body.Bytes(), &personas); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(personas) != 5 {
		t.Errorf("len(personas) = %d, want 5", len(personas))
	}
}

func TestAPI_Evaluations_NoStore(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations?limit=10", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var records []models.EvaluationRecord
	if err := json.Unmarshal(recorder.Body.Bytes(), &records); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0 with no store", len(records))
	}
}
