// Package mcpadapter exposes the evaluation pipeline as MCP tools so agent
// frameworks can score their own responses over stdio.
package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/casewise/compliance-agent/internal/executor"
	"github.com/casewise/compliance-agent/internal/models"
	"github.com/casewise/compliance-agent/internal/scenario"
)

// EvaluateInput is the MCP tool input schema (matches HTTP API field names).
type EvaluateInput struct {
	ScenarioID string `json:"scenario_id" jsonschema:"scenario identifier to judge against"`
	Response   string `json:"response" jsonschema:"agent response text to evaluate"`
	AgentName  string `json:"agent_name,omitempty" jsonschema:"name of the agent that produced the response"`
	TeamOrg    string `json:"team_org,omitempty" jsonschema:"team or organization the agent belongs to"`
	PersonaID  int    `json:"persona_id,omitempty" jsonschema:"optional persona identifier"`
}

// ListScenariosInput is the (empty) input schema for the scenario listing tool.
type ListScenariosInput struct{}

// NewEvaluateHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewEvaluateHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, EvaluateInput) (*mcp.CallToolResult, models.EvaluationRecord, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, models.EvaluationRecord, error) {
		return EvaluateResponse(ctx, exec, req, input)
	}
}

// EvaluateResponse runs the evaluation pipeline and returns the flat record.
func EvaluateResponse(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, models.EvaluationRecord, error) {
	record, err := exec.Execute(ctx, models.EvaluationRequest{
		ScenarioID: input.ScenarioID,
		Response:   input.Response,
		AgentName:  input.AgentName,
		TeamOrg:    input.TeamOrg,
		PersonaID:  input.PersonaID,
	})

	return nil, record, err
}

// NewListScenariosHandler returns a tool handler listing the configured
// scenarios so callers can discover valid scenario identifiers.
func NewListScenariosHandler(repo *scenario.Repository) func(context.Context, *mcp.CallToolRequest, ListScenariosInput) (*mcp.CallToolResult, []models.Scenario, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListScenariosInput) (*mcp.CallToolResult, []models.Scenario, error) {
		return nil, repo.Scenarios(), nil
	}
}
