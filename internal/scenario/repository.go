// Package scenario supplies the read-only scenario and persona records the
// evaluation pipeline consumes. Built-ins are compiled in; user-authored
// custom scenarios can be merged from a YAML file. The repository is
// constructed once by the caller and passed in — the core never loads
// anything itself.
package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/casewise/compliance-agent/internal/models"
)

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrPersonaNotFound  = errors.New("persona not found")
)

// Repository is an immutable snapshot of scenarios and personas keyed by
// identifier. Safe for concurrent reads.
type Repository struct {
	scenarios map[string]models.Scenario
	personas  map[int]models.Persona
	order     []string
}

// NewRepository builds a repository from the built-in records plus any extra
// scenarios. Extras with a duplicate ID replace the built-in.
func NewRepository(extra ...models.Scenario) (*Repository, error) {
	r := &Repository{
		scenarios: make(map[string]models.Scenario),
		personas:  make(map[int]models.Persona),
	}

	for _, sc := range builtinScenarios() {
		r.add(sc)
	}
	for _, sc := range extra {
		if sc.ID == "" {
			return nil, fmt.Errorf("custom scenario %q has no id", sc.Name)
		}
		r.add(sc)
	}
	for _, p := range builtinPersonas() {
		r.personas[p.ID] = p
	}

	return r, nil
}

func (r *Repository) add(sc models.Scenario) {
	if _, exists := r.scenarios[sc.ID]; !exists {
		r.order = append(r.order, sc.ID)
	}
	r.scenarios[sc.ID] = sc
}

// Scenario looks up a scenario by identifier.
func (r *Repository) Scenario(id string) (models.Scenario, error) {
	sc, ok := r.scenarios[id]
	if !ok {
		return models.Scenario{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
	}
	return sc, nil
}

// Persona looks up a persona by identifier.
func (r *Repository) Persona(id int) (models.Persona, error) {
	p, ok := r.personas[id]
	if !ok {
		return models.Persona{}, fmt.Errorf("%w: %d", ErrPersonaNotFound, id)
	}
	return p, nil
}

// Scenarios returns all scenarios in registration order.
func (r *Repository) Scenarios() []models.Scenario {
	out := make([]models.Scenario, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.scenarios[id])
	}
	return out
}

// Personas returns all personas ordered by ID.
func (r *Repository) Personas() []models.Persona {
	out := make([]models.Persona, 0, len(r.personas))
	for _, p := range r.personas {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
