package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/casewise/compliance-agent/internal/models"
)

type scenarioFile struct {
	Scenarios []models.Scenario `yaml:"scenarios"`
}

// LoadCustomScenarios reads user-authored scenarios from the YAML file at
// SCENARIOS_CONFIG_PATH (default configs/scenarios.yaml). A missing file is
// not an error: it simply means no custom scenarios are configured.
func LoadCustomScenarios() ([]models.Scenario, error) {
	path := os.Getenv("SCENARIOS_CONFIG_PATH")
	if path == "" {
		path = "configs/scenarios.yaml"
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i := range file.Scenarios {
		if file.Scenarios[i].ID == "" {
			return nil, fmt.Errorf("%s: scenario %d has no id", path, i)
		}
		file.Scenarios[i].Custom = true
		if file.Scenarios[i].RiskType == "" {
			file.Scenarios[i].RiskType = models.RiskCustom
		}
	}

	return file.Scenarios, nil
}
