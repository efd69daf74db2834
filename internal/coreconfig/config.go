package coreconfig

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Config is the parsed sparkentic.yaml.
type Config struct {
	Name        string            `yaml:"name"`
	Version     string            `yaml:"version"`
	Description string            `yaml:"description,omitempty"`
	Workflow    []string          `yaml:"workflow"`
	Agents      []Agent           `yaml:"agents"`
	Paths       map[string]string `yaml:"paths,omitempty"`
}

// Agent describes one workflow stage's agent.
type Agent struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Command string `yaml:"command,omitempty"` // slash command, without the leading "/"
	Prompt  string `yaml:"prompt"`            // relative to .sparkentic-core/
}

// Parse decodes sparkentic.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing core config: %w", err)
	}
	return &cfg, nil
}

// Agent returns the agent with the given name.
func (c *Config) Agent(name string) (*Agent, bool) {
	for i := range c.Agents {
		if c.Agents[i].Name == name {
			return &c.Agents[i], true
		}
	}
	return nil, false
}

// UnassignedStages returns workflow stages that no agent handles.
func (c *Config) UnassignedStages() []string {
	var missing []string
	for _, stage := range c.Workflow {
		if _, ok := c.Agent(stage); !ok {
			missing = append(missing, stage)
		}
	}
	return missing
}
