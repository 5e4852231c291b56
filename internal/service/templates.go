package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TemplateLibrary holds named plan templates loaded from a YAML file. It is
// the manual fallback when AI plan generation is unavailable.
type TemplateLibrary struct {
	templates map[string][]PlannedPhase
}

type templateFile struct {
	Templates map[string][]PlannedPhase `yaml:"templates"`
}

// LoadTemplateLibrary reads plan templates from path
func LoadTemplateLibrary(path string) (*TemplateLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan templates: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse plan templates: %w", err)
	}

	for name, phases := range file.Templates {
		if len(phases) == 0 {
			return nil, fmt.Errorf("plan template %q has no phases", name)
		}
		for _, p := range phases {
			if p.PhaseName == "" || p.DurationDays < 1 {
				return nil, fmt.Errorf("plan template %q has an invalid phase", name)
			}
		}
	}

	return &TemplateLibrary{templates: file.Templates}, nil
}

// NewTemplateLibrary builds a library from an in-memory template map,
// used by tests
func NewTemplateLibrary(templates map[string][]PlannedPhase) *TemplateLibrary {
	return &TemplateLibrary{templates: templates}
}

// Get returns the named template's phases in order
func (l *TemplateLibrary) Get(name string) ([]PlannedPhase, bool) {
	phases, ok := l.templates[name]
	return phases, ok
}

// Names lists the available template names
func (l *TemplateLibrary) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	return names
}
