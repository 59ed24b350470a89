package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario holds a run configuration, loadable from a YAML file.
// Exactly one of References (delimited string) or Pages (list) must be set.
type Scenario struct {
	Policy     string `yaml:"policy"`
	Frames     *int   `yaml:"frames"`
	References string `yaml:"references,omitempty"`
	Pages      []int  `yaml:"pages,omitempty"`
	Delimiter  string `yaml:"delimiter,omitempty"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict field checking so typos are reported instead of ignored.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the policy name, frame count and reference source.
// An empty policy is allowed and means FIFO.
func (sc *Scenario) Validate() error {
	if sc.Policy != "" {
		if _, err := ParsePolicy(sc.Policy); err != nil {
			return err
		}
	}
	if sc.Frames != nil && *sc.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", *sc.Frames)
	}
	if sc.References != "" && sc.Pages != nil {
		return fmt.Errorf("set either references or pages, not both")
	}
	return nil
}

// ResolvedPolicy returns the scenario's policy, defaulting to FIFO.
// Call Validate first.
func (sc *Scenario) ResolvedPolicy() Policy {
	if sc.Policy == "" {
		return FIFO
	}
	p, err := ParsePolicy(sc.Policy)
	if err != nil {
		panic(fmt.Sprintf("unvalidated scenario: %v", err))
	}
	return p
}

// ReferenceStream returns the scenario's pages and any tokens dropped while parsing.
// The returned slice is never shared with the scenario.
func (sc *Scenario) ReferenceStream() ([]int, []string) {
	if sc.Pages != nil {
		refs := make([]int, len(sc.Pages))
		copy(refs, sc.Pages)
		return refs, nil
	}
	return ParseReferenceString(sc.References, sc.Delimiter)
}
