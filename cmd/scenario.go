package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pagesim/pagesim/sim"
)

// runInputs is a fully resolved simulation input.
type runInputs struct {
	Policy  sim.Policy
	Frames  int
	Refs    []int
	Dropped []string // reference tokens that were not page numbers
}

// resolveInputs merges the optional scenario file with CLI flags.
// A flag overrides the scenario only when set explicitly (changed reports
// whether it was); unset scenario values fall back to flag defaults.
func resolveInputs(changed func(name string) bool) (runInputs, error) {
	sc := &sim.Scenario{}
	if scenarioPath != "" {
		loaded, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			return runInputs{}, err
		}
		logrus.Debugf("Loaded scenario %s", scenarioPath)
		sc = loaded
	}

	if changed("policy") || sc.Policy == "" {
		sc.Policy = policyName
	}
	if changed("frames") || sc.Frames == nil {
		frames := frameCount
		sc.Frames = &frames
	}
	if changed("delimiter") || sc.Delimiter == "" {
		sc.Delimiter = delimiter
	}
	if changed("refs") || (sc.References == "" && sc.Pages == nil) {
		sc.References = refString
		sc.Pages = nil
	}

	if err := sc.Validate(); err != nil {
		return runInputs{}, err
	}
	if !sim.ValidFormats[outputFormat] {
		return runInputs{}, fmt.Errorf("unknown output format %q; valid formats: [text, json, yaml]", outputFormat)
	}

	refs, dropped := sc.ReferenceStream()
	return runInputs{
		Policy:  sc.ResolvedPolicy(),
		Frames:  *sc.Frames,
		Refs:    refs,
		Dropped: dropped,
	}, nil
}

// warnDropped reports reference tokens that were skipped because they are not page numbers.
func warnDropped(dropped []string) {
	if len(dropped) == 0 {
		return
	}
	quoted := make([]string, len(dropped))
	for i, tok := range dropped {
		quoted[i] = fmt.Sprintf("%q", tok)
	}
	logrus.Warnf("Ignored %d non-numeric reference token(s): %s", len(dropped), strings.Join(quoted, ", "))
}
