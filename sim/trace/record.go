// Package trace provides step-trace recording for page-replacement runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import (
	"encoding/json"
	"strconv"
)

// Status classifies the outcome of a single page reference.
type Status string

const (
	// StatusHit means the referenced page was already resident.
	StatusHit Status = "HIT"
	// StatusFault means the referenced page had to be loaded.
	StatusFault Status = "FAULT"
)

// Slot is one physical frame. The zero value is an empty frame.
type Slot struct {
	Page     int
	Occupied bool
}

// MarshalJSON renders an empty slot as null and an occupied slot as its page number.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.Occupied {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.Page)), nil
}

// UnmarshalJSON accepts null or a page number.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var page *int
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	if page == nil {
		*s = Slot{}
		return nil
	}
	*s = Slot{Page: *page, Occupied: true}
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (s Slot) MarshalYAML() (interface{}, error) {
	if !s.Occupied {
		return nil, nil
	}
	return s.Page, nil
}

// String returns the page number, or "-" for an empty slot.
func (s Slot) String() string {
	if !s.Occupied {
		return "-"
	}
	return strconv.Itoa(s.Page)
}

// StepRecord captures the outcome of one reference.
type StepRecord struct {
	Step      int    `json:"step" yaml:"step"`           // 1-based position in the reference stream
	Reference int    `json:"reference" yaml:"reference"` // page referenced at this step
	Frames    []Slot `json:"frames" yaml:"frames"`       // frame contents after the step
	Status    Status `json:"status" yaml:"status"`
	Evicted   *int   `json:"evicted" yaml:"evicted"` // nil when nothing was evicted
}

// Occupancy returns the number of occupied frames in the snapshot.
func (r StepRecord) Occupancy() int {
	n := 0
	for _, s := range r.Frames {
		if s.Occupied {
			n++
		}
	}
	return n
}
