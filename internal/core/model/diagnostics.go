package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Check names used as diagnostic keys.
const (
	CheckOneOf           = "owl:oneOf"
	CheckOneOfIndividual = "owl:oneOf_individual"
	CheckRhombuses       = "Rhombuses"
)

// Diagnostic is a non-fatal modeling problem reported to the diagram author.
type Diagnostic struct {
	Message string `json:"message"`
	ShapeID string `json:"shape_id"`
	Value   string `json:"value,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Value != "" {
		return fmt.Sprintf("%s (shape %s, value %s)", d.Message, d.ShapeID, d.Value)
	}
	return fmt.Sprintf("%s (shape %s)", d.Message, d.ShapeID)
}

// Diagnostics collects diagnostics by check name, keeping every entry.
// The zero value is ready to use.
type Diagnostics struct {
	checks  []string
	entries map[string][]Diagnostic
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Add(check string, diagnostic Diagnostic) {
	if d.entries == nil {
		d.entries = make(map[string][]Diagnostic)
	}
	if _, ok := d.entries[check]; !ok {
		d.checks = append(d.checks, check)
	}
	d.entries[check] = append(d.entries[check], diagnostic)
}

func (d *Diagnostics) Get(check string) []Diagnostic {
	return d.entries[check]
}

// Checks returns the check names in the order they were first reported.
func (d *Diagnostics) Checks() []string {
	out := make([]string, len(d.checks))
	copy(out, d.checks)
	return out
}

func (d *Diagnostics) Len() int {
	n := 0
	for _, entries := range d.entries {
		n += len(entries)
	}
	return n
}

func (d *Diagnostics) Empty() bool {
	return d.Len() == 0
}

// Err joins every diagnostic into one error, or returns nil.
func (d *Diagnostics) Err() error {
	var errs []error
	for _, check := range d.checks {
		for _, entry := range d.entries[check] {
			errs = append(errs, fmt.Errorf("%s: %s", check, entry))
		}
	}
	return errors.Join(errs...)
}

func (d *Diagnostics) MarshalJSON() ([]byte, error) {
	if d.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.entries)
}
