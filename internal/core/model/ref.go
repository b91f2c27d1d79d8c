package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ref is an optional reference to another diagram element or named entity.
// The empty Ref means "not set" and is encoded as false.
type Ref string

const NoRef Ref = ""

func (r Ref) IsSet() bool {
	return r != NoRef
}

func (r Ref) String() string {
	return string(r)
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.IsSet() {
		return []byte("false"), nil
	}
	return json.Marshal(string(r))
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "false", "null":
		*r = NoRef
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("reference must be a string or false: %w", err)
	}
	*r = Ref(s)
	return nil
}

func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!bool" || node.Tag == "!!null" {
		*r = NoRef
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("reference must be a string or false: %w", err)
	}
	*r = Ref(s)
	return nil
}
