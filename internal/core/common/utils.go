package common

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Decode unmarshals a JSON or YAML document into a type T. JSON is detected
// by its first '{' and read up to the last '}', so documents pasted inside
// markdown fences or with trailing text still decode.
func Decode[T any](data []byte) (T, Format, error) {
	var zero T

	if body, ok := jsonObject(data); ok {
		var result T
		if err := json.Unmarshal(body, &result); err != nil {
			return zero, FormatJSON, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
		return result, FormatJSON, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return zero, "", fmt.Errorf("empty document")
	}

	var result T
	if err := yaml.Unmarshal(data, &result); err != nil {
		return zero, FormatYAML, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return result, FormatYAML, nil
}

// DecodeAs unmarshals data in the given format without detection.
func DecodeAs[T any](data []byte, format Format) (T, error) {
	var result T
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &result); err != nil {
			return result, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &result); err != nil {
			return result, fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
	default:
		return result, fmt.Errorf("unsupported format '%s'", format)
	}
	return result, nil
}

// jsonObject returns the span from the first '{' to the last '}' when the
// document's first non-blank content is a '{' or a markdown fence.
func jsonObject(data []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("{")) && !bytes.HasPrefix(trimmed, []byte("```")) {
		return nil, false
	}

	start := bytes.IndexByte(trimmed, '{')
	end := bytes.LastIndexByte(trimmed, '}')
	if start == -1 || end < start {
		return nil, false
	}
	return trimmed[start : end+1], true
}
