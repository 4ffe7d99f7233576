// Package loader parses raw schema and instance documents into the
// generic value representation the engine consumes: map[string]any,
// []any, string, json.Number, bool and nil.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// ParseJSON decodes a single JSON document into generic values.
// Numbers are kept as json.Number so integral and decimal literals
// stay distinguishable, which draft-sensitive numeric keywords rely
// on.
//
// Parameters:
//
//	data []byte: The raw JSON document.
//
// Returns:
//
//	any: The decoded document.
//	error: A decode error, including trailing non-whitespace content.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("loader: trailing content after document")
	}
	return doc, nil
}

// ParseYAML decodes a YAML document into generic values with the same
// number handling as ParseJSON. JSON input is detected and decoded
// directly, so its integer/decimal distinction survives. YAML input
// loses that distinction: YAML numbers round-trip through float64
// before decoding, so a decimal literal with a zero fraction, like
// 1.0, arrives as the integer 1.
func ParseYAML(data []byte) (any, error) {
	if json.Valid(data) {
		return ParseJSON(data)
	}
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return ParseJSON(j)
}
