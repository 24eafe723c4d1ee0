// Package utils holds small helpers shared by the command-line tools,
// currently Hjson scenario decoding.
package utils

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
)

// DecodeHJSON parses Human-friendly JSON (comments, unquoted keys, optional
// commas) directly into a Go struct. Scenario files are written by hand, so
// the lenient syntax keeps them pleasant to edit.
func DecodeHJSON(data []byte, out interface{}) error {
	if err := hjson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode hjson: %w", err)
	}
	return nil
}

// DecodeFile reads an Hjson file into out.
func DecodeFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeHJSON(data, out)
}
