package input

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nwcorner/transport"
)

// LoadFile reads a YAML problem description:
//
//	supply: [30, 40]
//	demand: [20, 30, 20]
//	costs:
//	  - [8, 6, 9]
//	  - [5, 3, 7]
//	supply_labels: [Kyiv, Lviv]     # optional
//
// Unknown keys are rejected.
func LoadFile(path string) (*transport.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return DecodeYAML(raw)
}

// DecodeYAML is LoadFile without the filesystem.
func DecodeYAML(raw []byte) (*transport.Problem, error) {
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, &ValidationError{Field: "yaml", Reason: err.Error()}
	}

	return spec.Problem()
}
