package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Space kinds.
const (
	KindDiscrete   = "discrete"
	KindIndiscrete = "indiscrete"
	KindBasis      = "basis"
	KindMetric     = "metric"
)

// Document is the root of a configuration file.
type Document struct {
	// Fuel bounds lazy bases; 0 keeps the library default.
	Fuel        int              `yaml:"fuel,omitempty"`
	Spaces      []SpaceSpec      `yaml:"spaces"`
	Completions []CompletionSpec `yaml:"completions,omitempty"`
}

// SpaceSpec describes one finite uniform space.
type SpaceSpec struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Points []string `yaml:"points"`

	// basis
	Entourages [][][]string `yaml:"entourages,omitempty"`
	Reflexive  bool         `yaml:"reflexive,omitempty"`
	Symmetric  bool         `yaml:"symmetric,omitempty"`

	// metric
	Distances [][]float64 `yaml:"distances,omitempty"` // row i, column j: d(points[i], points[j])
	Radius    float64     `yaml:"radius,omitempty"`    // first radius of the halving sequence; 1 when zero
}

// CompletionSpec describes a completion of Source by Target.
type CompletionSpec struct {
	Name   string            `yaml:"name"`
	Source string            `yaml:"source"`
	Target string            `yaml:"target"`
	Embed  map[string]string `yaml:"embed"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	if doc.Fuel < 0 {
		return nil, fmt.Errorf("%w: fuel %d is negative", ErrMalformed, doc.Fuel)
	}

	return &doc, nil
}

// Marshal encodes the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}

	return buf.Bytes(), nil
}
