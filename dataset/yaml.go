package dataset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML table from r and builds it. Unknown keys are
// rejected.
func LoadYAML(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset: empty YAML table")
		}
		return nil, fmt.Errorf("dataset: decode YAML: %w", err)
	}

	return Build(t)
}
