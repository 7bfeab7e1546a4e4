package dim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML returns Default with any dimensions present in the YAML document
// overridden. The merged table is validated before it is returned.
func FromYAML(b []byte) (Set, error) {
	d := Default()
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Set{}, fmt.Errorf("dim: parsing overrides: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Set{}, err
	}
	return d, nil
}

// Load reads dimension overrides from a YAML file. See FromYAML.
func Load(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("dim: reading overrides: %w", err)
	}
	return FromYAML(b)
}
