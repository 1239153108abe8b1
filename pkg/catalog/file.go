package catalog

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// constructFile is the YAML document holding user-defined constructs.
type constructFile struct {
	Constructs []Construct `yaml:"constructs"`
}

// LoadFile reads user-defined constructs from a YAML file and merges
// them over the built-in catalog. User entries with a built-in key
// replace the built-in definition. The merge produces a new catalog,
// the built-in set stays untouched.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog file path required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading catalog file: %s", path)
	}

	var f constructFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling catalog file: %s", path)
	}

	cat := Builtin()
	for _, c := range f.Constructs {
		if err := validate(c); err != nil {
			return nil, errors.Wrapf(err, "invalid construct in %s", path)
		}
		cat.constructs[c.Key] = c
	}
	return cat, nil
}

func validate(c Construct) error {
	if c.Key == "" {
		return errors.New("construct key required")
	}
	if c.Name == "" {
		return errors.Errorf("construct %q: name required", c.Key)
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"baselineSecurity", c.BaselineSecurity},
		{"privacyFactor", c.PrivacyFactor},
		{"scalabilityFactor", c.ScalabilityFactor},
	} {
		if f.val < 0 || f.val > 1 {
			return errors.Errorf("construct %q: %s must be in [0,1], got %v", c.Key, f.name, f.val)
		}
	}
	return nil
}
