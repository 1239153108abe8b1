package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownConstruct is returned when a key does not resolve
// against the catalog.
var ErrUnknownConstruct = errors.New("unknown construct")

// Construct describes a single Web3 architectural approach and the
// fixed quality factors used as the baseline for its stability score.
// All factors are in the 0-1 range.
type Construct struct {
	Key               string  `json:"construct" yaml:"construct"`
	Name              string  `json:"name" yaml:"name"`
	Category          string  `json:"category" yaml:"category"`
	BaselineSecurity  float64 `json:"baselineSecurity" yaml:"baselineSecurity"`
	PrivacyFactor     float64 `json:"privacyFactor" yaml:"privacyFactor"`
	ScalabilityFactor float64 `json:"scalabilityFactor" yaml:"scalabilityFactor"`
	Description       string  `json:"description" yaml:"description"`
}

// Catalog is a read-only construct lookup. Values are copied on the
// way in and out so the built-in set is never mutated.
type Catalog struct {
	constructs map[string]Construct
}

var builtin = []Construct{
	{
		Key:               "aztec-zk",
		Name:              "Aztec-Style zk Circuit",
		Category:          "zk privacy",
		BaselineSecurity:  0.81,
		PrivacyFactor:     0.94,
		ScalabilityFactor: 0.58,
		Description:       "Circuit-focused private computation with encrypted state roots.",
	},
	{
		Key:               "zama-fhe",
		Name:              "Zama FHE Compute Layer",
		Category:          "fhe compute",
		BaselineSecurity:  0.89,
		PrivacyFactor:     0.87,
		ScalabilityFactor: 0.42,
		Description:       "Fully homomorphic encrypted computation woven into Web3 data models.",
	},
	{
		Key:               "soundness-lab",
		Name:              "Soundness-Driven Formal Model",
		Category:          "formal verification",
		BaselineSecurity:  0.97,
		PrivacyFactor:     0.51,
		ScalabilityFactor: 0.72,
		Description:       "Extremely rigorous models built from formal proofs and verified semantics.",
	},
}

// Builtin returns a catalog holding only the built-in constructs.
func Builtin() *Catalog {
	m := make(map[string]Construct, len(builtin))
	for _, c := range builtin {
		m[c.Key] = c
	}
	return &Catalog{constructs: m}
}

// Get resolves a construct by key.
func (t *Catalog) Get(key string) (Construct, error) {
	c, ok := t.constructs[key]
	if !ok {
		return Construct{}, fmt.Errorf("%w: %q (known: %s)",
			ErrUnknownConstruct, key, strings.Join(t.Keys(), ", "))
	}
	return c, nil
}

// Keys returns the sorted construct keys.
func (t *Catalog) Keys() []string {
	keys := make([]string, 0, len(t.constructs))
	for k := range t.constructs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns all constructs ordered by key.
func (t *Catalog) List() []Construct {
	list := make([]Construct, 0, len(t.constructs))
	for _, k := range t.Keys() {
		list = append(list, t.constructs[k])
	}
	return list
}
