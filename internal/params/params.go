// Package params turns the raw Best_Parameters encoding of a model into the
// human-readable string printed in the hyperparameter tables.
//
// The rules are data: an embedded YAML mapping from model name to either a
// literal override or the generic cleanup transform. Extra rule files can be
// layered on top, so adding a model never needs a code change.
package params

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed display.yaml
var defaultRules []byte

// Kind selects how a Rule renders a parameter string.
type Kind string

const (
	KindOverride Kind = "override"
	KindCleanup  Kind = "cleanup"
)

// Rule is one model's display rule.
type Rule struct {
	Kind Kind   `yaml:"kind"`
	Text string `yaml:"text,omitempty"`
}

// Table maps model names to display rules. The zero value applies cleanup to every model.
type Table struct {
	rules map[string]Rule
}

// Default returns the built-in rule table.
func Default() (*Table, error) {
	return Parse(defaultRules)
}

// Parse decodes a YAML rule mapping.
func Parse(data []byte) (*Table, error) {
	var raw map[string]Rule
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse parameter display rules: %w", err)
	}

	t := &Table{rules: make(map[string]Rule, len(raw))}
	for name, rule := range raw {
		if err := t.Set(name, rule); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Load returns the built-in table with the rules in path layered over it.
// An empty path returns the built-in table unchanged.
func Load(path string) (*Table, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter display rules %s: %w", path, err)
	}

	extra, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for name, rule := range extra.rules {
		t.rules[name] = rule
	}
	return t, nil
}

// Set adds or replaces the rule for model.
func (t *Table) Set(model string, rule Rule) error {
	if rule.Kind == "" {
		rule.Kind = KindCleanup
	}

	switch rule.Kind {
	case KindOverride:
		if rule.Text == "" {
			return fmt.Errorf("parameter display rule for %q: override needs text", model)
		}
	case KindCleanup:
	default:
		return fmt.Errorf("parameter display rule for %q: unknown kind %q", model, rule.Kind)
	}

	if t.rules == nil {
		t.rules = make(map[string]Rule)
	}
	t.rules[model] = rule
	return nil
}

// Display renders raw for model using its rule, or Cleanup when none is set.
func (t *Table) Display(model, raw string) string {
	if rule, ok := t.rules[model]; ok && rule.Kind == KindOverride {
		return rule.Text
	}
	return Cleanup(raw)
}

// Rules returns a copy of the rule mapping.
func (t *Table) Rules() map[string]Rule {
	out := make(map[string]Rule, len(t.rules))
	for k, v := range t.rules {
		out[k] = v
	}
	return out
}

var cleanupReplacer = strings.NewReplacer("'", "", `"`, "", "{", "", "}", "")

// Cleanup strips quote and brace characters from a serialized mapping,
// e.g. {'nu': 0.05} becomes nu: 0.05.
func Cleanup(raw string) string {
	return strings.TrimSpace(cleanupReplacer.Replace(raw))
}
