package assist

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleSpec is the on-disk shape of a keyword reply configuration.
// See prompts/replies.yaml for the built-in set expressed as a file.
type RuleSpec struct {
	Rules    []Rule `yaml:"rules"`
	Fallback string `yaml:"fallback"`
}

// LoadKeywordResponder reads a YAML rule file and builds a responder
// from it. Rules keep file order, which is their match priority.
func LoadKeywordResponder(path string) (*KeywordResponder, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec RuleSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(spec.Rules) == 0 {
		return nil, fmt.Errorf("%s: no rules defined", path)
	}
	for i, r := range spec.Rules {
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("%s: rule %d (%s) has no keywords", path, i, r.Name)
		}
		if strings.TrimSpace(r.Reply) == "" {
			return nil, fmt.Errorf("%s: rule %d (%s) has no reply", path, i, r.Name)
		}
	}
	fallback := spec.Fallback
	if strings.TrimSpace(fallback) == "" {
		fallback = "I understand you said: '%s'. How can I assist you further?"
	}
	return NewKeywordResponder(spec.Rules, fallback), nil
}
