// Package assistant implements the help responder: a pure keyword match
// from query string to canned reply. No learning, no external calls.
package assistant

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"secdesk/internal/shared/services/markdown"
)

// Rule maps a set of keywords to a canned reply. Replies may use markdown.
type Rule struct {
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

type rulesFile struct {
	Rules    []Rule `yaml:"rules"`
	Fallback string `yaml:"fallback"`
}

const defaultFallback = "I can help with incidents, tickets, datasets, or login."

type Assistant struct {
	rules    []Rule
	fallback string
	renderer markdown.Service
}

// New builds an assistant with the built-in rule set.
func New() *Assistant {
	return &Assistant{
		rules:    defaultRules(),
		fallback: defaultFallback,
		renderer: markdown.NewService(),
	}
}

// NewFromFile loads rules from a YAML file. An empty rule set falls back to
// the built-in defaults.
func NewFromFile(path string) (*Assistant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assistant rules: %w", err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse assistant rules: %w", err)
	}

	a := New()
	if len(rf.Rules) > 0 {
		a.rules = rf.Rules
	}
	if rf.Fallback != "" {
		a.fallback = rf.Fallback
	}
	return a, nil
}

// Respond matches the query against the rules in order and returns the reply
// of the first rule with a keyword contained in the query. Matching is
// case-insensitive substring search.
func (a *Assistant) Respond(query string) string {
	msg := strings.ToLower(query)
	for _, rule := range a.rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(msg, strings.ToLower(kw)) {
				return rule.Reply
			}
		}
	}
	return a.fallback
}

// RespondHTML renders the reply as sanitized HTML.
func (a *Assistant) RespondHTML(query string) (string, error) {
	return a.renderer.ToHTMLSanitized(a.Respond(query))
}

func defaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"incident"},
			Reply:    "Security incidents can be viewed and added on the incidents endpoints.",
		},
		{
			Keywords: []string{"ticket"},
			Reply:    "IT tickets are managed through the tickets endpoints.",
		},
		{
			Keywords: []string{"dataset"},
			Reply:    "Datasets can be registered and listed through the datasets endpoints.",
		},
		{
			Keywords: []string{"login", "password"},
			Reply:    "Users must log in before accessing platform features.",
		},
	}
}
