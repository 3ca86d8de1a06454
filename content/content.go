// Package content holds the immutable exercise content pack: the task text,
// the canned feedback material and the rubric keyword tables.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed exercise.yml
var exerciseYAML []byte

// FrameworkTab pairs a marking expectation with its case-study guidance.
type FrameworkTab struct {
	Expectation string `yaml:"expectation"`
	Case        string `yaml:"case"`
}

// FrameworkPack is the fixed four-tab "Learn More" panel.
type FrameworkPack struct {
	GDPR   FrameworkTab `yaml:"gdpr"`
	UNESCO FrameworkTab `yaml:"unesco"`
	Ofsted FrameworkTab `yaml:"ofsted"`
	JISC   FrameworkTab `yaml:"jisc"`
}

// Keywords holds the lowercase trigger phrases for category detection and the
// specificity boosters.
type Keywords struct {
	Role         []string `yaml:"role"`
	Task         []string `yaml:"task"`
	Context      []string `yaml:"context"`
	Format       []string `yaml:"format"`
	Budget       []string `yaml:"budget"`
	Deadline     []string `yaml:"deadline"`
	CallToAction []string `yaml:"callToAction"`
}

// Pack is the full exercise content. It is loaded once at startup and never
// mutated afterwards.
type Pack struct {
	QuestionText  string `yaml:"questionText"`
	TemplateText  string `yaml:"templateText"`
	ModelAnswer   string `yaml:"modelAnswer"`
	ModelAiLetter string `yaml:"modelAiLetter"`

	Framework FrameworkPack `yaml:"framework"`
	Keywords  Keywords      `yaml:"keywords"`

	TargetWords    int `yaml:"targetWords"`
	MinWordsGate   int `yaml:"minWordsGate"`
	MaxWords       int `yaml:"maxWords"`
	MaxAnswerChars int `yaml:"maxAnswerChars"`
}

// Load parses the embedded content pack.
func Load() (*Pack, error) {
	var pack Pack
	if err := yaml.Unmarshal(exerciseYAML, &pack); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exercise content: %w", err)
	}
	if err := pack.validate(); err != nil {
		return nil, fmt.Errorf("invalid exercise content: %w", err)
	}
	return &pack, nil
}

func (p *Pack) validate() error {
	if p.QuestionText == "" || p.TemplateText == "" {
		return fmt.Errorf("question and template text are required")
	}
	if p.ModelAnswer == "" || p.ModelAiLetter == "" {
		return fmt.Errorf("model answer and model letter are required")
	}
	for name, tab := range map[string]FrameworkTab{
		"gdpr": p.Framework.GDPR, "unesco": p.Framework.UNESCO,
		"ofsted": p.Framework.Ofsted, "jisc": p.Framework.JISC,
	} {
		if tab.Expectation == "" || tab.Case == "" {
			return fmt.Errorf("framework tab %q is incomplete", name)
		}
	}
	for name, list := range map[string][]string{
		"role": p.Keywords.Role, "task": p.Keywords.Task,
		"context": p.Keywords.Context, "format": p.Keywords.Format,
		"budget": p.Keywords.Budget, "deadline": p.Keywords.Deadline,
		"callToAction": p.Keywords.CallToAction,
	} {
		if len(list) == 0 {
			return fmt.Errorf("keyword list %q is empty", name)
		}
		for _, phrase := range list {
			if phrase == "" {
				return fmt.Errorf("keyword list %q contains an empty phrase", name)
			}
			if phrase != strings.ToLower(phrase) {
				return fmt.Errorf("keyword list %q contains non-lowercase phrase %q", name, phrase)
			}
		}
	}
	if p.MinWordsGate <= 0 {
		return fmt.Errorf("minWordsGate must be > 0")
	}
	if p.MaxAnswerChars <= 0 {
		return fmt.Errorf("maxAnswerChars must be > 0")
	}
	if p.TargetWords <= 0 || p.MaxWords <= 0 {
		return fmt.Errorf("targetWords and maxWords must be > 0")
	}
	return nil
}
