// Package formdef loads the registration wizard definition from its
// embedded YAML document.
package formdef

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/textclean"
)

//go:embed registration.yaml
var registrationYAML []byte

type document struct {
	Placeholder string         `yaml:"placeholder"`
	Submission  submissionDoc  `yaml:"submission"`
	Aliases     map[string]int `yaml:"aliases"`
	Steps       []stepDoc      `yaml:"steps"`
	Summary     []groupDoc     `yaml:"summary"`
}

type submissionDoc struct {
	IDPrefix         string `yaml:"id_prefix"`
	AgreementField   string `yaml:"agreement_field"`
	AgreementMessage string `yaml:"agreement_message"`
}

type stepDoc struct {
	Page   string     `yaml:"page"`
	Title  string     `yaml:"title"`
	Fields []fieldDoc `yaml:"fields"`
	Rules  []ruleDoc  `yaml:"rules"`
}

type fieldDoc struct {
	Name        string      `yaml:"name"`
	Label       string      `yaml:"label"`
	Kind        string      `yaml:"kind"`
	Required    bool        `yaml:"required"`
	Pattern     string      `yaml:"pattern"`
	Mask        string      `yaml:"mask"`
	Placeholder string      `yaml:"placeholder"`
	Hint        string      `yaml:"hint"`
	Message     string      `yaml:"message"`
	Options     []optionDoc `yaml:"options"`
}

type ruleDoc struct {
	Kind    string `yaml:"kind"`
	Field   string `yaml:"field"`
	Other   string `yaml:"other"`
	Message string `yaml:"message"`
}

type groupDoc struct {
	Title  string   `yaml:"title"`
	Fields []string `yaml:"fields"`
}

// optionDoc accepts either a bare scalar, used as both value and label, or
// a {value, label} mapping.
type optionDoc struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

func (o *optionDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Value, o.Label = node.Value, node.Value
		return nil
	}
	type plain optionDoc
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.Label == "" {
		p.Label = p.Value
	}
	*o = optionDoc(p)
	return nil
}

// Registration returns the built-in registration wizard.
func Registration() (*wizard.Definition, error) {
	return Parse(registrationYAML)
}

// Parse builds a wizard definition from a YAML document.
func Parse(data []byte) (*wizard.Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing form definition: %w", err)
	}

	var errs []error
	steps := make([]wizard.Step, 0, len(doc.Steps))
	for i, sd := range doc.Steps {
		step, err := sd.build(i + 1)
		if err != nil {
			errs = append(errs, err)
		}
		steps = append(steps, step)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("form definition: %w", err)
	}

	groups := make([]wizard.SummaryGroup, 0, len(doc.Summary))
	for _, g := range doc.Summary {
		groups = append(groups, wizard.SummaryGroup{Title: g.Title, Fields: g.Fields})
	}

	def, err := wizard.NewDefinition(steps, doc.Aliases, groups, doc.Placeholder, wizard.Submission{
		IDPrefix:         doc.Submission.IDPrefix,
		AgreementField:   doc.Submission.AgreementField,
		AgreementMessage: doc.Submission.AgreementMessage,
	})
	if err != nil {
		return nil, fmt.Errorf("form definition: %w", err)
	}
	return def, nil
}

func (sd stepDoc) build(n int) (wizard.Step, error) {
	step := wizard.Step{
		Number: n,
		Page:   sd.Page,
		Title:  sd.Title,
		Fields: make([]wizard.Field, 0, len(sd.Fields)),
		Rules:  make([]wizard.Rule, 0, len(sd.Rules)),
	}

	var errs []error
	for _, fd := range sd.Fields {
		f := wizard.Field{
			Name:        fd.Name,
			Label:       fd.Label,
			Kind:        wizard.Kind(fd.Kind),
			Required:    fd.Required,
			Mask:        wizard.Mask(fd.Mask),
			Placeholder: fd.Placeholder,
			Hint:        textclean.Hint(fd.Hint),
			Message:     fd.Message,
		}
		if fd.Pattern != "" {
			re, err := regexp.Compile(`^(?:` + fd.Pattern + `)$`)
			if err != nil {
				errs = append(errs, fmt.Errorf("field %q pattern: %w", fd.Name, err))
			}
			f.Pattern = re
		}
		for _, o := range fd.Options {
			f.Options = append(f.Options, wizard.Option{Value: o.Value, Label: o.Label})
		}
		step.Fields = append(step.Fields, f)
	}

	for _, rd := range sd.Rules {
		step.Rules = append(step.Rules, wizard.Rule{
			Kind:    wizard.RuleKind(rd.Kind),
			Field:   rd.Field,
			Other:   rd.Other,
			Message: rd.Message,
		})
	}

	return step, errors.Join(errs...)
}
