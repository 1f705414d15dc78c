// Package wizard holds the static shape of the registration wizard: its
// steps, the page-to-step lookup, per-field rules and masks, the fixed
// page sequence used for navigation, and the validation that gates moving
// forward.
package wizard

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// defaultStep is the step any unrecognized page resolves to.
const defaultStep = 1

// Step is one page of the wizard.
type Step struct {
	Number int
	Page   string
	Title  string
	Fields []Field
	Rules  []Rule
}

// Field returns the field with the given name on this step.
func (s Step) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// SummaryGroup is a heading on the review page and the draft fields listed
// under it, in display order.
type SummaryGroup struct {
	Title  string
	Fields []string
}

// Submission holds the settings of the final confirmation step.
type Submission struct {
	IDPrefix         string
	AgreementField   string
	AgreementMessage string
}

// Definition is the validated, immutable description of the whole wizard.
// Build it with NewDefinition.
type Definition struct {
	steps       []Step
	pages       map[string]int
	fields      map[string]Field
	groups      []SummaryGroup
	placeholder string
	submission  Submission
}

// NewDefinition validates the given parts and indexes them. Steps must be
// numbered 1..n in order; aliases map extra page names (such as
// "index.html") to a step number. Every summary field must be defined on
// some step and field names must be unique across the wizard.
func NewDefinition(steps []Step, aliases map[string]int, groups []SummaryGroup, placeholder string, sub Submission) (*Definition, error) {
	if len(steps) == 0 {
		return nil, errors.New("wizard: at least one step is required")
	}

	d := &Definition{
		steps:       steps,
		pages:       make(map[string]int, len(steps)+len(aliases)),
		fields:      make(map[string]Field),
		groups:      groups,
		placeholder: placeholder,
		submission:  sub,
	}

	var errs []error
	for i, s := range steps {
		if s.Number != i+1 {
			errs = append(errs, fmt.Errorf("wizard: step %q has number %d, want %d", s.Page, s.Number, i+1))
		}
		if s.Page == "" {
			errs = append(errs, fmt.Errorf("wizard: step %d has no page", s.Number))
		}
		if _, dup := d.pages[s.Page]; dup {
			errs = append(errs, fmt.Errorf("wizard: page %q used by more than one step", s.Page))
		}
		d.pages[s.Page] = s.Number
		errs = append(errs, d.indexFields(s)...)
	}

	for page, n := range aliases {
		if n < 1 || n > len(steps) {
			errs = append(errs, fmt.Errorf("wizard: alias %q points at missing step %d", page, n))
			continue
		}
		if _, dup := d.pages[page]; dup {
			errs = append(errs, fmt.Errorf("wizard: alias %q shadows a step page", page))
			continue
		}
		d.pages[page] = n
	}

	for _, g := range groups {
		for _, name := range g.Fields {
			if _, ok := d.fields[name]; !ok {
				errs = append(errs, fmt.Errorf("wizard: summary group %q lists unknown field %q", g.Title, name))
			}
		}
	}

	if sub.AgreementField == "" {
		errs = append(errs, errors.New("wizard: submission agreement field is required"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Definition) indexFields(s Step) []error {
	var errs []error
	for _, f := range s.Fields {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("wizard: step %d has a field without a name", s.Number))
			continue
		}
		if _, dup := d.fields[f.Name]; dup {
			errs = append(errs, fmt.Errorf("wizard: field %q defined more than once", f.Name))
		}
		if !f.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("wizard: field %q has invalid kind %q", f.Name, f.Kind))
		}
		if f.Kind.HasOptions() && len(f.Options) == 0 {
			errs = append(errs, fmt.Errorf("wizard: %s field %q needs options", f.Kind, f.Name))
		}
		if f.Mask != "" && f.Mask.Capacity() == 0 {
			errs = append(errs, fmt.Errorf("wizard: field %q mask %q has no digit slots", f.Name, f.Mask))
		}
		d.fields[f.Name] = f
	}
	for _, r := range s.Rules {
		if r.Kind != RuleNotGreater {
			errs = append(errs, fmt.Errorf("wizard: step %d has unknown rule %q", s.Number, r.Kind))
		}
		if _, ok := s.Field(r.Field); !ok {
			errs = append(errs, fmt.Errorf("wizard: rule on step %d names unknown field %q", s.Number, r.Field))
		}
		if _, ok := s.Field(r.Other); !ok {
			errs = append(errs, fmt.Errorf("wizard: rule on step %d names unknown field %q", s.Number, r.Other))
		}
	}
	return errs
}

// PageName reduces a request path to its final segment ("/a/review.html"
// becomes "review.html").
func PageName(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// ResolveStep maps a page name to its step number. Unknown pages resolve
// to step 1.
func (d *Definition) ResolveStep(page string) int {
	if n, ok := d.pages[PageName(page)]; ok {
		return n
	}
	return defaultStep
}

// Known reports whether page is a step page or an alias.
func (d *Definition) Known(page string) bool {
	_, ok := d.pages[PageName(page)]
	return ok
}

// StepFor returns the step a page resolves to.
func (d *Definition) StepFor(page string) Step {
	return d.steps[d.ResolveStep(page)-1]
}

// Step returns the step with the given number.
func (d *Definition) Step(n int) (Step, bool) {
	if n < 1 || n > len(d.steps) {
		return Step{}, false
	}
	return d.steps[n-1], true
}

// Steps returns the steps in navigation order.
func (d *Definition) Steps() []Step {
	return d.steps
}

// First returns the first step.
func (d *Definition) First() Step {
	return d.steps[0]
}

// IsFinal reports whether n is the last step.
func (d *Definition) IsFinal(n int) bool {
	return n == len(d.steps)
}

// Next returns the step after n. ok is false when n is the last step.
func (d *Definition) Next(n int) (Step, bool) {
	return d.Step(n + 1)
}

// Previous returns the step before n. ok is false when n is the first step.
func (d *Definition) Previous(n int) (Step, bool) {
	return d.Step(n - 1)
}

// Field returns a field definition by name from any step.
func (d *Definition) Field(name string) (Field, bool) {
	f, ok := d.fields[name]
	return f, ok
}

// Label returns the human label of a field, falling back to its name.
func (d *Definition) Label(name string) string {
	if f, ok := d.fields[name]; ok && f.Label != "" {
		return f.Label
	}
	return name
}

// SummaryGroups returns the review page groups in display order.
func (d *Definition) SummaryGroups() []SummaryGroup {
	return d.groups
}

// Placeholder is the text shown on the review page for a missing value.
func (d *Definition) Placeholder() string {
	return d.placeholder
}

// Submission returns the final-step settings.
func (d *Definition) Submission() Submission {
	return d.submission
}
