// Package validation implements the rule-based input checker used by the
// auth and product workflows. Input arrives as the decoded JSON body
// (map[string]any), so rules can distinguish a field that was omitted from
// one that was sent as null, and nested attribute elements can be validated
// with wildcard fields ("attributes.*.key") producing indexed error keys
// ("attributes.0.key").
package validation

import (
	"strconv"
	"strings"
)

// Errors maps a field name to its ordered list of failure messages.
type Errors map[string][]string

// Add appends a message to the field's error list.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Any reports whether any field failed.
func (e Errors) Any() bool {
	return len(e) > 0
}

// First returns the first message recorded for a field, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Rule checks a single constraint on a single field.
type Rule interface {
	// Name identifies the rule in message override keys ("name.required").
	Name() string
	// Passes reports whether the constraint holds. present is false when the
	// field was absent from the input entirely.
	Passes(input map[string]any, field string, value any, present bool) bool
	// Message is the default wording used when no override is registered.
	Message(field string) string
}

type fieldRules struct {
	name  string
	rules []Rule
}

// Validator holds an ordered rule set plus message overrides.
type Validator struct {
	fields   []fieldRules
	messages map[string]string
}

// New creates an empty validator.
func New() *Validator {
	return &Validator{messages: make(map[string]string)}
}

// Field registers rules for a field. Rules run in the given order and the
// first failure wins for that field. Names containing ".*." are expanded per
// element of the named array at validation time.
func (v *Validator) Field(name string, rules ...Rule) *Validator {
	v.fields = append(v.fields, fieldRules{name: name, rules: rules})
	return v
}

// Messages registers custom wording keyed by "<field>.<rule>", e.g.
// "name.required". Wildcard fields keep their wildcard in the key.
func (v *Validator) Messages(overrides map[string]string) *Validator {
	for key, msg := range overrides {
		v.messages[key] = msg
	}
	return v
}

// Validate runs every field's rules against the input. All fields are
// checked (no fail-fast across fields); within one field evaluation stops at
// the first violated rule.
func (v *Validator) Validate(input map[string]any) Errors {
	errs := Errors{}

	for _, fr := range v.fields {
		parent, sub, wildcard := strings.Cut(fr.name, ".*.")
		if !wildcard {
			v.check(errs, input, fr.name, fr.name, fr.rules)
			continue
		}

		elements, ok := input[parent].([]any)
		if !ok {
			// Absent, null or non-array parents are covered by the parent
			// field's own rules.
			continue
		}
		for i, element := range elements {
			concrete := parent + "." + strconv.Itoa(i) + "." + sub
			em, _ := element.(map[string]any)
			v.checkElement(errs, input, fr.name, concrete, sub, em, fr.rules)
		}
	}

	return errs
}

func (v *Validator) check(errs Errors, input map[string]any, key, field string, rules []Rule) {
	value, present := input[field]
	for _, rule := range rules {
		if rule.Passes(input, field, value, present) {
			continue
		}
		errs.Add(field, v.message(key, field, rule))
		return
	}
}

func (v *Validator) checkElement(errs Errors, input map[string]any, key, field, sub string, element map[string]any, rules []Rule) {
	var value any
	var present bool
	if element != nil {
		value, present = element[sub]
	}
	for _, rule := range rules {
		if rule.Passes(input, field, value, present) {
			continue
		}
		errs.Add(field, v.message(key, field, rule))
		return
	}
}

func (v *Validator) message(key, field string, rule Rule) string {
	if msg, ok := v.messages[key+"."+rule.Name()]; ok {
		return msg
	}
	return rule.Message(field)
}
