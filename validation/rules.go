package validation

import (
	"fmt"
	"net/mail"
	"reflect"
	"strings"
)

// Required fails on absent, null or blank-string values.
func Required() Rule { return requiredRule{} }

type requiredRule struct{}

func (requiredRule) Name() string { return "required" }

func (requiredRule) Passes(_ map[string]any, _ string, value any, present bool) bool {
	return filled(value, present)
}

func (requiredRule) Message(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}

// RequiredWith behaves like Required but words its failure relative to the
// other field whose presence triggered it.
func RequiredWith(other string) Rule { return requiredWithRule{other: other} }

type requiredWithRule struct{ other string }

func (requiredWithRule) Name() string { return "required_with" }

func (requiredWithRule) Passes(_ map[string]any, _ string, value any, present bool) bool {
	return filled(value, present)
}

func (r requiredWithRule) Message(field string) string {
	return fmt.Sprintf("The %s field is required when %s is present.", field, r.other)
}

// String accepts absent and null values; anything else must be a string.
func String() Rule { return stringRule{} }

type stringRule struct{}

func (stringRule) Name() string { return "string" }

func (stringRule) Passes(_ map[string]any, _ string, value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	_, ok := value.(string)
	return ok
}

func (stringRule) Message(field string) string {
	return fmt.Sprintf("The %s must be a string.", field)
}

// Email requires a present value to be a plain, parseable address.
func Email() Rule { return emailRule{} }

type emailRule struct{}

func (emailRule) Name() string { return "email" }

func (emailRule) Passes(_ map[string]any, _ string, value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms like "Bob <bob@example.com>".
	return err == nil && addr.Address == s
}

func (emailRule) Message(field string) string {
	return fmt.Sprintf("The %s must be a valid email address.", field)
}

// Confirmed requires the input to carry an equal "<field>_confirmation".
func Confirmed() Rule { return confirmedRule{} }

type confirmedRule struct{}

func (confirmedRule) Name() string { return "confirmed" }

func (confirmedRule) Passes(input map[string]any, field string, value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	confirmation, ok := input[field+"_confirmation"]
	return ok && reflect.DeepEqual(confirmation, value)
}

func (confirmedRule) Message(field string) string {
	return fmt.Sprintf("The %s confirmation does not match.", field)
}

// Array accepts absent and null values; anything else must be a JSON array.
func Array() Rule { return arrayRule{} }

type arrayRule struct{}

func (arrayRule) Name() string { return "array" }

func (arrayRule) Passes(_ map[string]any, _ string, value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	_, ok := value.([]any)
	return ok
}

func (arrayRule) Message(field string) string {
	return fmt.Sprintf("The %s must be an array.", field)
}

// Unique delegates to a store lookup. The callback decides its own scoping
// (the workflows exclude soft-deleted rows and compare case-insensitively).
func Unique(taken func(value string) bool) Rule { return uniqueRule{taken: taken} }

type uniqueRule struct {
	taken func(string) bool
}

func (uniqueRule) Name() string { return "unique" }

func (r uniqueRule) Passes(_ map[string]any, _ string, value any, present bool) bool {
	s, ok := value.(string)
	if !present || !ok {
		return true
	}
	return !r.taken(s)
}

func (uniqueRule) Message(field string) string {
	return fmt.Sprintf("The %s has already been taken.", field)
}

// Distinct flags values repeated among sibling elements of a wildcard field.
// Every duplicate element is flagged, not only the later ones.
func Distinct() Rule { return distinctRule{} }

type distinctRule struct{}

func (distinctRule) Name() string { return "distinct" }

func (distinctRule) Passes(input map[string]any, field string, value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	parts := strings.SplitN(field, ".", 3)
	if len(parts) != 3 {
		return true
	}
	elements, _ := input[parts[0]].([]any)
	count := 0
	for _, element := range elements {
		em, _ := element.(map[string]any)
		if em == nil {
			continue
		}
		if sibling, ok := em[parts[2]]; ok && reflect.DeepEqual(sibling, value) {
			count++
		}
	}
	return count <= 1
}

func (distinctRule) Message(field string) string {
	return fmt.Sprintf("The %s field has a duplicate value.", field)
}

// filled implements required-style presence: absent, null and blank strings
// all count as missing.
func filled(value any, present bool) bool {
	if !present || value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}
