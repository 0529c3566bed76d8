package services

// Helpers for pulling typed values out of a validated request body. The
// workflows validate raw map input so they can tell an omitted field from an
// explicit null; these run only after validation has passed.

// stringField returns the field as a string, or "" when absent or not a string.
func stringField(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}

// optionalString returns a pointer when the field carries a string, nil for
// absent or null.
func optionalString(input map[string]any, key string) *string {
	if s, ok := input[key].(string); ok {
		return &s
	}
	return nil
}

// attributeElements returns the attribute array and whether it was supplied.
// An explicit null counts as not supplied (existing attributes are kept); an
// empty array counts as supplied (existing attributes are cleared).
func attributeElements(input map[string]any) ([]any, bool) {
	raw, ok := input["attributes"]
	if !ok || raw == nil {
		return nil, false
	}
	elements, ok := raw.([]any)
	return elements, ok
}
