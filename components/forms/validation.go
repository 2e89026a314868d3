package forms

import (
	"strings"
)

// Rule marks a field as required and carries the message shown when blank.
type Rule struct {
	Field   string
	Message string
}

// ValidationError lists the failing fields in rule order.
type ValidationError struct {
	Fields map[string]string
	order  []string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.order))
	for _, field := range e.order {
		msgs = append(msgs, e.Fields[field])
	}
	return strings.Join(msgs, "; ")
}

// First returns the message of the first failing field.
func (e *ValidationError) First() string {
	if len(e.order) == 0 {
		return ""
	}
	return e.Fields[e.order[0]]
}

// Has reports whether field failed.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.order = append(e.order, field)
	}
	e.Fields[field] = msg
}

// Required checks that every rule's field is present after trimming. It
// returns nil or a *ValidationError.
func Required(values map[string]string, rules ...Rule) error {
	verr := &ValidationError{}
	for _, rule := range rules {
		if strings.TrimSpace(values[rule.Field]) == "" {
			verr.add(rule.Field, rule.Message)
		}
	}
	if len(verr.order) == 0 {
		return nil
	}
	return verr
}
