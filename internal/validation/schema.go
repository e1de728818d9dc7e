// Package validation implements the declarative request validator: one
// generic routine interpreting immutable per-resource rule tables.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Policy names the two presence checks the resources deliberately differ
// on. PolicyNonEmpty treats falsy values (missing, null, "", 0, false) as
// absent, so a product created with price 0 is rejected as incomplete.
// PolicyDefined only rejects a missing key. PolicyOptional skips absent
// fields entirely and validates the rest of the rule when one is supplied.
type Policy int

const (
	PolicyOptional Policy = iota
	PolicyNonEmpty
	PolicyDefined
)

type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
)

type Rule struct {
	Field  string
	Policy Policy
	Type   Type
	Min    *float64
	Max    *float64
	Format Format
	Enum   []string
}

// Schema is an immutable rule table for one resource operation. Message is
// the blanket client message reported when any rule fails; when empty, the
// first field error speaks for the whole payload.
type Schema struct {
	Resource string
	Message  string
	Rules    []Rule
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates every rule failure for one payload.
type Errors struct {
	Resource string
	Fields   []FieldError
	blanket  string
}

func (e *Errors) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Resource, strings.Join(msgs, "; "))
}

// Message returns the schema's blanket message, or the first field error
// when the schema does not define one.
func (e *Errors) Message() string {
	if e.blanket != "" {
		return e.blanket
	}
	if len(e.Fields) > 0 {
		return e.Fields[0].Message
	}
	return "Invalid request body."
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks payload against schema and returns the payload untouched
// on success. Unknown payload fields pass through unvalidated. It is a pure
// function of its inputs.
func Validate(schema Schema, payload map[string]interface{}) (map[string]interface{}, *Errors) {
	errs := &Errors{Resource: schema.Resource, blanket: schema.Message}

	for _, rule := range schema.Rules {
		value, present := payload[rule.Field]

		switch rule.Policy {
		case PolicyNonEmpty:
			if !present || isFalsy(value) {
				errs.add(rule.Field, fmt.Sprintf("%s is required", rule.Field))
				continue
			}
		case PolicyDefined:
			if !present {
				errs.add(rule.Field, fmt.Sprintf("%s must be provided", rule.Field))
				continue
			}
		case PolicyOptional:
			if !present {
				continue
			}
		}
		if value == nil {
			// null passes an optional or defined rule without further checks
			continue
		}

		if msg := checkType(rule, value); msg != "" {
			errs.add(rule.Field, msg)
			continue
		}
		if msg := checkConstraints(rule, value); msg != "" {
			errs.add(rule.Field, msg)
		}
	}

	if len(errs.Fields) > 0 {
		return nil, errs
	}
	return payload, nil
}

func (e *Errors) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// isFalsy mirrors a JavaScript truthiness test over decoded JSON values.
func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case int:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}

func checkType(rule Rule, value interface{}) string {
	switch rule.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s must be a string", rule.Field)
		}
	case TypeNumber:
		if _, ok := toNumber(value); !ok {
			return fmt.Sprintf("%s must be a number", rule.Field)
		}
	case TypeInteger:
		n, ok := toNumber(value)
		if !ok || n != math.Trunc(n) {
			return fmt.Sprintf("%s must be an integer", rule.Field)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%s must be a boolean", rule.Field)
		}
	}
	return ""
}

func checkConstraints(rule Rule, value interface{}) string {
	if rule.Min != nil || rule.Max != nil {
		if n, ok := toNumber(value); ok {
			if rule.Min != nil && n < *rule.Min {
				return fmt.Sprintf("%s must be at least %v", rule.Field, *rule.Min)
			}
			if rule.Max != nil && n > *rule.Max {
				return fmt.Sprintf("%s must be at most %v", rule.Field, *rule.Max)
			}
		}
	}
	if rule.Format == FormatEmail {
		if s, ok := value.(string); ok && !emailPattern.MatchString(s) {
			return fmt.Sprintf("%s must be a valid email address", rule.Field)
		}
	}
	if len(rule.Enum) > 0 {
		s, ok := value.(string)
		if !ok || !contains(rule.Enum, s) {
			return fmt.Sprintf("%s must be one of: %s", rule.Field, strings.Join(rule.Enum, ", "))
		}
	}
	return ""
}

func toNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// NonEmpty reports whether field carries a truthy string and returns it.
// It is the presence policy product updates apply to textual fields.
func NonEmpty(payload map[string]interface{}, field string) (string, bool) {
	s, ok := payload[field].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Defined reports whether field was supplied at all, null included. It is
// the presence policy product updates apply to price, stock and imageUrl,
// where zero is a meaningful value.
func Defined(payload map[string]interface{}, field string) (interface{}, bool) {
	v, ok := payload[field]
	return v, ok
}
