// Package validation evaluates statically declared per-route constraint
// schemas against request body, query and path sources, returning typed
// field-level violations instead of panicking or short-circuiting handlers.
package validation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

// Type is the expected shape of a field value.
type Type int

const (
	String Type = iota
	Number
	// UUID is a string that must parse as a normalized UUID, the store's
	// native key format.
	UUID
)

// Source holds the decoded values of one request section. Query and path
// values arrive as strings; body values carry whatever JSON decoded to.
type Source map[string]any

// Rule constrains a single field.
type Rule struct {
	Field    string
	Required bool
	Type     Type
	Min      *float64 // numeric lower bound, inclusive
	Max      *float64 // numeric upper bound, inclusive
	MinLen   int      // string length bounds; zero means unset
	MaxLen   int
	Pattern  *regexp.Regexp
}

// CrossCheck inspects a whole section, for constraints spanning fields.
type CrossCheck func(src Source) *Violation

// Section is the rule set for one request section.
type Section struct {
	Rules  []Rule
	Checks []CrossCheck
}

// Schema is the full constraint set for a route. AbortEarly stops at the
// first violation; all routes in this service collect every violation.
type Schema struct {
	Body       Section
	Query      Section
	Params     Section
	AbortEarly bool
}

// Violation is a single failed constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the result of evaluating a schema.
type Violations []Violation

// Messages flattens violations to their human-readable messages.
func (v Violations) Messages() []string {
	msgs := make([]string, len(v))
	for i, viol := range v {
		msgs[i] = viol.Message
	}
	return msgs
}

// First returns the first message, or "" when there are no violations.
func (v Violations) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

// Validate runs the schema against the three request sections.
func Validate(s *Schema, body, query, params Source) Violations {
	var out Violations
	for _, sec := range []struct {
		section Section
		src     Source
	}{
		{s.Body, body},
		{s.Query, query},
		{s.Params, params},
	} {
		out = append(out, evalSection(sec.section, sec.src, s.AbortEarly)...)
		if s.AbortEarly && len(out) > 0 {
			return out[:1]
		}
	}
	return out
}

func evalSection(sec Section, src Source, abortEarly bool) Violations {
	var out Violations
	for _, rule := range sec.Rules {
		if v := evalRule(rule, src); v != nil {
			out = append(out, *v)
			if abortEarly {
				return out
			}
		}
	}
	for _, check := range sec.Checks {
		if v := check(src); v != nil {
			out = append(out, *v)
			if abortEarly {
				return out
			}
		}
	}
	return out
}

func evalRule(rule Rule, src Source) *Violation {
	raw, present := src[rule.Field]
	if !present || raw == nil || raw == "" {
		if rule.Required {
			return &Violation{Field: rule.Field, Message: rule.Field + " is a required field"}
		}
		return nil
	}

	switch rule.Type {
	case Number:
		n, ok := NumberValue(raw)
		if !ok {
			return &Violation{Field: rule.Field, Message: rule.Field + " must be a number"}
		}
		if rule.Min != nil && n < *rule.Min {
			return &Violation{Field: rule.Field, Message: fmt.Sprintf("%s must be greater than or equal to %v", rule.Field, *rule.Min)}
		}
		if rule.Max != nil && n > *rule.Max {
			return &Violation{Field: rule.Field, Message: fmt.Sprintf("%s must be less than or equal to %v", rule.Field, *rule.Max)}
		}
	case UUID:
		s, ok := raw.(string)
		if !ok {
			return &Violation{Field: rule.Field, Message: rule.Field + " must be a string"}
		}
		if _, err := uuid.Parse(s); err != nil {
			return &Violation{Field: rule.Field, Message: rule.Field + " is not a valid identifier"}
		}
	default:
		s, ok := raw.(string)
		if !ok {
			return &Violation{Field: rule.Field, Message: rule.Field + " must be a string"}
		}
		if rule.MinLen > 0 && len(s) < rule.MinLen {
			return &Violation{Field: rule.Field, Message: fmt.Sprintf("%s must be at least %d characters", rule.Field, rule.MinLen)}
		}
		if rule.MaxLen > 0 && len(s) > rule.MaxLen {
			return &Violation{Field: rule.Field, Message: fmt.Sprintf("%s must be at most %d characters", rule.Field, rule.MaxLen)}
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(s) {
			return &Violation{Field: rule.Field, Message: s + " is not a valid " + rule.Field}
		}
	}
	return nil
}

// NumberValue coerces a source value to float64. Query values are strings;
// JSON body values decode to float64 already.
func NumberValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// RangePair builds a cross check asserting start <= end when both bounds of
// an inclusive numeric range are present.
func RangePair(start, end string) CrossCheck {
	return func(src Source) *Violation {
		lo, okLo := NumberValue(src[start])
		hi, okHi := NumberValue(src[end])
		if okLo && okHi && lo > hi {
			return &Violation{
				Field:   start,
				Message: fmt.Sprintf("%s must be less than or equal to %s", start, end),
			}
		}
		return nil
	}
}

// Partial returns a copy of the schema with every body rule made optional.
// Used for PATCH routes: fields present in the patch are still checked
// against the creation constraints, absent fields are not required.
func (s *Schema) Partial() *Schema {
	clone := *s
	clone.Body.Rules = make([]Rule, len(s.Body.Rules))
	copy(clone.Body.Rules, s.Body.Rules)
	for i := range clone.Body.Rules {
		clone.Body.Rules[i].Required = false
	}
	return &clone
}
