// Package validate checks decoded JSON objects against declarative field rules.
//
// A Schema lists the fields an object may carry, their JSON type and whether
// they are required or forbidden. Value constraints beyond the type are
// expressed as go-playground/validator tags and evaluated on the typed value.
// Check reports every violated rule, never just the first one.
package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Type is the JSON type a field must have.
type Type int

const (
	String Type = iota + 1
	Integer
)

func (t Type) String() string {
	switch t {
	case String:
		return "a string"
	case Integer:
		return "an integer"
	default:
		return "valid"
	}
}

// Field describes one property of an object.
type Field struct {
	Name      string
	Type      Type
	Required  bool
	Forbidden bool
	// Tag is a validator tag applied to the typed value, e.g. "url" or "min=1".
	Tag string
}

// Schema is an ordered rule set for a JSON object.
type Schema struct {
	Fields       []Field
	AllowUnknown bool
}

var validate = validator.New()

// Check returns the violated rules for payload, in field declaration order
// followed by unknown fields sorted by name. A nil result means valid.
func (s Schema) Check(payload map[string]any) []string {
	var errs []string

	known := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		known[f.Name] = true

		raw, present := payload[f.Name]
		switch {
		case f.Forbidden && present:
			errs = append(errs, fmt.Sprintf("%s is not allowed", f.Name))
		case f.Forbidden:
		case !present && f.Required:
			errs = append(errs, fmt.Sprintf("%s is required", f.Name))
		case present:
			if msg := f.check(raw); msg != "" {
				errs = append(errs, msg)
			}
		}
	}

	if !s.AllowUnknown {
		var unknown []string
		for name := range payload {
			if !known[name] {
				unknown = append(unknown, name)
			}
		}
		sort.Strings(unknown)
		for _, name := range unknown {
			errs = append(errs, fmt.Sprintf("%s is not allowed", name))
		}
	}

	return errs
}

func (f Field) check(raw any) string {
	value, ok := coerce(raw, f.Type)
	if !ok {
		return fmt.Sprintf("%s must be %s", f.Name, f.Type)
	}
	if s, isString := value.(string); isString && strings.ContainsRune(s, 0) {
		return fmt.Sprintf("%s must not contain NUL characters", f.Name)
	}
	if f.Tag == "" {
		return ""
	}

	err := validate.Var(value, f.Tag)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Sprintf("%s is invalid", f.Name)
	}
	return message(f, verrs[0])
}

// coerce converts a decoded JSON value to the Go type matching t.
// Numbers are expected as json.Number (decoder UseNumber); float64 is
// accepted for callers that decode without it.
func coerce(raw any, t Type) (any, bool) {
	switch t {
	case String:
		s, ok := raw.(string)
		return s, ok
	case Integer:
		i, ok := Int(raw)
		return i, ok
	}
	return nil, false
}

// Int returns raw as an int64 when it is a whole JSON number. Fractional
// or exponent notation is accepted as long as the value is integral,
// so 100, 100.0 and 1e2 are the same number.
func Int(raw any) (int64, bool) {
	var f float64
	switch n := raw.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		v, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = v
	case float64:
		f = n
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func message(f Field, fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f.Name)
	case "url", "http_url", "uri":
		return fmt.Sprintf("%s must be a valid URL", f.Name)
	case "min", "gte":
		if f.Type == String {
			if param == "1" {
				return fmt.Sprintf("%s must not be empty", f.Name)
			}
			return fmt.Sprintf("%s must be at least %s characters", f.Name, param)
		}
		return fmt.Sprintf("%s must be at least %s", f.Name, param)
	case "max", "lte":
		if f.Type == String {
			return fmt.Sprintf("%s must be at most %s characters", f.Name, param)
		}
		return fmt.Sprintf("%s must be at most %s", f.Name, param)
	default:
		return fmt.Sprintf("%s is invalid", f.Name)
	}
}
