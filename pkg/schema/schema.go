// Package schema applies declarative field rules to a draft record.
//
// A Schema lists fields in a fixed order. Each field points at a value inside
// the draft, may be trimmed or lowercased, may be required, and carries
// ordered rules expressed as validator tags with the message to report when
// the tag fails. Validation visits every field and reports at most one
// message per field, in schema order.
package schema

import (
	"strings"

	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
)

// Rule pairs a validator tag (e.g. "min=5", "oneof=a b", "phone") with its message.
type Rule struct {
	Tag     string
	Message string
}

// Field describes one constrained value of T.
//
// Ref returns a pointer into the draft. Supported targets are *string,
// *[]string, **float64, **int, *float64, *int and *bool. For string lists the
// rules apply to every element.
type Field[T any] struct {
	Name     string
	Ref      func(*T) any
	Trim     bool
	Lower    bool
	Required string
	Rules    []Rule
	// Check runs after Rules pass and returns a message when the value is rejected.
	Check func(*T) string
}

// Schema is the ordered field list for one resource.
type Schema[T any] struct {
	Resource string
	Fields   []Field[T]
}

// Normalize trims and lowercases the string fields that ask for it.
// String lists are normalized element-wise and empty elements dropped.
func (s Schema[T]) Normalize(v *T) {
	if v == nil {
		return
	}
	for _, f := range s.Fields {
		if !f.Trim && !f.Lower {
			continue
		}
		switch p := f.Ref(v).(type) {
		case *string:
			*p = normalizeString(*p, f.Trim, f.Lower)
		case *[]string:
			if *p == nil {
				continue
			}
			out := make([]string, 0, len(*p))
			for _, item := range *p {
				item = normalizeString(item, f.Trim, f.Lower)
				if item == "" {
					continue
				}
				out = append(out, item)
			}
			*p = out
		}
	}
}

// Validate returns every violated rule in field order, one per field.
func (s Schema[T]) Validate(v *T) []string {
	if v == nil {
		return nil
	}
	var messages []string
	for _, f := range s.Fields {
		if msg := f.validate(v); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages
}

// Check normalizes then validates v, returning a VALIDATION_ERROR listing all messages.
func (s Schema[T]) Check(v *T) error {
	s.Normalize(v)
	if messages := s.Validate(v); len(messages) > 0 {
		return pkgerrors.Validation(messages)
	}
	return nil
}

func (f Field[T]) validate(v *T) string {
	values, present := extract(f.Ref(v))
	if !present {
		return f.Required
	}
	for _, rule := range f.Rules {
		for _, value := range values {
			if err := validate.Var(value, rule.Tag); err != nil {
				return rule.Message
			}
		}
	}
	if f.Check != nil {
		return f.Check(v)
	}
	return ""
}

// extract dereferences the field target. A nil pointer, an empty string and
// an empty list all count as absent.
func extract(ref any) ([]any, bool) {
	switch p := ref.(type) {
	case *string:
		if *p == "" {
			return nil, false
		}
		return []any{*p}, true
	case *[]string:
		if len(*p) == 0 {
			return nil, false
		}
		out := make([]any, len(*p))
		for i, item := range *p {
			out[i] = item
		}
		return out, true
	case **float64:
		if *p == nil {
			return nil, false
		}
		return []any{**p}, true
	case **int:
		if *p == nil {
			return nil, false
		}
		return []any{**p}, true
	case *float64:
		return []any{*p}, true
	case *int:
		return []any{*p}, true
	case *bool:
		return []any{*p}, true
	default:
		return []any{ref}, ref != nil
	}
}

func normalizeString(value string, trim, lower bool) string {
	if trim {
		value = strings.TrimSpace(value)
	}
	if lower {
		value = strings.ToLower(value)
	}
	return value
}
