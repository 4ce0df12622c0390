// Package params implements the per-tool parameter specifications: a
// declarative description of each argument that both validates/coerces
// incoming calls and renders the JSON schema advertised in the tool
// catalog, so the two can never drift apart.
package params

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxSymbols bounds every list-valued symbol field.
const MaxSymbols = 500

// symbolPattern is the TICKER.REGION shape, e.g. 700.HK or AAPL.US.
var symbolPattern = regexp.MustCompile(`^[A-Z0-9]+\.[A-Z]+$`)

type FieldType string

const (
	TypeString     FieldType = "string"
	TypeInt        FieldType = "integer"
	TypeSymbol     FieldType = "symbol"
	TypeSymbolList FieldType = "symbol_list"
	TypeDate       FieldType = "date"
	TypeTime       FieldType = "time"
	TypeEnum       FieldType = "enum"
	TypeEnumList   FieldType = "enum_list"
)

// Field declares one argument: its wire type, optionality, default, and
// constraints. Enum fields carry the closed literal table; anything
// outside the table fails.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool
	Default     interface{}
	Enum        []string
	Min         int
	Max         int
}

// Values is the coerced argument bag a spec produces on success: strings
// stay strings, integers become int, dates become Date, times TimeOfDay.
// It only ever exists fully valid.
type Values map[string]interface{}

func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)
	return s
}

func (v Values) Date(name string) (Date, bool) {
	d, ok := v[name].(Date)
	return d, ok
}

func (v Values) TimeOfDay(name string) (TimeOfDay, bool) {
	t, ok := v[name].(TimeOfDay)
	return t, ok
}

// Spec is a tool's parameter specification. Refine, when set, runs after
// every field passed individually and checks cross-field rules.
type Spec struct {
	Fields []Field
	Refine func(v Values) []FieldIssue
}

// Validate checks args against the spec and returns the coerced values,
// or a *ValidationError carrying one issue per offending field.
func (s Spec) Validate(args map[string]interface{}) (Values, error) {
	if args == nil {
		args = map[string]interface{}{}
	}
	v := make(Values, len(s.Fields))
	var issues []FieldIssue
	for _, f := range s.Fields {
		raw, ok := args[f.Name]
		if !ok || raw == nil {
			if f.Required {
				issues = append(issues, FieldIssue{Path: f.Name, Message: "required"})
			} else if f.Default != nil {
				v[f.Name] = f.Default
			}
			continue
		}
		val, fieldIssues := coerce(f, raw)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		v[f.Name] = val
	}
	// Cross-field rules only run on individually valid values.
	if len(issues) == 0 && s.Refine != nil {
		issues = append(issues, s.Refine(v)...)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return v, nil
}

func coerce(f Field, raw interface{}) (interface{}, []FieldIssue) {
	issue := func(format string, args ...interface{}) []FieldIssue {
		return []FieldIssue{{Path: f.Name, Message: fmt.Sprintf(format, args...)}}
	}

	switch f.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, issue("must be a string")
		}
		return s, nil

	case TypeInt:
		n, ok := asInt(raw)
		if !ok {
			return nil, issue("must be an integer")
		}
		if f.Max > 0 && (n < f.Min || n > f.Max) {
			return nil, issue("must be between %d and %d", f.Min, f.Max)
		}
		return n, nil

	case TypeSymbol:
		s, ok := raw.(string)
		if !ok {
			return nil, issue("must be a string")
		}
		if !symbolPattern.MatchString(s) {
			return nil, issue("must look like TICKER.REGION (e.g. 700.HK), got %q", s)
		}
		return s, nil

	case TypeSymbolList:
		items, ok := asStringSlice(raw)
		if !ok {
			return nil, issue("must be an array of strings")
		}
		max := f.Max
		if max == 0 {
			max = MaxSymbols
		}
		if len(items) > max {
			return nil, issue("at most %d symbols allowed, got %d", max, len(items))
		}
		var issues []FieldIssue
		for i, s := range items {
			if !symbolPattern.MatchString(s) {
				issues = append(issues, FieldIssue{
					Path:    fmt.Sprintf("%s[%d]", f.Name, i),
					Message: fmt.Sprintf("must look like TICKER.REGION (e.g. 700.HK), got %q", s),
				})
			}
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return items, nil

	case TypeDate:
		s, ok := raw.(string)
		if !ok {
			return nil, issue("must be a string")
		}
		d, err := ParseDate(s)
		if err != nil {
			return nil, issue("%s", err.Error())
		}
		return d, nil

	case TypeTime:
		s, ok := raw.(string)
		if !ok {
			return nil, issue("must be a string")
		}
		t, err := ParseTime(s)
		if err != nil {
			return nil, issue("%s", err.Error())
		}
		return t, nil

	case TypeEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, issue("must be a string")
		}
		if !contains(f.Enum, s) {
			return nil, issue("must be one of: %s", strings.Join(f.Enum, ", "))
		}
		return s, nil

	case TypeEnumList:
		items, ok := asStringSlice(raw)
		if !ok {
			return nil, issue("must be an array of strings")
		}
		if f.Max > 0 && len(items) > f.Max {
			return nil, issue("at most %d entries allowed, got %d", f.Max, len(items))
		}
		var issues []FieldIssue
		for i, s := range items {
			if !contains(f.Enum, s) {
				issues = append(issues, FieldIssue{
					Path:    fmt.Sprintf("%s[%d]", f.Name, i),
					Message: fmt.Sprintf("must be one of: %s", strings.Join(f.Enum, ", ")),
				})
			}
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return items, nil

	default:
		return nil, issue("unsupported field type %q", f.Type)
	}
}

// asInt accepts the integer encodings a JSON decoder may hand us.
func asInt(raw interface{}) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func contains(allowed []string, s string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func asStringSlice(raw interface{}) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// Schema renders the spec as JSON-schema properties plus the required
// name list, for the MCP tool catalog.
func (s Spec) Schema() (map[string]interface{}, []string) {
	properties := make(map[string]interface{}, len(s.Fields))
	var required []string
	for _, f := range s.Fields {
		p := map[string]interface{}{
			"description": f.Description,
		}
		switch f.Type {
		case TypeInt:
			p["type"] = "integer"
			if f.Max > 0 {
				p["minimum"] = f.Min
				p["maximum"] = f.Max
			}
		case TypeSymbolList:
			p["type"] = "array"
			p["items"] = map[string]interface{}{"type": "string"}
			max := f.Max
			if max == 0 {
				max = MaxSymbols
			}
			p["maxItems"] = max
		case TypeEnum:
			p["type"] = "string"
			p["enum"] = f.Enum
		case TypeEnumList:
			p["type"] = "array"
			p["items"] = map[string]interface{}{"type": "string", "enum": f.Enum}
			if f.Max > 0 {
				p["maxItems"] = f.Max
			}
		case TypeDate:
			p["type"] = "string"
			p["pattern"] = `^\d{8}$`
		case TypeTime:
			p["type"] = "string"
			p["pattern"] = `^\d{4}(\d{2})?$`
		case TypeSymbol:
			p["type"] = "string"
			p["pattern"] = symbolPattern.String()
		default:
			p["type"] = "string"
		}
		if f.Default != nil {
			p["default"] = f.Default
		}
		properties[f.Name] = p
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return properties, required
}
