package event

import (
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/apothek/sagacore/pkg/errmodel"
)

// Kind names the payload field types the rule library understands.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindArray   Kind = "array"
)

// Rule is one payload constraint. Each event constructor passes the subset of
// rules relevant to its schema; the rules compile to a JSON Schema document
// and are checked before the event value exists.
type Rule func(doc map[string]any)

// Required marks fields that must be present in the payload.
func Required(fields ...string) Rule {
	return func(doc map[string]any) {
		req, _ := doc["required"].([]any)
		for _, f := range fields {
			req = append(req, f)
		}
		doc["required"] = req
	}
}

// Type constrains a field to a payload kind.
func Type(field string, kind Kind) Rule {
	return func(doc map[string]any) {
		prop(doc, field)["type"] = string(kind)
	}
}

// Range constrains a numeric field to [min, max].
func Range(field string, min, max float64) Rule {
	return func(doc map[string]any) {
		p := prop(doc, field)
		p["minimum"] = min
		p["maximum"] = max
	}
}

// Enum constrains a field to one of the allowed values.
func Enum(field string, allowed ...any) Rule {
	return func(doc map[string]any) {
		prop(doc, field)["enum"] = allowed
	}
}

func prop(doc map[string]any, field string) map[string]any {
	props, _ := doc["properties"].(map[string]any)
	if props == nil {
		props = map[string]any{}
		doc["properties"] = props
	}
	p, _ := props[field].(map[string]any)
	if p == nil {
		p = map[string]any{}
		props[field] = p
	}
	return p
}

// ValidatePayload checks the payload against the given rules. The rules build
// an anonymous in-memory JSON Schema compiled with jsonschema/v6.
func ValidatePayload(payload map[string]any, rules ...Rule) error {
	doc := map[string]any{"type": "object"}
	for _, r := range rules {
		r(doc)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("mem://payload.json", normalize(doc)); err != nil {
		return errmodel.System("bad_rule_schema", "payload rules produced an invalid schema", nil, err)
	}
	sch, err := c.Compile("mem://payload.json")
	if err != nil {
		return errmodel.System("bad_rule_schema", "payload rules produced an invalid schema", nil, err)
	}
	if err := sch.Validate(normalize(payload)); err != nil {
		return errmodel.Validation("invalid_payload", "event payload validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// normalize round-trips a value through JSON so numbers and nested maps take
// the generic form the validator expects.
func normalize(v any) any {
	b, _ := json.Marshal(v)
	var out any
	_ = json.Unmarshal(b, &out)
	return out
}
