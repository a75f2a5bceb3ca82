package event

// Payload values arrive either as the Go values a constructor was given or as
// the generic types JSON decoding produces. These helpers coerce both.

// Int reads an integer payload field.
func Int(p map[string]any, key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Float reads a numeric payload field.
func Float(p map[string]any, key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// String reads a string payload field.
func String(p map[string]any, key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}
