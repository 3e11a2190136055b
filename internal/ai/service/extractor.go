package service

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
)

// JSONExtractor implements Extractor with a permissive substring scan.
//
// Models routinely wrap their answer in prose or markdown code fences, so a
// strict JSON-only parse would reject many usable replies. The extractor
// greedily matches the outermost brace pair that contains every required key
// in order, then parses that substring as JSON. This is a best-effort
// heuristic, not a strict contract.
type JSONExtractor struct{}

// NewJSONExtractor creates a JSONExtractor.
func NewJSONExtractor() *JSONExtractor {
	return &JSONExtractor{}
}

// Extract locates the JSON object containing all required keys.
//
// Fails with ErrResponseParse when no candidate substring exists or the
// candidate is not valid JSON.
func (e *JSONExtractor) Extract(raw string, requiredKeys []string) (map[string]any, error) {
	pattern := strings.Builder{}
	pattern.WriteString(`\{[\s\S]*`)
	for _, key := range requiredKeys {
		pattern.WriteString(regexp.QuoteMeta(`"` + key + `"`))
		pattern.WriteString(`[\s\S]*`)
	}
	pattern.WriteString(`\}`)

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("%w: bad key set: %v", aiDomain.ErrResponseParse, err)
	}

	candidate := re.FindString(raw)
	if candidate == "" {
		return nil, fmt.Errorf(
			"%w: no JSON object with keys %v found", aiDomain.ErrResponseParse, requiredKeys,
		)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", aiDomain.ErrResponseParse, err)
	}
	return obj, nil
}

// IntField coerces a field to an integer via rounding.
//
// Fails with ErrResponseParse when the field is absent or not numeric; a
// failed coercion invalidates the whole parse rather than substituting a
// partial value.
func IntField(obj map[string]any, key string) (int, error) {
	value, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", aiDomain.ErrResponseParse, key)
	}
	num, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: field %q is not numeric", aiDomain.ErrResponseParse, key)
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, fmt.Errorf("%w: field %q is not a finite number", aiDomain.ErrResponseParse, key)
	}
	return int(math.Round(num)), nil
}

// StringField coerces a field to a string.
//
// Non-string scalars are converted via their default formatting, mirroring
// loose string coercion; absent fields fail the parse.
func StringField(obj map[string]any, key string) (string, error) {
	value, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", aiDomain.ErrResponseParse, key)
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		return "", fmt.Errorf("%w: field %q is not a string", aiDomain.ErrResponseParse, key)
	}
}
