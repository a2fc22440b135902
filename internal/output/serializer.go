package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/mixo-go/mixo/internal/object"
)

// SerializeOptions configures the canonical serializer.
type SerializeOptions struct {
	// StripNulls removes properties whose value is nil from the output.
	StripNulls bool
	// Indent is the JSON indent string (default: two spaces).
	Indent string
}

// DefaultSerializeOptions returns sensible defaults.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{
		StripNulls: true,
		Indent:     "  ",
	}
}

// Serialize converts a composed object to canonical YAML bytes with
// deterministic key ordering.
func Serialize(obj object.Object, opts SerializeOptions) ([]byte, error) {
	out := map[string]any(obj)
	if opts.StripNulls {
		out = deepCleanMap(out)
	}

	// sigs.k8s.io/yaml sorts map keys alphabetically.
	yamlBytes, err := sigsyaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("serializing YAML: %w", err)
	}

	yamlBytes = stripNullFields(yamlBytes)

	if len(yamlBytes) > 0 && yamlBytes[len(yamlBytes)-1] != '\n' {
		yamlBytes = append(yamlBytes, '\n')
	}

	return yamlBytes, nil
}

// SerializeJSON converts a composed object to indented JSON bytes.
func SerializeJSON(obj object.Object, opts SerializeOptions) ([]byte, error) {
	if opts.Indent == "" {
		opts.Indent = "  "
	}

	out := map[string]any(obj)
	if opts.StripNulls {
		out = deepCleanMap(out)
	}

	yamlBytes, err := sigsyaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("serializing intermediate YAML: %w", err)
	}

	jsonOut, err := sigsyaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, jsonOut, "", opts.Indent); err != nil {
		return nil, fmt.Errorf("formatting JSON: %w", err)
	}

	b := buf.Bytes()

	if len(b) > 0 && b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}

	return b, nil
}

// deepCleanMap recursively removes nil values and empty maps so the
// serialized form stays minimal.
func deepCleanMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))

	for k, v := range m {
		cleaned := deepCleanValue(v)
		if cleaned != nil {
			result[k] = cleaned
		}
	}

	return result
}

// deepCleanValue cleans a single value recursively.
func deepCleanValue(v any) any {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case map[string]any:
		cleaned := deepCleanMap(val)
		if len(cleaned) == 0 {
			return nil
		}

		return cleaned
	case []any:
		result := make([]any, 0, len(val))
		for _, item := range val {
			cleaned := deepCleanValue(item)
			if cleaned != nil {
				result = append(result, cleaned)
			}
		}

		return result
	default:
		// Function-valued properties (delegated methods) have no
		// serialized form.
		if reflect.ValueOf(v).Kind() == reflect.Func {
			return nil
		}

		return v
	}
}

// stripNullRegex matches YAML lines containing `: null`.
var stripNullRegex = regexp.MustCompile(`(?m)^\s*\w[^:]*:\s+null\s*\n`)

// stripNullFields removes lines containing `: null` from YAML output.
func stripNullFields(yamlBytes []byte) []byte {
	return stripNullRegex.ReplaceAll(yamlBytes, nil)
}
