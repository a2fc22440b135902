package yamlutil

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeDocuments decodes a multi-document YAML byte slice into one
// string-keyed map per document, skipping empty documents. Nested maps
// are normalized to map[string]any so the results can be composed
// directly.
func DecodeDocuments(data []byte) ([]map[string]any, error) {
	var docs []map[string]any

	for _, doc := range SplitDocuments(data) {
		var raw any

		if err := yaml.Unmarshal(doc, &raw); err != nil {
			return nil, fmt.Errorf("decoding document %d: %w", len(docs), err)
		}

		if raw == nil {
			continue
		}

		normalized, ok := Normalize(raw).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("document %d is not a mapping", len(docs))
		}

		docs = append(docs, normalized)
	}

	return docs, nil
}

// Normalize converts yaml.v3 decode output into composition-friendly
// values: map[any]any becomes map[string]any (keys stringified), and
// slices are normalized element-wise.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}

		return out

	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = Normalize(item)
		}

		return out

	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}

		return out

	default:
		return v
	}
}
