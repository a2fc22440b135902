package yamlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocuments_Multi(t *testing.T) {
	data := []byte("a: 1\n---\nb: two\nnested:\n  c: 3\n")

	docs, err := DecodeDocuments(data)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, map[string]any{"a": 1}, docs[0])
	assert.Equal(t, map[string]any{
		"b":      "two",
		"nested": map[string]any{"c": 3},
	}, docs[1])
}

func TestDecodeDocuments_SkipsEmpty(t *testing.T) {
	docs, err := DecodeDocuments([]byte("a: 1\n---\n---\nb: 2\n"))
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDecodeDocuments_NonMapping(t *testing.T) {
	_, err := DecodeDocuments([]byte("- just\n- a\n- list\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a mapping")
}

func TestDecodeDocuments_Malformed(t *testing.T) {
	_, err := DecodeDocuments([]byte("a: [unclosed\n"))
	assert.Error(t, err)
}

func TestNormalize_StringifiesKeys(t *testing.T) {
	v := Normalize(map[any]any{1: "one", "k": []any{map[any]any{true: "t"}}})

	assert.Equal(t, map[string]any{
		"1": "one",
		"k": []any{map[string]any{"true": "t"}},
	}, v)
}
