package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixo-go/mixo/internal/object"
)

type animal struct {
	Name   string `mixo:"name"`
	Legs   int
	Hidden string `mixo:"-"`
	secret string
}

func TestFromStruct(t *testing.T) {
	src := animal{Name: "rex", Legs: 4, Hidden: "x", secret: "y"}

	obj := object.FromStruct(src)
	require.NotNil(t, obj)

	assert.Equal(t, object.Object{"name": "rex", "Legs": 4}, obj)
}

func TestFromStruct_Pointer(t *testing.T) {
	src := &animal{Name: "rex"}

	obj := object.FromStruct(src)
	require.NotNil(t, obj)
	assert.Equal(t, "rex", obj["name"])
}

func TestFromStruct_NilPointer(t *testing.T) {
	var src *animal
	assert.Nil(t, object.FromStruct(src))
}

func TestFromStruct_NotAStruct(t *testing.T) {
	assert.Nil(t, object.FromStruct(42))
	assert.Nil(t, object.FromStruct("nope"))
	assert.Nil(t, object.FromStruct(nil))
}

func TestFromStruct_TagWithOptions(t *testing.T) {
	type tagged struct {
		Field string `mixo:"renamed,omitempty"`
	}

	obj := object.FromStruct(tagged{Field: "v"})
	assert.Equal(t, object.Object{"renamed": "v"}, obj)
}
