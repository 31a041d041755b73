package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrPanic(t *testing.T) {
	assert.Equal(t, "http://restart:8080", StrPanic("http://restart:8080", "url is required"))
	assert.PanicsWithValue(t, "url is required", func() {
		StrPanic("", "url is required")
	})
}

func TestNilPanic(t *testing.T) {
	type collaborator struct{}

	t.Run("non-nil pointer returned", func(t *testing.T) {
		c := &collaborator{}
		assert.Same(t, c, NilPanic(c, "collaborator is required"))
	})
	t.Run("non-pointer value returned", func(t *testing.T) {
		assert.Equal(t, 5, NilPanic(5, "never"))
	})
	t.Run("typed nil pointer panics", func(t *testing.T) {
		var c *collaborator
		assert.PanicsWithValue(t, "collaborator is required", func() {
			NilPanic(c, "collaborator is required")
		})
	})
	t.Run("nil func panics", func(t *testing.T) {
		var f func()
		assert.PanicsWithValue(t, "func is required", func() {
			NilPanic(f, "func is required")
		})
	})
	t.Run("nil interface panics", func(t *testing.T) {
		var err error
		assert.PanicsWithValue(t, "err is required", func() {
			NilPanic(err, "err is required")
		})
	})
}
