package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCompare(t *testing.T) {
	dataSet := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "a", -1},
		{"a", "", 1},
		{"api", "api.foo", -1},
		{"api.foo", "api.foe", 1},
		{"elect", "elect", 0},
	}

	for _, d := range dataSet {
		assert.Equal(t, d.expected, Key(d.a).Compare(Key(d.b)), "%q vs %q", d.a, d.b)
	}
}

func TestKeyClone(t *testing.T) {
	k := Key("api.foo")
	c := k.Clone()
	assert.Equal(t, k, c)

	c[0] = 'A'
	assert.Equal(t, "api.foo", k.String())
	assert.Equal(t, "Api.foo", c.String())

	assert.Equal(t, 0, Key(nil).Clone().Compare(Key{}))
}

func TestOrdered(t *testing.T) {
	assert.Equal(t, -1, Of(1).Compare(Of(2)))
	assert.Equal(t, 0, Of(2).Compare(Of(2)))
	assert.Equal(t, 1, Of(3).Compare(Of(2)))
	assert.Equal(t, "42", Of(42).String())
	assert.Equal(t, "2.5", Of(2.5).String())
	assert.Equal(t, "b", Of("b").String())
	assert.Equal(t, -1, Of("a").Compare(Of("b")))
}
