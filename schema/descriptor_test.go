package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validators "github.com/mthadley/metal-state-validators"
	"github.com/mthadley/metal-state-validators/schema"
)

func TestParse(t *testing.T) {
	t.Run("scalar shorthand compiles to a primitive", func(t *testing.T) {
		c, err := schema.Parse([]byte(`string`))
		require.NoError(t, err)
		assert.NoError(t, c.Check("hello", "s", nil))
		assert.Error(t, c.Check(5, "s", nil))
	})

	t.Run("arrayOf compiles with an elem descriptor", func(t *testing.T) {
		c, err := schema.Parse([]byte(`
type: arrayOf
elem: number
`))
		require.NoError(t, err)
		assert.NoError(t, c.Check([]any{1, 2, 3}, "items", nil))
		assert.Error(t, c.Check([]any{1, "a"}, "items", nil))
		assert.Error(t, c.Check("not an array", "items", nil))
	})

	t.Run("objectOf compiles with a value descriptor", func(t *testing.T) {
		c, err := schema.Parse([]byte(`
type: objectOf
value: string
`))
		require.NoError(t, err)
		assert.NoError(t, c.Check(map[string]any{"a": "x"}, "labels", nil))
		assert.Error(t, c.Check(map[string]any{"a": 1}, "labels", nil))
	})

	t.Run("oneOfType compiles a shorthand alternative list", func(t *testing.T) {
		c, err := schema.Parse([]byte(`
type: oneOfType
oneOf: [string, number]
`))
		require.NoError(t, err)
		assert.NoError(t, c.Check("x", "id", nil))
		assert.NoError(t, c.Check(5, "id", nil))
		assert.Error(t, c.Check(true, "id", nil))
	})

	t.Run("shapeOf compiles nested descriptors", func(t *testing.T) {
		c, err := schema.Parse([]byte(`
type: shapeOf
fields:
  title: string
  count: number
  tags:
    type: arrayOf
    elem: string
`))
		require.NoError(t, err)

		assert.NoError(t, c.Check(map[string]any{
			"title": "todo",
			"count": 2,
			"tags":  []any{"a", "b"},
		}, "cfg", nil))

		err = c.Check(map[string]any{
			"title": "todo",
			"count": "two",
			"tags":  []any{},
		}, "cfg", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected object with a specific shape")
	})

	t.Run("compiled checkers match hand-built ones", func(t *testing.T) {
		parsed, err := schema.Parse([]byte(`
type: arrayOf
elem:
  type: shapeOf
  fields:
    a: number
`))
		require.NoError(t, err)

		built := validators.ArrayOf(validators.ShapeOf(map[string]validators.Checker{
			"a": validators.Number,
		}))

		value := []any{map[string]any{"a": 1}, map[string]any{"a": 2}}
		bad := []any{map[string]any{"a": "x"}}

		assert.Equal(t, built.Check(value, "items", nil), parsed.Check(value, "items", nil))
		assert.Equal(t, built.Check(bad, "items", nil), parsed.Check(bad, "items", nil))
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := schema.Parse([]byte("type: [unclosed"))
		assert.Error(t, err)
	})
}

func TestCompile(t *testing.T) {
	t.Run("rejects a missing type", func(t *testing.T) {
		_, err := schema.Compile(&schema.Descriptor{})
		assert.ErrorContains(t, err, "missing type")

		_, err = schema.Compile(nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown type names", func(t *testing.T) {
		_, err := schema.Compile(&schema.Descriptor{Type: "integer"})
		assert.ErrorContains(t, err, `unknown type "integer"`)
	})

	t.Run("rejects instanceOf", func(t *testing.T) {
		_, err := schema.Compile(&schema.Descriptor{Type: "instanceOf"})
		assert.ErrorContains(t, err, "instanceOf")
	})

	t.Run("rejects combinators missing their configuration", func(t *testing.T) {
		_, err := schema.Compile(&schema.Descriptor{Type: "arrayOf"})
		assert.ErrorContains(t, err, "arrayOf requires")

		_, err = schema.Compile(&schema.Descriptor{Type: "objectOf"})
		assert.ErrorContains(t, err, "objectOf requires")

		_, err = schema.Compile(&schema.Descriptor{Type: "oneOfType"})
		assert.ErrorContains(t, err, "oneOfType requires")

		_, err = schema.Compile(&schema.Descriptor{Type: "shapeOf"})
		assert.ErrorContains(t, err, "shapeOf requires")
	})

	t.Run("names the failing field on nested errors", func(t *testing.T) {
		_, err := schema.Compile(&schema.Descriptor{
			Type: "shapeOf",
			Fields: map[string]*schema.Descriptor{
				"bad": {Type: "nope"},
			},
		})
		assert.ErrorContains(t, err, `field "bad"`)
		assert.ErrorContains(t, err, `unknown type "nope"`)
	})
}

func TestMustParse(t *testing.T) {
	t.Run("returns the checker for a valid descriptor", func(t *testing.T) {
		c := schema.MustParse([]byte(`number`))
		assert.NoError(t, c.Check(5, "n", nil))
	})

	t.Run("panics on an invalid descriptor", func(t *testing.T) {
		assert.Panics(t, func() {
			schema.MustParse([]byte(`type: instanceOf`))
		})
	})
}
