package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue(t *testing.T) {
	scalar := Scalar(14)
	assert.True(t, scalar.IsScalar())
	assert.Equal(t, 1, scalar.Len())
	assert.Equal(t, []float64{14}, scalar.Floats())

	seq := Sequence(14, 21)
	assert.False(t, seq.IsScalar())
	assert.Equal(t, 2, seq.Len())

	values := seq.Values()
	values[0] = 99
	assert.Equal(t, []any{14, 21}, seq.Values())
}

func TestValue_YAML(t *testing.T) {
	var doc struct {
		Period Value `yaml:"period"`
		Colors Value `yaml:"colors"`
	}
	err := yaml.Unmarshal([]byte("period: 14\ncolors: [red, blue]\n"), &doc)
	require.NoError(t, err)

	assert.True(t, doc.Period.IsScalar())
	assert.Equal(t, []float64{14}, doc.Period.Floats())
	assert.Equal(t, []any{"red", "blue"}, doc.Colors.Values())

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "period: 14\ncolors:\n    - red\n    - blue\n", string(out))

	t.Run("mapping is rejected", func(t *testing.T) {
		var v Value
		err := yaml.Unmarshal([]byte("a: 1"), &v)
		assert.Error(t, err)
	})
}
