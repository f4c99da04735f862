package configspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadraticSpace() *ConfigurationSpace {
	return New(int64(0), NewUniformFloat("x", -5, 5))
}

func mixedSpace() *ConfigurationSpace {
	return New(int64(1),
		NewUniformFloat("lr", 1e-4, 1.0, WithLogScale()),
		NewUniformInteger("depth", 1, 10),
		NewCategorical("kernel", []any{"a", "b", "c"}),
		NewConstant("answer", 42),
		NewOrdinal("batch", []any{1, 2, 4, 8}),
	)
}

func TestRoundTrip(t *testing.T) {
	cs := mixedSpace()
	for i := 0; i < 10; i++ {
		cfg := cs.Sample()
		vec := cs.ConfigurationToVector(cfg)
		decoded := cs.VectorToConfiguration(vec)

		for name, want := range cfg {
			got, ok := decoded[name]
			require.True(t, ok, "parameter %q missing after round trip", name)
			if f, isFloat := want.(float64); isFloat {
				assert.InDelta(t, f, got, 1e-9)
			} else {
				assert.Equal(t, want, got)
			}
		}
	}
}

func TestEncodeRangeIsUnitInterval(t *testing.T) {
	cs := mixedSpace()
	for i := 0; i < 20; i++ {
		vec := cs.ConfigurationToVector(cs.Sample())
		for _, code := range vec {
			assert.GreaterOrEqual(t, code, 0.0)
			assert.LessOrEqual(t, code, 1.0)
		}
	}
}

func TestConstantAlwaysEncodesToZero(t *testing.T) {
	cs := mixedSpace()
	cfg := cs.Sample()
	cfg["answer"] = 42
	vec := cs.ConfigurationToVector(cfg)
	assert.Equal(t, 0.0, vec[3])
}

func TestQuadraticSingleDimension(t *testing.T) {
	cs := quadraticSpace()
	cfg := cs.VectorToConfiguration([]float64{0.5})
	assert.InDelta(t, 0.0, cfg["x"].(float64), 1e-9)
}
