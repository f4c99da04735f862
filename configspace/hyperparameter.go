// Package configspace implements the typed hyperparameter search space and
// its bidirectional mapping to the dense [0,1]^D vectors the DE kernel
// operates on.
package configspace

import (
	"fmt"
	"math"
)

// Hyperparameter is the closed set of parameter kinds a ConfigurationSpace
// can hold. Decode(Encode(v)) recovers every legal value v; Encode(Decode(u))
// returns u only for UniformFloat, since the discrete kinds bucket codes.
type Hyperparameter interface {
	Name() string
	Default() any
	// Decode maps a code in [0,1] to a typed value.
	Decode(code float64) any
	// Encode maps a typed value back to its code in [0,1].
	Encode(value any) float64
}

// UniformFloat is a continuous parameter sampled linearly, or log-uniformly
// when Log is set, over [Lower, Upper].
type UniformFloat struct {
	name         string
	Lower, Upper float64
	Log          bool
	DefaultValue float64
}

func NewUniformFloat(name string, lower, upper float64, opts ...FloatOption) *UniformFloat {
	hp := &UniformFloat{name: name, Lower: lower, Upper: upper, DefaultValue: lower + (upper-lower)/2}
	for _, o := range opts {
		o(hp)
	}
	return hp
}

// FloatOption configures a UniformFloat at construction time.
type FloatOption func(*UniformFloat)

func WithLogScale() FloatOption { return func(hp *UniformFloat) { hp.Log = true } }

func WithFloatDefault(v float64) FloatOption {
	return func(hp *UniformFloat) { hp.DefaultValue = v }
}

func (h *UniformFloat) Name() string   { return h.name }
func (h *UniformFloat) Default() any   { return h.DefaultValue }

func (h *UniformFloat) Decode(code float64) any {
	if h.Log {
		return h.Lower * math.Pow(h.Upper/h.Lower, code)
	}
	return h.Lower + (h.Upper-h.Lower)*code
}

func (h *UniformFloat) Encode(value any) float64 {
	v := asFloat(value)
	if h.Log {
		return math.Log(v/h.Lower) / math.Log(h.Upper/h.Lower)
	}
	return (v - h.Lower) / (h.Upper - h.Lower)
}

// UniformInteger is a discrete parameter over [Lower, Upper], inclusive,
// encoded via the same continuous mapping as UniformFloat then rounded.
type UniformInteger struct {
	name         string
	Lower, Upper int
	Log          bool
	DefaultValue int
}

func NewUniformInteger(name string, lower, upper int, opts ...IntOption) *UniformInteger {
	hp := &UniformInteger{name: name, Lower: lower, Upper: upper, DefaultValue: lower + (upper-lower)/2}
	for _, o := range opts {
		o(hp)
	}
	return hp
}

type IntOption func(*UniformInteger)

func WithIntLogScale() IntOption { return func(hp *UniformInteger) { hp.Log = true } }

func WithIntDefault(v int) IntOption {
	return func(hp *UniformInteger) { hp.DefaultValue = v }
}

func (h *UniformInteger) Name() string { return h.name }
func (h *UniformInteger) Default() any { return h.DefaultValue }

func (h *UniformInteger) Decode(code float64) any {
	lower, upper := float64(h.Lower), float64(h.Upper)
	var v float64
	if h.Log {
		v = lower * math.Pow(upper/lower, code)
	} else {
		v = lower + (upper-lower)*code
	}
	return int(math.Round(v))
}

func (h *UniformInteger) Encode(value any) float64 {
	v := float64(asInt(value))
	lower, upper := float64(h.Lower), float64(h.Upper)
	if h.Log {
		return math.Log(v/lower) / math.Log(upper/lower)
	}
	return (v - lower) / (upper - lower)
}

// Ordinal is a totally ordered finite sequence of values, e.g. batch sizes.
type Ordinal struct {
	name     string
	Sequence     []any
	defaultValue any
}

func NewOrdinal(name string, sequence []any) *Ordinal {
	return &Ordinal{name: name, Sequence: sequence, defaultValue: sequence[len(sequence)/2]}
}

func (h *Ordinal) Name() string { return h.name }
func (h *Ordinal) Default() any { return h.defaultValue }

func (h *Ordinal) Decode(code float64) any {
	return h.Sequence[clampIndex(code, len(h.Sequence))]
}

func (h *Ordinal) Encode(value any) float64 {
	for i, v := range h.Sequence {
		if v == value {
			return float64(i) / float64(len(h.Sequence))
		}
	}
	panic(fmt.Sprintf("configspace: value %v not in ordinal %q sequence", value, h.name))
}

// Categorical is an unordered finite set of choices.
type Categorical struct {
	name     string
	Choices      []any
	defaultValue any
}

func NewCategorical(name string, choices []any) *Categorical {
	return &Categorical{name: name, Choices: choices, defaultValue: choices[0]}
}

func (h *Categorical) Name() string { return h.name }
func (h *Categorical) Default() any { return h.defaultValue }

func (h *Categorical) Decode(code float64) any {
	return h.Choices[clampIndex(code, len(h.Choices))]
}

func (h *Categorical) Encode(value any) float64 {
	for i, v := range h.Choices {
		if v == value {
			return float64(i) / float64(len(h.Choices))
		}
	}
	panic(fmt.Sprintf("configspace: value %v not in categorical %q choices", value, h.name))
}

// Constant is a fixed, immutable parameter. It always encodes to 0 and is
// never perturbed by mutation.
type Constant struct {
	name  string
	Value any
}

func NewConstant(name string, value any) *Constant { return &Constant{name: name, Value: value} }

func (h *Constant) Name() string          { return h.name }
func (h *Constant) Default() any          { return h.Value }
func (h *Constant) Decode(float64) any     { return h.Value }
func (h *Constant) Encode(any) float64 { return 0 }

// clampIndex maps a code in [0,1) to an index in [0,n) the way the source
// range-bucketing does: floor(code*n), clipped to the last valid index.
func clampIndex(code float64, n int) int {
	idx := int(code * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	default:
		panic(fmt.Sprintf("configspace: value %v is not numeric", v))
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case float64:
		return int(t)
	default:
		panic(fmt.Sprintf("configspace: value %v is not an integer", v))
	}
}
