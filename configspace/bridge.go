package configspace

import "fmt"

// VectorToConfiguration decodes a dense [0,1]^D vector into a Configuration,
// following declaration order for the vector's coordinates. See §4.2 for the
// per-kind decode rule; this just dispatches through Hyperparameter.Decode
// and then removes parameters whose condition fails.
func (cs *ConfigurationSpace) VectorToConfiguration(vector []float64) Configuration {
	if len(vector) != len(cs.params) {
		panic(fmt.Sprintf("configspace: vector has %d coordinates, space has %d dimensions", len(vector), len(cs.params)))
	}
	full := cs.DefaultConfiguration()
	for i, p := range cs.params {
		full[p.Name()] = p.Decode(vector[i])
	}
	return cs.DeactivateInactive(full)
}

// ConfigurationToVector encodes a Configuration back into a dense vector.
// Inactive parameters are imputed to their default before encoding, so the
// vector always has full dimensionality D.
func (cs *ConfigurationSpace) ConfigurationToVector(cfg Configuration) []float64 {
	full := cs.ImputeInactive(cfg)
	vector := make([]float64, len(cs.params))
	for i, p := range cs.params {
		vector[i] = p.Encode(full[p.Name()])
	}
	return vector
}
