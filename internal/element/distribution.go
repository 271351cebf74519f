package element

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistributionKind selects the family of a Distribution.
type DistributionKind int

// Supported distribution families.
const (
	Standard DistributionKind = iota // Uniform on [0, 1).
	Uniform
	Normal
	Bernoulli
)

// Distribution describes how random element values are drawn.
//
// Parameters are interpreted per kind:
//   - Uniform: [A, B)
//   - Normal: mean A, standard deviation B
//   - Bernoulli: success probability A
type Distribution struct {
	Kind DistributionKind
	A, B float64
}

// StandardDistribution returns the uniform [0, 1) distribution.
func StandardDistribution() Distribution {
	return Distribution{Kind: Standard}
}

// UniformDistribution returns the uniform [low, high) distribution.
func UniformDistribution(low, high float64) Distribution {
	return Distribution{Kind: Uniform, A: low, B: high}
}

// NormalDistribution returns the normal distribution with the given mean and standard deviation.
func NormalDistribution(mean, std float64) Distribution {
	return Distribution{Kind: Normal, A: mean, B: std}
}

// BernoulliDistribution returns a {0, 1} distribution with P(1) = p.
func BernoulliDistribution(p float64) Distribution {
	return Distribution{Kind: Bernoulli, A: p}
}

// Sampler returns a function drawing float64 samples from d using src.
// Panics on invalid parameters.
func (d Distribution) Sampler(src rand.Source) func() float64 {
	switch d.Kind {
	case Standard:
		u := distuv.Uniform{Min: 0, Max: 1, Src: src}
		return u.Rand
	case Uniform:
		if !(d.A < d.B) {
			panic(fmt.Sprintf("element: uniform distribution needs low < high, got [%g, %g)", d.A, d.B))
		}
		u := distuv.Uniform{Min: d.A, Max: d.B, Src: src}
		return u.Rand
	case Normal:
		if d.B <= 0 {
			panic(fmt.Sprintf("element: normal distribution needs std > 0, got %g", d.B))
		}
		n := distuv.Normal{Mu: d.A, Sigma: d.B, Src: src}
		return n.Rand
	case Bernoulli:
		if d.A < 0 || d.A > 1 {
			panic(fmt.Sprintf("element: bernoulli probability must be in [0, 1], got %g", d.A))
		}
		b := distuv.Bernoulli{P: d.A, Src: src}
		return b.Rand
	default:
		panic(fmt.Sprintf("element: unknown distribution kind %d", d.Kind))
	}
}

// Sample draws a single value of type E from d.
func Sample[E Element](d Distribution, src rand.Source) E {
	return FromFloat64[E](d.Sampler(src)())
}
