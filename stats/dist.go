package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// TruncatedNormal samples a normal distribution restricted to [Lo, Hi]. It is
// used to synthesise per-call costs with realistic jitter.
type TruncatedNormal struct {
	Lo    float64
	Hi    float64
	Mu    float64
	Sigma float64
	Src   rand.Source
}

// NewTruncatedNormal seeds the sampler so repeated runs draw the same
// sequence.
func NewTruncatedNormal(lo, hi, mu, sigma float64, seed uint64) *TruncatedNormal {
	return &TruncatedNormal{
		Lo:    lo,
		Hi:    hi,
		Mu:    mu,
		Sigma: sigma,
		Src:   rand.NewSource(seed),
	}
}

func (d *TruncatedNormal) Rand() float64 {
	// Use an inverse transform method to sample from the distribution.
	// Reference: https://www.r-bloggers.com/2020/08/generating-data-from-a-truncated-distribution/
	norm := distuv.Normal{
		Mu:    d.Mu,
		Sigma: d.Sigma,
	}

	a := norm.CDF(d.Lo)
	b := norm.CDF(d.Hi)
	u := distuv.Uniform{
		Min: a,
		Max: b,
		Src: d.Src,
	}.Rand()

	return norm.Quantile(u)
}
