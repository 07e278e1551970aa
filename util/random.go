package util

import (
	"sort"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var src = rand.NewSource(uint64(time.Now().UnixNano()))

// RandomFloat draws a float uniformly from [min, max)
func RandomFloat(min, max float64) float64 {
	d := distuv.Uniform{Min: min, Max: max, Src: src}
	return d.Rand()
}

// RandomBeta generates four beta coefficients around typical yield levels
func RandomBeta() []float64 {
	d := distuv.Normal{Mu: 0.0, Sigma: 0.05, Src: src}
	b := make([]float64, 4)
	for i := range b {
		b[i] = d.Rand()
	}
	return b
}

// RandomTau generates two strictly positive decay constants
func RandomTau() []float64 {
	return []float64{RandomFloat(0.1, 10.0), RandomFloat(0.1, 10.0)}
}

// RandomMaturities generates n sorted maturities in years, all > 0
func RandomMaturities(n int) []float64 {
	m := make([]float64, n)
	for i := range m {
		m[i] = RandomFloat(0.05, 40.0)
	}
	sort.Float64s(m)
	return m
}
