package curve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NParams is the length of an NSS parameter vector: four betas followed by two taus.
const NParams = 6

var (
	ErrInvalidParams  = errors.New("Fit the function or provide valid set of hyperparameters")
	ErrLengthMismatch = errors.New("maturities and yields must have the same length")
)

// Define NSS model. Parameters are stored as [b0, b1, b2, b3, tau0, tau1].
// A model is owned by a single goroutine; fit independent curves with independent models.
type NSS struct {
	params   []float64
	settings Settings
	last     FitSummary
}

// Constructor for NSS model. beta and tau are concatenated as given, nothing is validated.
func New(beta, tau []float64) *NSS {
	p := make([]float64, 0, len(beta)+len(tau))
	p = append(p, beta...)
	p = append(p, tau...)
	return &NSS{params: p, settings: DefaultSettings()}
}

// Compute the model yield at maturity m. params must hold at least NParams values.
// m = 0 yields NaN.
func Yield(params []float64, m float64) float64 {
	b0, b1, b2, b3 := params[0], params[1], params[2], params[3]
	t0, t1 := params[4], params[5]
	e0 := math.Exp(-m / t0)
	e1 := math.Exp(-m / t1)
	h0 := (t0 / m) * (1 - e0)
	h1 := (t1 / m) * (1 - e1)

	y := b0
	y += b1 * h0
	y += b2 * h0
	y -= b2 * e0
	y += b3 * h1
	y -= b3 * e1
	return y
}

// Evaluate the yield function elementwise over maturities.
func Evaluate(params, maturities []float64) []float64 {
	out := make([]float64, len(maturities))
	for i, m := range maturities {
		out[i] = Yield(params, m)
	}
	return out
}

// Sum of squared differences between yields and the model yields at maturities.
// maturities and yields must have the same length.
func SumSquaredResidual(params, maturities, yields []float64) float64 {
	r := Evaluate(params, maturities)
	floats.SubTo(r, yields, r)
	return floats.Dot(r, r)
}

// Fit the model to the observed yields. The optimizer always starts from a
// vector of ones; the parameters set at construction are discarded.
func (n *NSS) Fit(maturities, yields []float64) error {
	if len(maturities) != len(yields) {
		return ErrLengthMismatch
	}
	x0 := make([]float64, NParams)
	for i := range x0 {
		x0[i] = 1.0
	}
	settings := n.settings
	if settings == (Settings{}) {
		settings = DefaultSettings()
	}
	x, summary, err := minimize(func(p []float64) float64 {
		return SumSquaredResidual(p, maturities, yields)
	}, x0, settings)
	if err != nil {
		return err
	}
	n.params = x
	n.last = summary
	return nil
}

// Interpolate yields at the given maturities. A model without a full parameter
// vector returns ErrInvalidParams and no values.
func (n *NSS) Interpolate(maturities []float64) ([]float64, error) {
	if len(n.params) < NParams {
		return nil, ErrInvalidParams
	}
	return Evaluate(n.params, maturities), nil
}

// Interpolate the yield at a single maturity.
func (n *NSS) InterpolateAt(m float64) (float64, error) {
	y, err := n.Interpolate([]float64{m})
	if err != nil {
		return math.NaN(), err
	}
	return y[0], nil
}

// Get a copy of the parameter vector.
func (n *NSS) Params() []float64 {
	return append([]float64(nil), n.params...)
}

// Beta coefficients, nil if the model holds fewer than NParams values.
func (n *NSS) Beta() []float64 {
	if len(n.params) < NParams {
		return nil
	}
	return append([]float64(nil), n.params[:4]...)
}

// Tau decay constants, nil if the model holds fewer than NParams values.
func (n *NSS) Tau() []float64 {
	if len(n.params) < NParams {
		return nil
	}
	return append([]float64(nil), n.params[4:NParams]...)
}

// Summary of the most recent Fit. Zero before the first fit.
func (n *NSS) LastFit() FitSummary {
	return n.last
}

// Replace the optimizer settings used by subsequent fits.
func (n *NSS) SetSettings(s Settings) {
	n.settings = s
}
