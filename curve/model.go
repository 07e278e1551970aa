package curve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// Curve interface to be satisfied by yield curve model types.
type Curve interface {
	//Fit the curve to observed maturities and yields
	Fit([]float64, []float64) error
	//Compute yields at the given maturities
	Interpolate([]float64) ([]float64, error)
	//Compute the yield at a single maturity
	InterpolateAt(float64) (float64, error)
	//Get the model parameters
	Params() []float64
	//Summary of the last fit
	LastFit() FitSummary
}

var _ Curve = (*NSS)(nil)

// Settings control the L-BFGS run behind Fit.
type Settings struct {
	MajorIterations   int
	GradientThreshold float64

	// Converger stops the run once F improves by less than ConvergeAbsolute
	// over ConvergeIterations major iterations.
	ConvergeAbsolute   float64
	ConvergeIterations int
}

func DefaultSettings() Settings {
	return Settings{
		MajorIterations:    1000,
		GradientThreshold:  1e-12,
		ConvergeAbsolute:   1e-14,
		ConvergeIterations: 200,
	}
}

// FitSummary records what the optimizer reported for the last fit.
type FitSummary struct {
	Status          string  `json:"status"`
	Iterations      int     `json:"iterations"`
	FuncEvaluations int     `json:"func_evaluations"`
	Residual        float64 `json:"residual"`
}

// Minimize f from x0 with L-BFGS and a central-difference gradient. The best
// location found is returned whatever the termination status; only a run that
// produced no location is an error. When no evaluated point beat +Inf (a NaN
// objective at x0), x0 itself is returned with its own objective value.
func minimize(f func([]float64) float64, x0 []float64, s Settings) ([]float64, FitSummary, error) {
	problem := optimize.Problem{
		Func: f,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, f, x, &fd.Settings{Formula: fd.Central})
		},
	}
	settings := &optimize.Settings{
		MajorIterations:   s.MajorIterations,
		GradientThreshold: s.GradientThreshold,
		Converger: &optimize.FunctionConverge{
			Absolute:   s.ConvergeAbsolute,
			Iterations: s.ConvergeIterations,
		},
	}
	res, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if res == nil {
		if err == nil {
			err = errors.New("optimizer returned no result")
		}
		return nil, FitSummary{}, err
	}
	x, residual := res.X, res.F
	if math.IsInf(residual, 1) {
		x, residual = x0, f(x0)
	}
	summary := FitSummary{
		Status:          res.Status.String(),
		Iterations:      res.Stats.MajorIterations,
		FuncEvaluations: res.Stats.FuncEvaluations,
		Residual:        residual,
	}
	return append([]float64(nil), x...), summary, nil
}
