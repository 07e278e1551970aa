package api

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/banachtech/nss-curve/curve"
	"github.com/gin-gonic/gin"
)

// Either maturities and yields to fit, or beta and tau to evaluate as given.
type interpolateRequest struct {
	Maturities []float64 `json:"maturities" binding:"omitempty,dive,gt=0"`
	Yields     []float64 `json:"yields"`
	Beta       []float64 `json:"beta"`
	Tau        []float64 `json:"tau"`
	Targets    []float64 `json:"targets" binding:"required,min=1,dive,gt=0"`
}

type interpolateResponse struct {
	Targets []float64         `json:"targets"`
	Yields  []float64         `json:"yields"`
	Fit     *curve.FitSummary `json:"fit,omitempty"`
}

var errNonFinite = errors.New("model produced non-finite yields")

func (server *Server) interpolate(c *gin.Context) {
	var req interpolateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var summary *curve.FitSummary
	var model curve.Curve
	if len(req.Maturities) > 0 || len(req.Yields) > 0 {
		model = server.newCurve(nil, nil)
		if err := model.Fit(req.Maturities, req.Yields); err != nil {
			if errors.Is(err, curve.ErrLengthMismatch) {
				c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
		s := model.LastFit()
		if finite(s.Residual) {
			summary = &s
		}
	} else {
		model = server.newCurve(req.Beta, req.Tau)
	}

	yields, err := model.Interpolate(req.Targets)
	if err != nil {
		if errors.Is(err, curve.ErrInvalidParams) {
			log.Println(err)
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(err))
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	for _, y := range yields {
		if !finite(y) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(errNonFinite))
			return
		}
	}

	c.JSON(http.StatusOK, interpolateResponse{Targets: req.Targets, Yields: yields, Fit: summary})
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
