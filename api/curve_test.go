package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/banachtech/nss-curve/curve"
	mockcurve "github.com/banachtech/nss-curve/curve/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func decodeInterpolate(t *testing.T, recorder *httptest.ResponseRecorder) interpolateResponse {
	var resp interpolateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	var resp map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp["error"]
}

func TestInterpolateAPI(t *testing.T) {
	maturities := []float64{1, 2, 5, 10, 20, 30}
	yields := []float64{0.01, 0.015, 0.02, 0.025, 0.028, 0.03}
	targets := []float64{3, 7}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(m *mockcurve.MockCurve)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64)
	}{
		{
			name: "FIT_OK",
			body: gin.H{"maturities": maturities, "yields": yields, "targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				gomock.InOrder(
					m.EXPECT().Fit(gomock.Eq(maturities), gomock.Eq(yields)).Times(1).Return(nil),
					m.EXPECT().LastFit().Times(1).Return(curve.FitSummary{Status: "GradientThreshold", Iterations: 42, Residual: 1e-7}),
					m.EXPECT().Interpolate(gomock.Eq(targets)).Times(1).Return([]float64{0.018, 0.023}, nil),
				)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Nil(t, beta)
				require.Nil(t, tau)
				resp := decodeInterpolate(t, recorder)
				require.Equal(t, targets, resp.Targets)
				require.Equal(t, []float64{0.018, 0.023}, resp.Yields)
				require.NotNil(t, resp.Fit)
				require.Equal(t, "GradientThreshold", resp.Fit.Status)
				require.Equal(t, 42, resp.Fit.Iterations)
			},
		},
		{
			name: "PARAMS_OK",
			body: gin.H{"beta": []float64{5, 0, 0, 0}, "tau": []float64{1, 1}, "targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Fit(gomock.Any(), gomock.Any()).Times(0)
				m.EXPECT().Interpolate(gomock.Eq(targets)).Times(1).Return([]float64{5, 5}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Equal(t, []float64{5, 0, 0, 0}, beta)
				require.Equal(t, []float64{1, 1}, tau)
				resp := decodeInterpolate(t, recorder)
				require.Equal(t, []float64{5, 5}, resp.Yields)
				require.Nil(t, resp.Fit)
			},
		},
		{
			name: "INVALID_PARAMS",
			body: gin.H{"targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Interpolate(gomock.Eq(targets)).Times(1).Return(nil, curve.ErrInvalidParams)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
				require.Equal(t, curve.ErrInvalidParams.Error(), decodeError(t, recorder))
			},
		},
		{
			name: "LENGTH_MISMATCH",
			body: gin.H{"maturities": maturities, "yields": yields[:3], "targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Fit(gomock.Eq(maturities), gomock.Eq(yields[:3])).Times(1).Return(curve.ErrLengthMismatch)
				m.EXPECT().Interpolate(gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Equal(t, curve.ErrLengthMismatch.Error(), decodeError(t, recorder))
			},
		},
		{
			name: "FIT_ERROR",
			body: gin.H{"maturities": maturities, "yields": yields, "targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Fit(gomock.Any(), gomock.Any()).Times(1).Return(errors.New("optimizer returned no result"))
				m.EXPECT().Interpolate(gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "NON_FINITE_RESIDUAL",
			body: gin.H{"maturities": maturities, "yields": yields, "targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Fit(gomock.Any(), gomock.Any()).Times(1).Return(nil)
				m.EXPECT().LastFit().Times(1).Return(curve.FitSummary{Status: "Failure", Residual: math.Inf(1)})
				m.EXPECT().Interpolate(gomock.Eq(targets)).Times(1).Return([]float64{0.02, 0.03}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Nil(t, decodeInterpolate(t, recorder).Fit)
			},
		},
		{
			name: "NON_FINITE_YIELDS",
			body: gin.H{"beta": []float64{1, 1, 1, 1}, "tau": []float64{-0.001, 1}, "targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Interpolate(gomock.Eq(targets)).Times(1).Return([]float64{math.Inf(1), 0.1}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
				require.Equal(t, errNonFinite.Error(), decodeError(t, recorder))
			},
		},
		{
			name: "NO_TARGETS",
			body: gin.H{"beta": []float64{5, 0, 0, 0}, "tau": []float64{1, 1}},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Interpolate(gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "EMPTY_TARGETS",
			body: gin.H{"beta": []float64{5, 0, 0, 0}, "tau": []float64{1, 1}, "targets": []float64{}},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Interpolate(gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "ZERO_TARGET",
			body: gin.H{"beta": []float64{5, 0, 0, 0}, "tau": []float64{1, 1}, "targets": []float64{0, 1}},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Interpolate(gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NEGATIVE_MATURITY",
			body: gin.H{"maturities": []float64{-1, 2}, "yields": []float64{0.01, 0.02}, "targets": targets},
			buildStubs: func(m *mockcurve.MockCurve) {
				m.EXPECT().Fit(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder, beta, tau []float64) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			model := mockcurve.NewMockCurve(ctrl)
			tc.buildStubs(model)

			var gotBeta, gotTau []float64
			server := NewServer(testConfig(), func(beta, tau []float64) curve.Curve {
				gotBeta, gotTau = beta, tau
				return model
			})

			recorder := postJSON(t, server, "/v1/interpolate", tc.body, nil)
			tc.checkResponse(t, recorder, gotBeta, gotTau)
		})
	}
}

func TestInterpolateAPIWithNSS(t *testing.T) {
	server := NewServer(testConfig(), NSSFactory(1000))

	t.Run("LEVEL", func(t *testing.T) {
		recorder := postJSON(t, server, "/v1/interpolate", gin.H{
			"beta":    []float64{5, 0, 0, 0},
			"tau":     []float64{1, 1},
			"targets": []float64{1, 2, 100},
		}, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, []float64{5, 5, 5}, decodeInterpolate(t, recorder).Yields)
	})

	t.Run("ZERO_BETA", func(t *testing.T) {
		recorder := postJSON(t, server, "/v1/interpolate", gin.H{
			"beta":    []float64{0, 0, 0, 0},
			"tau":     []float64{1, 1},
			"targets": []float64{1},
		}, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, []float64{0}, decodeInterpolate(t, recorder).Yields)
	})

	t.Run("UNINITIALISED", func(t *testing.T) {
		recorder := postJSON(t, server, "/v1/interpolate", gin.H{"targets": []float64{1}}, nil)
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		require.Equal(t, "Fit the function or provide valid set of hyperparameters", decodeError(t, recorder))
	})

	t.Run("FIT", func(t *testing.T) {
		maturities := []float64{1, 2, 5, 10, 20, 30}
		yields := []float64{0.01, 0.015, 0.02, 0.025, 0.028, 0.03}
		recorder := postJSON(t, server, "/v1/interpolate", gin.H{
			"maturities": maturities,
			"yields":     yields,
			"targets":    maturities,
		}, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeInterpolate(t, recorder)
		require.Len(t, resp.Yields, len(maturities))
		for i := range yields {
			require.InDelta(t, yields[i], resp.Yields[i], 1e-3)
		}
		require.NotNil(t, resp.Fit)
		require.NotEmpty(t, resp.Fit.Status)
	})
}
