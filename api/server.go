package api

import (
	"net/http"

	"github.com/banachtech/nss-curve/config"
	"github.com/banachtech/nss-curve/curve"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// NewCurveFunc builds the model a request works on.
type NewCurveFunc func(beta, tau []float64) curve.Curve

// NSSFactory builds NSS models whose fits stop after maxIterations major iterations.
func NSSFactory(maxIterations int) NewCurveFunc {
	return func(beta, tau []float64) curve.Curve {
		m := curve.New(beta, tau)
		s := curve.DefaultSettings()
		s.MajorIterations = maxIterations
		m.SetSettings(s)
		return m
	}
}

// Server serves HTTP requests for the yield curve service.
type Server struct {
	config   config.Config
	newCurve NewCurveFunc
	limiters *limiterSet
	router   *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(cfg config.Config, newCurve NewCurveFunc) *Server {
	server := &Server{
		config:   cfg,
		newCurve: newCurve,
		limiters: newLimiterSet(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := router.Group("/v1").Use(server.authentication, server.rateLimit)
	authRoutes.POST("/interpolate", server.interpolate)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
