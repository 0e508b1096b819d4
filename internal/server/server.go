// Package server exposes the promo job API over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/observability"
)

// JobRunner runs one promo job to completion.
type JobRunner interface {
	Run(ctx context.Context, input domain.JobInput) domain.JobOutput
}

// Options configures the HTTP server.
type Options struct {
	Runner     JobRunner
	Logger     *zap.Logger
	JobTimeout time.Duration // per-job deadline, zero disables
}

// Server is the HTTP boundary: request validation, job ids, and the
// health/metrics endpoints. All generation semantics live in the runner.
type Server struct {
	runner     JobRunner
	log        *zap.Logger
	jobTimeout time.Duration
	engine     *gin.Engine
}

// New creates the HTTP server and registers the routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Server{
		runner:     opts.Runner,
		log:        opts.Logger,
		jobTimeout: opts.JobTimeout,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.POST("/v1/promo", s.handlePromo)
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(observability.Handler()))

	s.engine = engine
	return s
}

// Handler returns the http.Handler for mounting in an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

type errorResponse struct {
	Error string `json:"error"`
}

// handlePromo validates the request and runs the job synchronously. The job
// itself never fails; whatever happened inside is reported through the
// output's confidence level and data source.
func (s *Server) handlePromo(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if input.Ticker == "" && input.ContractAddress == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "at least one of ticker or contract_address is required"})
		return
	}

	jobID := uuid.NewString()
	log := s.log.With(zap.String("job_id", jobID))
	log.Info("promo job accepted",
		zap.String("ticker", input.Ticker),
		zap.String("contract_address", input.ContractAddress),
	)

	ctx := c.Request.Context()
	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	output := s.runner.Run(ctx, input)

	log.Info("promo job finished",
		zap.Int("confidence", output.ConfidenceLevel),
		zap.Float64("elapsed_seconds", output.ElapsedSeconds),
	)

	c.Header("X-Job-ID", jobID)
	c.JSON(http.StatusOK, output)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
