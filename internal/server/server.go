package server

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/rgehrsitz/ssplan/internal/compare"
	"github.com/rgehrsitz/ssplan/internal/config"
	"github.com/rgehrsitz/ssplan/internal/domain"
)

// Server exposes the calculation engine over a small JSON API
type Server struct {
	Parser        *config.InputParser
	CompareEngine *compare.CompareEngine
	Logger        zerolog.Logger
}

// NewServer creates a server around a comparison engine
func NewServer(compareEngine *compare.CompareEngine, logger zerolog.Logger) *Server {
	return &Server{
		Parser:        config.NewInputParser(),
		CompareEngine: compareEngine,
		Logger:        logger,
	}
}

// ListenAndServe starts the HTTP server on addr and blocks
func (s *Server) ListenAndServe(addr string) error {
	s.Logger.Info().Str("addr", addr).Msg("server starting")
	if err := fasthttp.ListenAndServe(addr, s.Handler()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Handler returns the request router
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())

		s.Logger.Debug().Str("method", method).Str("path", path).Msg("request")

		switch {
		case path == "/healthz" && method == fasthttp.MethodGet:
			s.handleHealth(ctx)
		case path == "/api/v1/calculate" && method == fasthttp.MethodPost:
			s.handleCalculate(ctx)
		case path == "/api/v1/compare" && method == fasthttp.MethodPost:
			s.handleCompare(ctx)
		default:
			s.writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

// handleCalculate projects a single scenario posted as JSON
func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	var scenario domain.Scenario
	if err := json.Unmarshal(ctx.PostBody(), &scenario); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.Parser.ValidateScenario(&scenario); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	projection, err := s.CompareEngine.CalcEngine.ProjectScenario(&scenario)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, projection)
}

// handleCompare runs a full multi-scenario comparison posted as JSON
func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var cfg domain.Configuration
	if err := json.Unmarshal(ctx.PostBody(), &cfg); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.Parser.ValidateConfiguration(&cfg); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	compSet, err := s.CompareEngine.Compare(context.Background(), &cfg)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, compSet)
}

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.Logger.Error().Err(err).Msg("failed to encode response")
		s.writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
