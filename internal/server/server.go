package server

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/zugferd/internal/cii"
	"github.com/rezonia/zugferd/internal/logger"
	"github.com/rezonia/zugferd/internal/model"
)

// ContentTypeXML is sent with every rendered document
const ContentTypeXML = "application/xml; charset=utf-8"

// Config holds server configuration
type Config struct {
	Address      string
	MaxBodySize  int64
	Indent       int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	writer *cii.Writer
	log    zerolog.Logger
}

// Option configures a Server
type Option func(*Server)

// WithLogger replaces the component logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// NewServer creates a new API server
func NewServer(config *Config, opts ...Option) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config: config,
		log:    logger.WithComponent("server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	// one writer serves all requests
	s.writer = cii.NewWriter(cii.WithIndent(config.Indent), cii.WithLogger(s.log))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(s.log))
	s.router = router

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		invoices := v1.Group("/invoices")
		if s.config.MaxBodySize > 0 {
			invoices.Use(BodyLimit(s.config.MaxBodySize))
		}
		invoices.POST("/xml", s.handleWriteXML)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.log.Info().Str("address", s.config.Address).Msg("Server listening")
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleWriteXML(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body exceeds maximum allowed size"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	if len(bytes.TrimSpace(body)) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return
	}

	d, err := model.DecodeDescriptor(bytes.NewReader(body))
	if err != nil {
		resp := ErrorResponse{Error: "invalid invoice descriptor", Details: err.Error()}
		var decodeErr *model.DecodeError
		if errors.As(err, &decodeErr) {
			resp.Field = decodeErr.Field
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	var buf bytes.Buffer
	if err := s.writer.Save(&buf, d); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to write invoice", Details: err.Error()})
		return
	}

	c.Data(http.StatusOK, ContentTypeXML, buf.Bytes())
}
