package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	"gitlab.com/webrequest.net/internal/handlers"
	formhandler "gitlab.com/webrequest.net/internal/handlers/form"
	"gitlab.com/webrequest.net/internal/handlers/pages"
	"gitlab.com/webrequest.net/internal/handlers/submissions"
	"gitlab.com/webrequest.net/internal/render"
)

type ServiceProvider struct {
	validator validator.IValidator
	store     submission.ISubmissionStore
	drafts    submission.IDraftStore
	session   form.IFormSession
	renderer  *render.Renderer
}

func NewServiceProvider(
	validator validator.IValidator,
	store submission.ISubmissionStore,
	drafts submission.IDraftStore,
	session form.IFormSession,
	renderer *render.Renderer,
) *ServiceProvider {
	return &ServiceProvider{
		validator: validator,
		store:     store,
		drafts:    drafts,
		session:   session,
		renderer:  renderer,
	}
}

type Server struct {
	router          *mux.Router
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
	srv             *http.Server
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	if s.ServiceProvider.renderer == nil {
		return errors.New("http server: renderer is required")
	}

	r := mux.NewRouter()
	middleware := handlers.New(s.logger)
	r.Use(middleware.Recover, middleware.AccessLog)

	p := s.ServiceProvider
	submissions.
		NewSubmissionHandler(p.store, p.session, p.renderer.Location(), s.logger).
		RegisterRoutes(r)
	formhandler.
		NewFormHandler(p.session, p.validator, p.drafts, s.logger).
		RegisterRoutes(r)
	pages.
		NewPageHandler(p.session, p.validator, p.store, p.renderer, s.logger).
		RegisterRoutes(r)

	s.router = r
	return nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", s.srv.Addr)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
