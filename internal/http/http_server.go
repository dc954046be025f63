package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/cloudjudge-2025.net/internal/config"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	auth2 "gitlab.com/cloudjudge-2025.net/internal/core/services/auth"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/problem"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/submission"
	"gitlab.com/cloudjudge-2025.net/internal/handlers"
	"gitlab.com/cloudjudge-2025.net/internal/handlers/auth"
	"gitlab.com/cloudjudge-2025.net/internal/handlers/problems"
	"gitlab.com/cloudjudge-2025.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	problemService    problem.IProblemService
	submissionService submission.ISubmissionService

	ggAuth    auth2.IAuthService
	localAuth auth2.IAuthService
}

func NewServiceProvider(
	problemService problem.IProblemService,
	submissionService submission.ISubmissionService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		problemService:    problemService,
		submissionService: submissionService,
		ggAuth:            ggAuth,
		localAuth:         localAuth,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	ggAuthConfig    *config.GGAuthConfig
	middleware      *handlers.MiddlewareProvider
	logger          primary.Logger
}

func NewServer(
	port int,
	serviceName string,
	serviceProvider ServiceProvider,
	ggAuthConfig *config.GGAuthConfig,
	middleware *handlers.MiddlewareProvider,
	logger primary.Logger,
) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		ggAuthConfig:    ggAuthConfig,
		middleware:      middleware,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	auth.NewHandler(s.ggAuthConfig, s.middleware).RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})
	problems.NewHandler(s.ServiceProvider.problemService, s.middleware).RegisterRoutes(r)
	submissions.NewHandler(s.ServiceProvider.submissionService, s.middleware).RegisterRoutes(r)
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server. Judging is synchronous, so the write timeout has to
	// cover a full multi-case run.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
