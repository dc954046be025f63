package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/cloudjudge-2025.net/internal/adapter/crypto"
	"gitlab.com/cloudjudge-2025.net/internal/adapter/docker"
	"gitlab.com/cloudjudge-2025.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/cloudjudge-2025.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/cloudjudge-2025.net/internal/adapter/postgres/userrepository"
	"gitlab.com/cloudjudge-2025.net/internal/adapter/redis/casescache"
	"gitlab.com/cloudjudge-2025.net/internal/config"
	auth2 "gitlab.com/cloudjudge-2025.net/internal/core/services/auth"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/judge"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/problem"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/submission"
	logger2 "gitlab.com/cloudjudge-2025.net/internal/global/logger"
	"gitlab.com/cloudjudge-2025.net/internal/handlers"
	http2 "gitlab.com/cloudjudge-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting judge service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	userPort := userrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	problemPort := problemrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	submissionPort := submissionrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	casesCache := casescache.New(redisClient, logger)
	sandbox := docker.NewSandbox(sysCfg.JudgeConfig, logger)

	// primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	judgeSvc := judge.NewJudgeService(sandbox, logger)
	problemSvc := problem.NewProblemService(problemPort, casesCache, logger)
	submissionSvc := submission.NewSubmissionService(
		submissionPort, problemPort, casesCache, judgeSvc, sysCfg.JudgeConfig.Limits(), logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(problemSvc, submissionSvc, ggAuth, localAuth)

	// server
	middleware := handlers.New(jwtProvider, userPort)
	httpServer := http2.NewServer(
		sysCfg.HTTPPort, "cloudjudge", *serviceProvider, sysCfg.GGAuthConfig, middleware, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
