package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/joblyhq/jobly/applications"
	applicationHandlers "github.com/joblyhq/jobly/applications/handlers"
	applicationRepository "github.com/joblyhq/jobly/applications/repository"
	applicationServices "github.com/joblyhq/jobly/applications/services"
	"github.com/joblyhq/jobly/auth"
	authHandlers "github.com/joblyhq/jobly/auth/handlers"
	authServices "github.com/joblyhq/jobly/auth/services"
	"github.com/joblyhq/jobly/companies"
	companyHandlers "github.com/joblyhq/jobly/companies/handlers"
	companyRepository "github.com/joblyhq/jobly/companies/repository"
	companyServices "github.com/joblyhq/jobly/companies/services"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/middleware/requestid"
	pkglog "github.com/joblyhq/jobly/internal/pkg/log"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
	"github.com/joblyhq/jobly/jobs"
	jobHandlers "github.com/joblyhq/jobly/jobs/handlers"
	jobRepository "github.com/joblyhq/jobly/jobs/repository"
	jobServices "github.com/joblyhq/jobly/jobs/services"
	"github.com/joblyhq/jobly/users"
	userHandlers "github.com/joblyhq/jobly/users/handlers"
	userRepository "github.com/joblyhq/jobly/users/repository"
	userServices "github.com/joblyhq/jobly/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// Handlers write their own error bodies; don't override them.
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()
	pkglog.Info("Connected to PostgreSQL database %q", cfg.Database.Postgres.Database)

	companyRepo := companyRepository.NewPostgresRepository(pgClient)
	jobRepo := jobRepository.NewPostgresRepository(pgClient)
	userRepo := userRepository.NewPostgresRepository(pgClient)
	applicationRepo := applicationRepository.NewPostgresRepository(pgClient)

	companyService := companyServices.NewCompanyService(companyRepo)
	jobService := jobServices.NewJobService(jobRepo)
	userService := userServices.NewUserService(userRepo)
	applicationService := applicationServices.NewApplicationService(applicationRepo)
	authService := authServices.NewAuthService(userRepo, cfg)

	auth.RegisterRoutes(app, authHandlers.NewAuthHandler(authService, cfg.App.MinPasswordScore))
	companies.RegisterRoutes(app, companyHandlers.NewCompanyHandler(companyService), cfg)
	jobs.RegisterRoutes(app, jobHandlers.NewJobHandler(jobService), cfg)
	users.RegisterRoutes(app, userHandlers.NewUserHandler(userService), cfg)
	applications.RegisterRoutes(app, applicationHandlers.NewApplicationHandler(applicationService), cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	pkglog.Info("Starting %s API server on %s", cfg.App.Name, addr)
	log.Fatal(app.Listen(addr))
}
