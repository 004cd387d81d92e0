package server

import (
	"context"

	"github.com/gofiber/fiber/v2"

	miit "github.com/metalteco/miit-api"
	"github.com/metalteco/miit-api/repository"
)

// Server wires the fiber application: global middleware, the auth endpoints,
// and one CRUD resource per catalog entity.
type Server struct {
	app    *fiber.App
	auther miit.Authenticator
	repo   repository.Manager
	logger miit.Logger
}

type Option func(*Server)

func WithLogger(logger miit.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(auther miit.Authenticator, repo repository.Manager, opts ...Option) *Server {
	s := &Server{
		auther: auther,
		repo:   repo,
		logger: miit.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "miit-api",
		DisableStartupMessage: true,
	})

	s.app.Use(ProcessTime())
	s.routes()

	return s
}

// App exposes the underlying fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("HTTP server listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) routes() {
	authController := &AuthController{Auther: s.auther, Logger: s.logger}

	auth := s.app.Group("/auth")
	auth.Post("/login", authController.Login)
	auth.Post("/refresh", authController.Refresh)
	auth.Get("/me", Protected(s.auther), authController.Me)

	protected := s.app.Group("/", Protected(s.auther))

	adminOnly := RequireAnyRole(miit.RoleAdministrator, miit.RoleSuperUser)

	users := &UsersController{Repo: s.repo.Users(), Logger: s.logger}
	ug := protected.Group("/users", adminOnly)
	ug.Get("/", users.List)
	ug.Get("/:id", users.Get)
	ug.Post("/", users.Create)
	ug.Put("/:id", users.Update)
	ug.Delete("/:id", users.Delete)

	mountResource(protected, "/fleets", &Resource[*miit.Fleet, miit.FleetResponse, miit.FleetCreate, miit.FleetUpdate]{
		Repo:   s.repo.Fleets(),
		Logger: s.logger,
	})

	mountResource(protected, "/trips", &Resource[*miit.Trip, miit.TripResponse, miit.TripCreate, miit.TripUpdate]{
		Repo:   s.repo.Trips(),
		Logger: s.logger,
	})

	mountResource(protected, "/bills-of-lading", &Resource[*miit.BillOfLading, miit.BillOfLadingResponse, miit.BillOfLadingCreate, miit.BillOfLadingUpdate]{
		Repo:   s.repo.BillsOfLading(),
		Logger: s.logger,
	})

	mountResource(protected, "/clients", &Resource[*miit.Client, miit.ClientResponse, miit.ClientCreate, miit.ClientUpdate]{
		Repo:   s.repo.Clients(),
		Logger: s.logger,
	})

	mountResource(protected, "/materials", &Resource[*miit.Material, miit.MaterialResponse, miit.MaterialCreate, miit.MaterialUpdate]{
		Repo:   s.repo.Materials(),
		Logger: s.logger,
	})

	mountResource(protected, "/storages", &Resource[*miit.Storage, miit.StorageResponse, miit.StorageCreate, miit.StorageUpdate]{
		Repo:   s.repo.Storages(),
		Logger: s.logger,
	})

	movements := &MovementsController{
		Resource: Resource[*miit.Movement, miit.MovementResponse, miit.MovementCreate, miit.MovementUpdate]{
			Repo:   s.repo.Movements(),
			Logger: s.logger,
		},
		Manager: s.repo,
	}
	mg := protected.Group("/movements")
	mg.Get("/", movements.List)
	mg.Get("/:id", movements.Get)
	mg.Post("/", movements.Create)
	mg.Put("/:id", movements.Update)
	mg.Delete("/:id", movements.Delete)

	mountResource(protected, "/weighings", &Resource[*miit.Weighing, miit.WeighingResponse, miit.WeighingCreate, miit.WeighingUpdate]{
		Repo:   s.repo.Weighings(),
		Logger: s.logger,
	})

	mountResource(protected, "/transactions", &Resource[*miit.Transaction, miit.TransactionResponse, miit.TransactionCreate, miit.TransactionUpdate]{
		Repo:   s.repo.Transactions(),
		Logger: s.logger,
	})
}

func mountResource[M any, R any, C Payload[M], U Payload[M]](router fiber.Router, prefix string, resource *Resource[M, R, C, U]) {
	g := router.Group(prefix)
	g.Get("/", resource.List)
	g.Get("/:id", resource.Get)
	g.Post("/", resource.Create)
	g.Put("/:id", resource.Update)
	g.Delete("/:id", resource.Delete)
}
