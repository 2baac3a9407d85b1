package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/asoadmin-api/internal/application/auth"
	"github.com/jhoicas/asoadmin-api/internal/application/ledger"
	"github.com/jhoicas/asoadmin-api/internal/application/usecase"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name       string
	Env        string
	CORSOrigin string
}

// NewApp crea la app Fiber con el manejador de errores y los middlewares comunes.
// Las rutas se registran después con Router.
func NewApp(cfg AppConfig, log *logger.Logger, metrics *Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log, cfg.Env == "development"),
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: cfg.CORSOrigin != "*",
	}))
	if metrics != nil {
		app.Use(metrics.Middleware())
	}
	app.Use(RequestLogger(log))
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Env        string
	AuthUC     *auth.AuthUseCase
	Verifier   *auth.TokenVerifier
	PartnerUC  *usecase.PartnerUseCase
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	LedgerUC   *ledger.UseCase
	Metrics    *Metrics
	DocJSON    func() (string, error)
	Clock      func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	app.Get("/", func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, "asoAdmin API", fiber.Map{
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":      "/api/auth",
				"partners":  "/api/partners",
				"products":  "/api/products",
				"employees": "/api/employees",
				"records":   "/api/records",
				"health":    "/api/health",
				"docs":      "/docs",
			},
		})
	})
	health := func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, "API funcionando correctamente", fiber.Map{
			"status":      "ok",
			"environment": deps.Env,
			"time":        deps.Clock().UTC(),
		})
	}
	app.Get("/health", health)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")
	api.Get("/health", health)
	if deps.DocJSON != nil {
		api.Get("/docs/doc.json", func(c *fiber.Ctx) error {
			doc, err := deps.DocJSON()
			if err != nil {
				return err
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(doc)
		})
	}

	authn := AuthMiddleware(deps.Verifier)
	admin := RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)
	superAdmin := RequireRole(entity.RoleSuperAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", authn, authHandler.Profile)
	authGroup.Post("/register", authn, superAdmin, authHandler.Register)
	authGroup.Get("/users", authn, superAdmin, authHandler.ListUsers)
	authGroup.Delete("/users/:id", authn, superAdmin, authHandler.DeactivateUser)

	// Catálogo: lectura pública, escritura admin
	partners := api.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Post("/", authn, admin, partnerHandler.Create)
	partners.Put("/:id", authn, admin, partnerHandler.Update)
	partners.Delete("/:id", authn, admin, partnerHandler.Deactivate)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authn, admin, productHandler.Create)
	products.Put("/:id", authn, admin, productHandler.Update)
	products.Delete("/:id", authn, admin, productHandler.Deactivate)

	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", authn, admin, employeeHandler.Create)
	employees.Put("/:id", authn, admin, employeeHandler.Update)
	employees.Delete("/:id", authn, admin, employeeHandler.Deactivate)

	// Ledger (protegido). Las rutas fijas van antes de /:id.
	var onCreated func()
	if deps.Metrics != nil {
		onCreated = deps.Metrics.RecordCreated
	}
	// authn va por ruta para que las rutas desconocidas bajo /records den 404.
	records := api.Group("/records")
	recordHandler := NewRecordHandler(deps.LedgerUC, onCreated)
	records.Post("/", authn, recordHandler.Create)
	records.Get("/", authn, recordHandler.List)
	records.Get("/stats", authn, recordHandler.Stats)
	records.Get("/partner/:partnerId", authn, recordHandler.ListByPartner)
	records.Get("/:id", authn, recordHandler.GetByID)
	records.Get("/:id/receipt", authn, recordHandler.Receipt)

	app.Use(func(c *fiber.Ctx) error {
		return fail(c, fiber.StatusNotFound, CodeNotFound, "Ruta no encontrada: "+c.OriginalURL())
	})
}
