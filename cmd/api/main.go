package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/asoadmin-api/docs"
	"github.com/jhoicas/asoadmin-api/internal/application/auth"
	"github.com/jhoicas/asoadmin-api/internal/application/ledger"
	"github.com/jhoicas/asoadmin-api/internal/application/seed"
	"github.com/jhoicas/asoadmin-api/internal/application/usecase"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/jhoicas/asoadmin-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/asoadmin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/asoadmin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/asoadmin-api/internal/interfaces/http"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
	"github.com/jhoicas/asoadmin-api/pkg/config"
	"github.com/jhoicas/asoadmin-api/pkg/logger"
	"github.com/swaggo/swag"
)

const swaggerFile = "./docs/swagger.json"

// repos repositorios elegidos según STORE_DRIVER.
type repos struct {
	partners   repository.PartnerRepository
	products   repository.ProductRepository
	employees  repository.EmployeeRepository
	records    repository.RecordRepository
	principals repository.PrincipalRepository
	tx         ledger.TxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("auth_subject", cfg.Auth.Subject).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria inválida")
	}

	ctx := context.Background()
	clk := clock.NewRealClock()

	r, err := openStore(ctx, cfg, log, clk)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer r.close()

	authUC := auth.NewAuthUseCase(r.principals, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, clk)
	ledgerUC := ledger.NewUseCase(r.tx, r.records, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name), clk, ledger.Config{
		EmployeeIsPrincipal: cfg.Auth.Subject == config.AuthSubjectEmployee,
		Location:            loc,
	})

	metrics := httpRouter.NewMetrics("asoadmin")
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:       cfg.App.Name,
		Env:        cfg.App.Env,
		CORSOrigin: cfg.HTTP.CORSOrigin,
	}, log, metrics)

	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger UI deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Env:        cfg.App.Env,
		AuthUC:     authUC,
		Verifier:   auth.NewTokenVerifier(cfg.JWT.Secret),
		PartnerUC:  usecase.NewPartnerUseCase(r.partners, clk),
		ProductUC:  usecase.NewProductUseCase(r.products, clk),
		EmployeeUC: usecase.NewEmployeeUseCase(r.employees, clk),
		LedgerUC:   ledgerUC,
		Metrics:    metrics,
		DocJSON:    func() (string, error) { return swag.ReadDoc() },
		Clock:      clk.Now,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	if err := waitForShutdown(listenErr, quit); err != nil {
		r.close()
		log.Fatal().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("no se pudo servir HTTP")
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// waitForShutdown bloquea hasta una señal de apagado (nil) o hasta que Listen termine
// por su cuenta, lo que antes de la señal solo ocurre por error (puerto ocupado, etc.).
func waitForShutdown(listenErr <-chan error, quit <-chan os.Signal) error {
	select {
	case err := <-listenErr:
		if err == nil {
			err = errors.New("servidor HTTP detenido inesperadamente")
		}
		return err
	case <-quit:
		return nil
	}
}

// openStore abre PostgreSQL (con migraciones si AUTO_MIGRATE) o el store en memoria.
// El store en memoria arranca vacío, así que se siembra igual que con cmd/seed.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger, clk clock.Clock) (*repos, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		s := memory.NewStore()
		var principals repository.PrincipalRepository = s.EmployeePrincipals()
		if cfg.Auth.Subject == config.AuthSubjectUser {
			principals = s.UserPrincipals()
		}
		res, err := seed.Run(ctx, principals, s.Products, clk, seed.Config{
			AdminPassword:      cfg.Seed.AdminPassword,
			SuperAdminPassword: cfg.Seed.SuperAdminPassword,
			Products:           true,
		})
		if err != nil {
			return nil, err
		}
		log.Info().
			Strs("principals", res.Principals).
			Int("products", res.ProductsCreated).
			Msg("store en memoria sembrado")
		return &repos{
			partners:   s.Partners,
			products:   s.Products,
			employees:  s.Employees,
			records:    s.Records,
			principals: principals,
			tx:         s.Tx,
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	}
	s := postgres.NewStore(pool)
	return &repos{
		partners:   s.Partners,
		products:   s.Products,
		employees:  s.Employees,
		records:    s.Records,
		principals: s.Principals(cfg.Auth.Subject),
		tx:         s.Tx,
		close:      pool.Close,
	}, nil
}
