// seed crea o reemplaza los principales admin y superadmin y siembra el catálogo de productos
// si la tabla está vacía. Aplica las migraciones pendientes antes de sembrar.
//
// Uso: go run ./cmd/seed [-products=false] [-subject employee|user] [-catalog productos.csv -charset latin1]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/application/seed"
	"github.com/jhoicas/asoadmin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
	"github.com/jhoicas/asoadmin-api/pkg/config"
	"github.com/jhoicas/asoadmin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	products := flag.Bool("products", true, "sembrar el catálogo si no hay productos")
	subject := flag.String("subject", cfg.Auth.Subject, "tabla de credenciales: employee | user")
	catalogPath := flag.String("catalog", "", "CSV nombre;créditos que reemplaza el catálogo por defecto")
	charset := flag.String("charset", "utf-8", "codificación del CSV (utf-8 | latin1)")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var items []seed.CatalogItem
	if *catalogPath != "" {
		f, err := os.Open(*catalogPath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *catalogPath).Msg("abrir catálogo")
		}
		items, err = seed.ReadCatalog(f, *charset)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("leer catálogo")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("applied", applied).Msg("migraciones aplicadas")

	store := postgres.NewStore(pool)
	principals := store.Principals(*subject)
	if principals == nil {
		log.Fatal().Str("subject", *subject).Msg("subject desconocido")
	}

	res, err := seed.Run(ctx, principals, store.Products, clock.NewRealClock(), seed.Config{
		AdminPassword:      cfg.Seed.AdminPassword,
		SuperAdminPassword: cfg.Seed.SuperAdminPassword,
		Products:           *products,
		Catalog:            items,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().
		Strs("principals", res.Principals).
		Int("products", res.ProductsCreated).
		Msg("seed completado")
}
