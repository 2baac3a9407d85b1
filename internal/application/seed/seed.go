// Package seed inicializa los principales de arranque y el catálogo de productos.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Usernames de los principales de arranque.
const (
	AdminUsername      = "admin"
	SuperAdminUsername = "superadmin"
)

// CatalogItem producto a sembrar.
type CatalogItem struct {
	Name    string
	Credits decimal.Decimal
}

type productSeed struct {
	name    string
	credits int64
}

// catalog productos iniciales del club.
var catalog = []productSeed{
	{"Chocolate 7%", 7}, {"Chocolate 15%", 15},
	{"Perejil 1g", 10}, {"Perejil 2g", 18}, {"Perejil 3g", 25}, {"Perejil 4g", 30}, {"Perejil 5g", 35},
	{"Fanta", 10}, {"Sprite", 10}, {"Coca Cola", 10}, {"Pepsi", 10}, {"Dr Pepper", 12},
	{"Mountain Dew", 11}, {"Red Bull", 15}, {"Monster Energy", 15}, {"Gatorade", 8}, {"Aquarius", 8},
	{"Papel Plata", 5}, {"Boquilla Corta", 2}, {"Boquilla Larga", 3}, {"Filtros Papel", 3},
	{"Grinder Pequeño", 8}, {"Grinder Grande", 12}, {"Encendedor", 2}, {"Papel de Liar", 1},
	{"Papel OCB", 2}, {"Blunt Wrap", 5},
}

// Config contraseñas de arranque y opciones.
type Config struct {
	AdminPassword      string
	SuperAdminPassword string
	// Products siembra el catálogo solo si la tabla de productos está vacía.
	Products bool
	// Catalog reemplaza el catálogo por defecto (ver ReadCatalog).
	Catalog []CatalogItem
	// HashCost coste bcrypt; 0 = bcrypt.DefaultCost.
	HashCost int
}

// DefaultCatalog devuelve el catálogo inicial del club.
func DefaultCatalog() []CatalogItem {
	out := make([]CatalogItem, 0, len(catalog))
	for _, ps := range catalog {
		out = append(out, CatalogItem{Name: ps.name, Credits: decimal.NewFromInt(ps.credits)})
	}
	return out
}

// Result resumen de lo sembrado.
type Result struct {
	Principals      []string
	ProductsCreated int
}

// Run crea o reemplaza admin y superadmin y, si se pide, el catálogo inicial. Es idempotente.
func Run(ctx context.Context, principals repository.PrincipalRepository, products repository.ProductRepository, clk clock.Clock, cfg Config) (*Result, error) {
	if cfg.HashCost == 0 {
		cfg.HashCost = bcrypt.DefaultCost
	}
	res := &Result{}
	now := clk.Now()
	for _, p := range []struct {
		username, name, password, role string
	}{
		{AdminUsername, "Administrador", cfg.AdminPassword, entity.RoleAdmin},
		{SuperAdminUsername, "Super Administrador", cfg.SuperAdminPassword, entity.RoleSuperAdmin},
	} {
		if p.password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(p.password), cfg.HashCost)
		if err != nil {
			return nil, err
		}
		err = principals.Upsert(ctx, &entity.Principal{
			ID:           uuid.New().String(),
			Username:     p.username,
			Name:         p.name,
			PasswordHash: string(hash),
			Role:         p.role,
			Position:     "Administración",
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", p.username, err)
		}
		res.Principals = append(res.Principals, p.username)
	}

	if !cfg.Products {
		return res, nil
	}
	n, err := products.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return res, nil
	}
	items := cfg.Catalog
	if len(items) == 0 {
		items = DefaultCatalog()
	}
	for _, it := range items {
		err := products.Create(ctx, &entity.Product{
			ID:        uuid.New().String(),
			Name:      it.Name,
			Credits:   it.Credits,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("seed producto %q: %w", it.Name, err)
		}
		res.ProductsCreated++
	}
	return res, nil
}
