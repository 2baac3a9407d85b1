package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestPartnerRepo_SearchFoldsCase(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Partners.Create(ctx, &entity.Partner{ID: "1", Name: "José Álvarez", Active: true}))
	require.NoError(t, s.Partners.Create(ctx, &entity.Partner{ID: "2", Name: "ÁNGELA", Active: true}))
	require.NoError(t, s.Partners.Create(ctx, &entity.Partner{ID: "3", Name: "Ángel", Active: false}))

	got, err := s.Partners.Search(ctx, "álv", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got, err = s.Partners.Search(ctx, "ángel", 10)
	require.NoError(t, err)
	require.Len(t, got, 1, "los inactivos no aparecen en la búsqueda")
	assert.Equal(t, "2", got[0].ID)
}

func TestPartnerRepo_DuplicateDNI(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Partners.Create(ctx, &entity.Partner{ID: "1", Name: "Ana", DNI: "12345678Z"}))
	require.NoError(t, s.Partners.Create(ctx, &entity.Partner{ID: "2", Name: "Sin DNI"}))
	require.NoError(t, s.Partners.Create(ctx, &entity.Partner{ID: "3", Name: "Otro sin DNI"}))

	err := s.Partners.Create(ctx, &entity.Partner{ID: "4", Name: "Eva", DNI: "12345678Z"})
	var dup *domain.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "dni", dup.Field)
}

func TestProductRepo_ListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	for i, name := range []string{"Zumo", "Agua", "Café"} {
		require.NoError(t, s.Products.Create(ctx, &entity.Product{ID: string(rune('a' + i)), Name: name, Active: name != "Café"}))
	}

	active, err := s.Products.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Agua", active[0].Name)

	all, err := s.Products.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := s.Products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestTxRunner_RollbackDiscardsRecords(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	boom := errors.New("boom")
	err := s.Tx.RunLedger(ctx, func(_ repository.PartnerRepository, _ repository.ProductRepository,
		_ repository.EmployeeRepository, records repository.RecordRepository) error {
		require.NoError(t, records.Create(ctx, &entity.Record{ID: "r1", Quantity: 1}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.Records.Count(ctx, repository.RecordFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTxRunner_DeactivationWaitsForLedger(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	partner := &entity.Partner{ID: "p1", Name: "Ana", Active: true}
	require.NoError(t, s.Partners.Create(ctx, partner))

	checked := make(chan struct{})
	release := make(chan struct{})
	txDone := make(chan error, 1)
	go func() {
		txDone <- s.Tx.RunLedger(ctx, func(partners repository.PartnerRepository, _ repository.ProductRepository,
			_ repository.EmployeeRepository, records repository.RecordRepository) error {
			p, err := partners.GetActiveByID(ctx, "p1")
			if err != nil || p == nil {
				return errors.New("socio no activo")
			}
			close(checked)
			<-release
			return records.Create(ctx, &entity.Record{ID: "r1", PartnerID: "p1", Quantity: 1, CreatedAt: t0})
		})
	}()
	<-checked

	updated := make(chan error, 1)
	go func() {
		inactive := *partner
		inactive.Active = false
		updated <- s.Partners.Update(ctx, &inactive)
	}()

	select {
	case <-updated:
		t.Fatal("la baja no debe completarse con la transacción del ledger abierta")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-txDone)
	require.NoError(t, <-updated)

	n, err := s.Records.Count(ctx, repository.RecordFilter{PartnerID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	p, err := s.Partners.GetActiveByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestRecordRepo_ListSortAndFilter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed := []entity.Record{
		{ID: "a", PartnerID: "p1", CreatedAt: t0},
		{ID: "b", PartnerID: "p2", CreatedAt: t0.Add(time.Hour)},
		{ID: "c", PartnerID: "p1", CreatedAt: t0.Add(time.Hour)},
		{ID: "d", PartnerID: "p1", CreatedAt: t0.Add(48 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, s.Records.Create(ctx, &seed[i]))
	}

	all, err := s.Records.List(ctx, repository.RecordFilter{}, 10, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, v := range all {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids, "fecha desc, id desc en empates")

	day := repository.RecordFilter{PartnerID: "p1", From: t0.Add(-time.Hour), To: t0.Add(23 * time.Hour)}
	n, err := s.Records.Count(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	page, err := s.Records.List(ctx, repository.RecordFilter{}, 3, 3)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)

	empty, err := s.Records.List(ctx, repository.RecordFilter{}, 3, 9)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first, err := s.Records.List(ctx, repository.RecordFilter{}, 1, -40)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "d", first[0].ID)
}

func TestRecordRepo_StatsUseCurrentProductName(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Products.Create(ctx, &entity.Product{ID: "p", Name: "Refresco", Credits: decimal.NewFromInt(10), Active: true}))
	require.NoError(t, s.Records.Create(ctx, &entity.Record{ID: "r", ProductID: "p", ProductName: "Soda", Quantity: 2, TotalCredits: decimal.NewFromInt(20)}))

	stats, err := s.Records.Stats(ctx, 5)
	require.NoError(t, err)
	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, "Refresco", stats.TopProducts[0].Name)

	v, err := s.Records.GetByID(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, "Soda", v.ProductName, "la instantánea no cambia")
	assert.Equal(t, "Refresco", v.Product.Name)
	assert.Nil(t, v.Employee)
}

func TestPrincipals_Upsert(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.EmployeePrincipals()

	p := &entity.Principal{ID: "e1", Username: "admin", Name: "Admin", PasswordHash: "h1", Role: entity.RoleAdmin, UpdatedAt: t0}
	require.NoError(t, repo.Upsert(ctx, p))
	require.NoError(t, repo.Deactivate(ctx, "e1", t0))

	got, err := repo.GetActiveByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, got)

	p2 := &entity.Principal{ID: "ignorado", Username: "admin", Name: "Admin", PasswordHash: "h2", Role: entity.RoleSuperAdmin, UpdatedAt: t0}
	require.NoError(t, repo.Upsert(ctx, p2))

	got, err = repo.GetActiveByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, "h2", got.PasswordHash)
	assert.Equal(t, entity.RoleSuperAdmin, got.Role)

	err = repo.Create(ctx, &entity.Principal{ID: "e2", Username: "admin", PasswordHash: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
