package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

// Store agrupa los repositorios sobre un mismo pool.
type Store struct {
	Pool       *pgxpool.Pool
	Partners   *PartnerRepo
	Products   *ProductRepo
	Employees  *EmployeeRepo
	Records    *RecordRepo
	Tx         *TxRunner
	principals map[string]repository.PrincipalRepository
}

// NewStore construye los repositorios sobre el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Pool:      pool,
		Partners:  NewPartnerRepository(pool),
		Products:  NewProductRepository(pool),
		Employees: NewEmployeeRepository(pool),
		Records:   NewRecordRepository(pool),
		Tx:        NewTxRunner(pool),
		principals: map[string]repository.PrincipalRepository{
			"employee": NewEmployeePrincipalRepository(pool),
			"user":     NewUserRepository(pool),
		},
	}
}

// Principals devuelve el repositorio de principales para subject ("employee" | "user").
func (s *Store) Principals(subject string) repository.PrincipalRepository {
	return s.principals[subject]
}
