// Package memory implementa los repositorios en memoria. Se usa con STORE_DRIVER=memory
// (demos, desarrollo sin base de datos) y como store de los tests.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"golang.org/x/text/cases"
)

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu sync.RWMutex
	// txMu serializa RunLedger con las modificaciones de socios, productos y empleados,
	// así una baja no se intercala entre la comprobación de activos y el commit.
	// Orden de toma: txMu, luego mu.
	txMu sync.Mutex

	partners  map[string]entity.Partner
	products  map[string]entity.Product
	employees map[string]entity.Employee
	users     map[string]entity.User
	records   []entity.Record

	Partners  *PartnerRepo
	Products  *ProductRepo
	Employees *EmployeeRepo
	Records   *RecordRepo
	Tx        *TxRunner
}

func NewStore() *Store {
	s := &Store{
		partners:  make(map[string]entity.Partner),
		products:  make(map[string]entity.Product),
		employees: make(map[string]entity.Employee),
		users:     make(map[string]entity.User),
	}
	s.Partners = &PartnerRepo{s: s}
	s.Products = &ProductRepo{s: s}
	s.Employees = &EmployeeRepo{s: s}
	s.Records = &RecordRepo{s: s}
	s.Tx = &TxRunner{s: s}
	return s
}

// EmployeePrincipals principales de login sobre los empleados.
func (s *Store) EmployeePrincipals() *EmployeePrincipalRepo { return &EmployeePrincipalRepo{s: s} }

// UserPrincipals principales de login sobre los usuarios.
func (s *Store) UserPrincipals() *UserRepo { return &UserRepo{s: s} }

// containsFold compara con plegado de mayúsculas Unicode (ß, acentos en mayúscula, etc.).
// cases.Caser no es seguro entre goroutines, se crea uno por llamada.
func containsFold(s, term string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(term))
}

// sortByName ordena por nombre y desempata por id, igual que el store SQL.
func sortByName[T any](list []*T, name, id func(*T) string) {
	sort.SliceStable(list, func(i, j int) bool {
		ni, nj := name(list[i]), name(list[j])
		if ni != nj {
			return ni < nj
		}
		return id(list[i]) < id(list[j])
	})
}

func limitSlice[T any](list []*T, limit int) []*T {
	if limit >= 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
