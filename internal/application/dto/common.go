package dto

import (
	"math"
	"strings"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain"
)

// Valores por defecto de paginación.
const (
	DefaultPage     = 1
	DefaultLimit    = 20
	MaxLimit        = 100
	DefaultSearch   = 10
	MaxSearchResult = 50
)

// APIResponse envoltorio uniforme de las respuestas exitosas.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// ErrorResponse cuerpo de error HTTP. Error solo se incluye en development.
type ErrorResponse struct {
	Success   bool                `json:"success"`
	Code      string              `json:"code"`
	Message   string              `json:"message"`
	Errors    []domain.FieldError `json:"errors,omitempty"`
	Error     string              `json:"error,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// PageRequest paginación por página (1-based).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica los valores por defecto a valores ausentes o inválidos y acota Limit.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset desplazamiento para el store. Satura en math.MaxInt en lugar de desbordar.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalRecords int  `json:"totalRecords"`
	Limit        int  `json:"limit"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// NewPagination calcula totalPages = ceil(total/limit) y los indicadores de navegación.
func NewPagination(p PageRequest, total int) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{
		CurrentPage:  p.Page,
		TotalPages:   pages,
		TotalRecords: total,
		Limit:        p.Limit,
		HasNext:      p.Page < pages,
		HasPrev:      p.Page > 1,
	}
}

// SearchRequest búsqueda por nombre sobre entidades activas.
type SearchRequest struct {
	Term  string `json:"search" validate:"max=50"`
	Limit int    `json:"limit"`
}

// Normalize recorta el término y acota Limit a [1, MaxSearchResult].
func (s *SearchRequest) Normalize() {
	s.Term = strings.TrimSpace(s.Term)
	if s.Limit < 1 {
		s.Limit = DefaultSearch
	}
	if s.Limit > MaxSearchResult {
		s.Limit = MaxSearchResult
	}
}
