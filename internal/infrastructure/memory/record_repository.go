package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/asoadmin-api/internal/application/ledger"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo ledger append-only en memoria.
type RecordRepo struct {
	s *Store
}

func (r *RecordRepo) Create(_ context.Context, rec *entity.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.records = append(r.s.records, *rec)
	return nil
}

func (r *RecordRepo) GetByID(_ context.Context, id string) (*repository.RecordView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.records {
		if r.s.records[i].ID == id {
			return r.view(r.s.records[i]), nil
		}
	}
	return nil, nil
}

func (r *RecordRepo) List(_ context.Context, f repository.RecordFilter, limit, offset int) ([]*repository.RecordView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	matched := r.match(f)
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []*repository.RecordView{}, nil
	}
	matched = matched[offset:]
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]*repository.RecordView, 0, len(matched))
	for _, rec := range matched {
		out = append(out, r.view(rec))
	}
	return out, nil
}

func (r *RecordRepo) Count(_ context.Context, f repository.RecordFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.match(f)), nil
}

// Stats delega en ledger.AggregateStats con el nombre actual de cada producto.
func (r *RecordRepo) Stats(_ context.Context, topN int) (*repository.RecordStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Record, 0, len(r.s.records))
	for i := range r.s.records {
		list = append(list, &r.s.records[i])
	}
	name := func(productID string) string { return r.s.products[productID].Name }
	return ledger.AggregateStats(list, name, topN), nil
}

// match requiere r.s.mu tomado.
func (r *RecordRepo) match(f repository.RecordFilter) []entity.Record {
	out := make([]entity.Record, 0)
	for _, rec := range r.s.records {
		if f.PartnerID != "" && rec.PartnerID != f.PartnerID {
			continue
		}
		if !f.From.IsZero() && rec.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && rec.CreatedAt.After(f.To) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// view une los datos actuales de socio, producto y empleado. Requiere r.s.mu tomado.
func (r *RecordRepo) view(rec entity.Record) *repository.RecordView {
	v := &repository.RecordView{Record: rec}
	p := r.s.partners[rec.PartnerID]
	v.Partner = repository.PartnerSummary{ID: rec.PartnerID, Name: p.Name, Email: p.Email}
	pr := r.s.products[rec.ProductID]
	v.Product = repository.ProductSummary{ID: rec.ProductID, Name: pr.Name, Credits: pr.Credits}
	if rec.EmployeeID != "" {
		if e, ok := r.s.employees[rec.EmployeeID]; ok {
			v.Employee = &repository.EmployeeSummary{ID: e.ID, Name: e.Name, Username: e.Username}
		}
	}
	return v
}
