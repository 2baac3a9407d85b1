package memory

import (
	"context"

	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkName(p); err != nil {
		return err
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetActiveByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil || p == nil || !p.Active {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return nil
	}
	if err := r.checkName(p); err != nil {
		return err
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) List(_ context.Context, includeInactive bool) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return includeInactive || p.Active }, -1), nil
}

func (r *ProductRepo) Search(_ context.Context, term string, limit int) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Active && containsFold(p.Name, term) }, limit), nil
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.products), nil
}

func (r *ProductRepo) filter(keep func(*entity.Product) bool, limit int) []*entity.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		p := p
		if keep(&p) {
			list = append(list, &p)
		}
	}
	sortByName(list, func(p *entity.Product) string { return p.Name }, func(p *entity.Product) string { return p.ID })
	return limitSlice(list, limit)
}

func (r *ProductRepo) checkName(p *entity.Product) error {
	for id, other := range r.s.products {
		if id != p.ID && other.Name == p.Name {
			return &domain.DuplicateError{Field: "name"}
		}
	}
	return nil
}
