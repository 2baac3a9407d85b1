package memory

import (
	"context"

	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo socios en memoria.
type PartnerRepo struct {
	s *Store
}

func (r *PartnerRepo) Create(_ context.Context, p *entity.Partner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkDNI(p); err != nil {
		return err
	}
	r.s.partners[p.ID] = *p
	return nil
}

func (r *PartnerRepo) GetByID(_ context.Context, id string) (*entity.Partner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.partners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PartnerRepo) GetActiveByID(ctx context.Context, id string) (*entity.Partner, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil || p == nil || !p.Active {
		return nil, err
	}
	return p, nil
}

func (r *PartnerRepo) Update(_ context.Context, p *entity.Partner) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.partners[p.ID]; !ok {
		return nil
	}
	if err := r.checkDNI(p); err != nil {
		return err
	}
	r.s.partners[p.ID] = *p
	return nil
}

func (r *PartnerRepo) List(_ context.Context, includeInactive bool) ([]*entity.Partner, error) {
	return r.filter(func(p *entity.Partner) bool { return includeInactive || p.Active }, -1), nil
}

func (r *PartnerRepo) Search(_ context.Context, term string, limit int) ([]*entity.Partner, error) {
	return r.filter(func(p *entity.Partner) bool { return p.Active && containsFold(p.Name, term) }, limit), nil
}

func (r *PartnerRepo) filter(keep func(*entity.Partner) bool, limit int) []*entity.Partner {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Partner, 0)
	for _, p := range r.s.partners {
		p := p
		if keep(&p) {
			list = append(list, &p)
		}
	}
	sortByName(list, func(p *entity.Partner) string { return p.Name }, func(p *entity.Partner) string { return p.ID })
	return limitSlice(list, limit)
}

// checkDNI requiere r.s.mu tomado.
func (r *PartnerRepo) checkDNI(p *entity.Partner) error {
	if p.DNI == "" {
		return nil
	}
	for id, other := range r.s.partners {
		if id != p.ID && other.DNI == p.DNI {
			return &domain.DuplicateError{Field: "dni"}
		}
	}
	return nil
}
