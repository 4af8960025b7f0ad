package usecase_test

import (
	"context"

	"github.com/agroapp/agroapp-api/internal/application/usecase"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Cuentan las llamadas
// de escritura para poder afirmar que un candidato rechazado nunca toca el
// repositorio.

type fakeSpeciesRepo struct {
	rows    map[int64]*entity.Species
	nextID  int64
	creates int
	updates int
	deletes int
}

func newFakeSpeciesRepo(rows ...*entity.Species) *fakeSpeciesRepo {
	r := &fakeSpeciesRepo{rows: make(map[int64]*entity.Species), nextID: 1}
	for _, s := range rows {
		r.rows[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *fakeSpeciesRepo) Create(s *entity.Species) error {
	r.creates++
	s.ID = r.nextID
	r.nextID++
	r.rows[s.ID] = s
	return nil
}

func (r *fakeSpeciesRepo) GetByID(id int64) (*entity.Species, error) { return r.rows[id], nil }

func (r *fakeSpeciesRepo) List() ([]*entity.Species, error) {
	out := make([]*entity.Species, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.rows[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSpeciesRepo) Update(s *entity.Species) error {
	r.updates++
	r.rows[s.ID] = s
	return nil
}

func (r *fakeSpeciesRepo) Delete(id int64) error {
	r.deletes++
	delete(r.rows, id)
	return nil
}

type fakeStateRepo struct{}

func (fakeStateRepo) GetByID(id int64) (*entity.State, error) {
	list, _ := fakeStateRepo{}.List()
	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (fakeStateRepo) List() ([]*entity.State, error) {
	return []*entity.State{
		{ID: entity.StateActive, Name: "Activo"},
		{ID: entity.StateInactive, Name: "Inactivo"},
	}, nil
}

type fakeBatchRepo struct {
	rows    map[int64]*entity.Batch
	nextID  int64
	creates int
	updates int
	// stateChanges registra cada UpdateState como par id/estado.
	stateChanges []struct{ ID, StateID int64 }
}

func newFakeBatchRepo(rows ...*entity.Batch) *fakeBatchRepo {
	r := &fakeBatchRepo{rows: make(map[int64]*entity.Batch), nextID: 1}
	for _, b := range rows {
		r.rows[b.ID] = b
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
	return r
}

func (r *fakeBatchRepo) Create(b *entity.Batch) error {
	r.creates++
	b.ID = r.nextID
	r.nextID++
	r.rows[b.ID] = b
	return nil
}

func (r *fakeBatchRepo) GetByID(id int64) (*entity.Batch, error)      { return r.rows[id], nil }
func (r *fakeBatchRepo) GetForUpdate(id int64) (*entity.Batch, error) { return r.rows[id], nil }

func (r *fakeBatchRepo) List() ([]*entity.Batch, error) {
	out := make([]*entity.Batch, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if b, ok := r.rows[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) ListByState(stateID int64) ([]*entity.Batch, error) {
	all, _ := r.List()
	out := make([]*entity.Batch, 0, len(all))
	for _, b := range all {
		if b.StateID == stateID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) Update(b *entity.Batch) error {
	r.updates++
	r.rows[b.ID] = b
	return nil
}

func (r *fakeBatchRepo) UpdateState(id, stateID int64) error {
	r.stateChanges = append(r.stateChanges, struct{ ID, StateID int64 }{id, stateID})
	if b, ok := r.rows[id]; ok {
		b.StateID = stateID
	}
	return nil
}

type fakeProductionRepo struct {
	rows    map[int64]*entity.Production
	nextID  int64
	creates int
}

func newFakeProductionRepo() *fakeProductionRepo {
	return &fakeProductionRepo{rows: make(map[int64]*entity.Production), nextID: 1}
}

func (r *fakeProductionRepo) Create(p *entity.Production) error {
	r.creates++
	p.ID = r.nextID
	r.nextID++
	r.rows[p.ID] = p
	return nil
}

func (r *fakeProductionRepo) GetByID(id int64) (*entity.Production, error) { return r.rows[id], nil }

func (r *fakeProductionRepo) List() ([]*entity.Production, error) {
	out := make([]*entity.Production, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente sobre los repositorios en
// memoria; no hay transacción real que abrir.
type fakeTxRunner struct {
	batches *fakeBatchRepo
	prods   *fakeProductionRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	batchRepo repository.BatchRepository,
	prodRepo repository.ProductionRepository,
) error) error {
	return fn(r.batches, r.prods)
}

var _ usecase.ProductionTxRunner = (*fakeTxRunner)(nil)

// newTestRefService proveedor de referencia sobre los repositorios en memoria.
func newTestRefService(species *fakeSpeciesRepo, batches *fakeBatchRepo) *usecase.ReferenceService {
	return usecase.NewReferenceService(species, fakeStateRepo{}, batches, nil, nil, nil)
}
