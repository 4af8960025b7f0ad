package formflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// Registry guarda las sesiones de formulario vivas, indexadas por id.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	refs    ReferenceSource
	records RecordSource
	ttl     time.Duration
}

// NewRegistry construye el registro. ttl es el tiempo máximo de inactividad
// antes de que el barrido cierre una sesión abandonada.
func NewRegistry(refs ReferenceSource, records RecordSource, ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		refs:     refs,
		records:  records,
		ttl:      ttl,
	}
}

// Open crea una sesión para un tipo de registro y carga sus conjuntos de
// referencia en paralelo. Si alguna carga falla, la sesión queda en
// reference_error: el formulario no es editable hasta un Reload exitoso.
// Con recordID se precargan los valores del registro existente.
func (r *Registry) Open(ctx context.Context, kind string, recordID *int64) (*Session, error) {
	spec, ok := forms.SpecFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: tipo de formulario %q", domain.ErrInvalidInput, kind)
	}

	s := &Session{
		id:        uuid.New().String(),
		kind:      kind,
		spec:      spec,
		recordID:  recordID,
		state:     StateLoading,
		raw:       make(map[string]string),
		refs:      make(forms.OptionSets),
		lastTouch: time.Now(),
	}
	if recordID != nil {
		snap, err := r.records.Snapshot(kind, *recordID)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			return nil, domain.ErrNotFound
		}
		s.raw = snap
	}

	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()

	if err := r.load(ctx, s); err != nil {
		return s, fmt.Errorf("%w: %v", domain.ErrReferenceData, err)
	}
	return s, nil
}

// Get devuelve una sesión viva o ErrNotFound.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// Reload reintenta la carga de referencias de una sesión en reference_error.
func (r *Registry) Reload(ctx context.Context, id string) (*Session, error) {
	s, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if err := r.load(ctx, s); err != nil {
		return s, fmt.Errorf("%w: %v", domain.ErrReferenceData, err)
	}
	return s, nil
}

// Close descarta una sesión. Las cargas de referencia en curso quedan
// invalidadas por el salto de generación: sus resultados se descartan al llegar.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.bumpGeneration()
	}
}

// Sweep recorre las sesiones y cierra las inactivas por más del TTL.
func (r *Registry) Sweep() int {
	now := time.Now()
	r.mu.Lock()
	var stale []string
	for id, s := range r.sessions {
		if s.idle(now) > r.ttl {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	return len(stale)
}

// RunSweeper barre periódicamente hasta que el contexto se cancele.
func (r *Registry) RunSweeper(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// load carga todos los conjuntos de referencia de la sesión en paralelo.
// Captura la generación al arrancar: si la sesión se cerró o se relanzó la
// carga mientras tanto, el resultado llega tarde y se descarta.
func (r *Registry) load(ctx context.Context, s *Session) error {
	gen := s.bumpGeneration()

	s.mu.Lock()
	s.state = StateLoading
	sets := referenceSets(s.spec)
	s.mu.Unlock()

	loaded := make([]([]forms.Option), len(sets))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range sets {
		g.Go(func() error {
			opts, err := r.refs.Load(name)
			if err != nil {
				return fmt.Errorf("cargar %s: %w", name, err)
			}
			loaded[i] = opts
			return nil
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		// Resultado obsoleto: otra carga o un cierre ganó la carrera.
		return nil
	}
	if err != nil {
		s.state = StateReferenceError
		return err
	}
	s.refs = make(forms.OptionSets, len(sets))
	for i, name := range sets {
		s.refs[name] = loaded[i]
	}
	s.state = StateEditing
	s.lastTouch = time.Now()
	return nil
}

// referenceSets nombres únicos de los conjuntos que el formulario necesita.
func referenceSets(spec forms.FormSpec) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range spec.Fields {
		if f.Kind == forms.KindReference && !seen[f.RefSet] {
			seen[f.RefSet] = true
			out = append(out, f.RefSet)
		}
	}
	return out
}
