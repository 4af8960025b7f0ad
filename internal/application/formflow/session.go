// Package formflow mantiene sesiones de captura del lado del servidor: una
// sesión por modal abierto. Cada sesión carga sus conjuntos de referencia,
// recalcula derivados con cada edición y corre la compuerta de validación al
// enviar. El envío es de vuelo único: mientras hay una persistencia en curso
// los reintentos se rechazan, nunca se duplica un registro.
package formflow

import (
	"fmt"
	"sync"
	"time"

	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// Estados de la máquina de una sesión.
const (
	StateLoading        = "loading"
	StateEditing        = "editing"
	StateReferenceError = "reference_error"
	StateSubmitting     = "submitting"
	StatePersisted      = "persisted"
)

// ReferenceSource carga un conjunto de opciones de referencia por nombre.
type ReferenceSource interface {
	Load(set string) ([]forms.Option, error)
}

// Persister persiste un candidato ya aceptado por la compuerta.
type Persister interface {
	Create(kind string, vals forms.Values) (interface{}, error)
	Update(kind string, id int64, vals forms.Values) (interface{}, error)
}

// RecordSource entrega el registro existente como valores crudos de control,
// para precargar el formulario al editar.
type RecordSource interface {
	Snapshot(kind string, id int64) (map[string]string, error)
}

// Session una sesión de formulario viva. Todos los métodos son seguros para
// uso concurrente.
type Session struct {
	mu sync.Mutex

	id       string
	kind     string
	spec     forms.FormSpec
	recordID *int64

	state      string
	generation int64
	raw        map[string]string
	refs       forms.OptionSets
	violations []forms.Violation
	result     interface{}
	lastTouch  time.Time
}

// ID identificador de la sesión.
func (s *Session) ID() string { return s.id }

// Kind tipo de registro que captura la sesión.
func (s *Session) Kind() string { return s.kind }

// State estado actual de la máquina.
func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Options copia de los conjuntos de referencia cargados, para poblar selects.
func (s *Session) Options() forms.OptionSets {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(forms.OptionSets, len(s.refs))
	for name, opts := range s.refs {
		out[name] = append([]forms.Option(nil), opts...)
	}
	return out
}

// Violations última lista de violaciones devuelta por la compuerta.
func (s *Session) Violations() []forms.Violation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]forms.Violation(nil), s.violations...)
}

// SetValues reemplaza los valores crudos enviados y recalcula los derivados.
// Un insumo inválido o ausente deja el derivado sin calcular: la clave
// desaparece del mapa y el cliente debe vaciar el control, nunca retener un
// total viejo. No corre la compuerta: eso pasa solo al enviar.
func (s *Session) SetValues(values map[string]string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateLoading, StateReferenceError:
		return nil, fmt.Errorf("%w: referencias sin cargar", domain.ErrReferenceData)
	case StateSubmitting:
		return nil, domain.ErrSubmitInFlight
	case StatePersisted:
		return nil, fmt.Errorf("%w: la sesión ya persistió", domain.ErrInvalidInput)
	}
	for k, val := range values {
		s.raw[k] = val
	}
	s.violations = nil
	s.lastTouch = time.Now()
	return s.derivedLocked(), nil
}

// derivedLocked recalcula los derivados con el candidato actual. Requiere mu.
func (s *Session) derivedLocked() map[string]string {
	v, _ := forms.Normalize(s.spec, s.raw)
	v = forms.Calculate(s.spec, v, s.refs)
	out := make(map[string]string, len(s.spec.Derived))
	for _, d := range s.spec.Derived {
		if val, ok := v.Derived(d.Name); ok {
			out[d.Name] = forms.DisplayDecimal(val)
		}
	}
	return out
}

// Derived derivados calculados con el candidato actual.
func (s *Session) Derived() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.derivedLocked()
}

// Submit corre la compuerta y, si acepta, persiste el candidato.
// Vuelo único: un segundo envío mientras el primero está en curso devuelve
// ErrSubmitInFlight. Si la persistencia falla, la sesión vuelve a edición con
// el candidato intacto. Un envío sobre una sesión ya persistida devuelve el
// mismo registro sin volver a escribir.
func (s *Session) Submit(p Persister) (interface{}, []forms.Violation, error) {
	s.mu.Lock()
	switch s.state {
	case StateLoading, StateReferenceError:
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("%w: referencias sin cargar", domain.ErrReferenceData)
	case StateSubmitting:
		s.mu.Unlock()
		return nil, nil, domain.ErrSubmitInFlight
	case StatePersisted:
		rec := s.result
		s.mu.Unlock()
		return rec, nil, nil
	}

	vals, violations := forms.Process(s.spec, s.raw, s.refs)
	if len(violations) > 0 {
		s.violations = violations
		s.lastTouch = time.Now()
		s.mu.Unlock()
		return nil, violations, nil
	}
	s.state = StateSubmitting
	s.violations = nil
	kind := s.kind
	recordID := s.recordID
	s.mu.Unlock()

	// Persistencia fuera del candado: puede tardar y otras goroutines deben
	// poder consultar el estado (y recibir ErrSubmitInFlight).
	var rec interface{}
	var err error
	if recordID != nil {
		rec, err = p.Update(kind, *recordID, vals)
	} else {
		rec, err = p.Create(kind, vals)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouch = time.Now()
	if err != nil {
		s.state = StateEditing
		if verr, ok := domain.AsValidation(err); ok {
			s.violations = verr.Violations
			return nil, verr.Violations, nil
		}
		return nil, nil, err
	}
	s.state = StatePersisted
	s.result = rec
	return rec, nil, nil
}

// idle tiempo sin actividad, para el barrido de sesiones abandonadas.
func (s *Session) idle(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastTouch)
}

// bumpGeneration invalida cualquier carga de referencias en curso.
func (s *Session) bumpGeneration() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}
