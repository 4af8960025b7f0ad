package formflow_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroapp/agroapp-api/internal/application/formflow"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

// fakeRefs sirve conjuntos de opciones fijos; puede fallar un conjunto concreto.
type fakeRefs struct {
	mu      sync.Mutex
	sets    map[string][]forms.Option
	failSet string
	calls   int
}

func (f *fakeRefs) Load(set string) ([]forms.Option, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if set == f.failSet {
		return nil, errors.New("conexión rechazada")
	}
	return f.sets[set], nil
}

func (f *fakeRefs) setFail(set string) {
	f.mu.Lock()
	f.failSet = set
	f.mu.Unlock()
}

// fakePersister cuenta las persistencias; release permite retener el envío en
// curso para probar el vuelo único.
type fakePersister struct {
	mu      sync.Mutex
	creates int
	updates int
	err     error
	release chan struct{} // nil: no bloquea
}

func (f *fakePersister) Create(kind string, vals forms.Values) (interface{}, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"kind": kind, "id": int64(f.creates)}, nil
}

func (f *fakePersister) Update(kind string, id int64, vals forms.Values) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"kind": kind, "id": id}, nil
}

func (f *fakePersister) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates
}

// fakeRecords snapshot fijo por (kind, id).
type fakeRecords struct {
	snaps map[string]map[string]string
}

func (f *fakeRecords) Snapshot(kind string, id int64) (map[string]string, error) {
	return f.snaps[fmt.Sprintf("%s/%d", kind, id)], nil
}

func defaultRefs() *fakeRefs {
	return &fakeRefs{sets: map[string][]forms.Option{
		forms.SetSpecies:           {{ID: 1, Name: "Pollo"}},
		forms.SetStates:            {{ID: 1, Name: "Activo"}, {ID: 2, Name: "Inactivo"}},
		forms.SetBatches:           {{ID: 7, Name: "Lote 7", Headcount: 100}},
		forms.SetSupplies:          {{ID: 3, Name: "Concentrado"}},
		forms.SetSupplyCategories:  {{ID: 1, Name: "Alimento"}},
		forms.SetNoveltyCategories: {{ID: 1, Name: "Mortalidad"}},
	}}
}

func newTestRegistry(refs *fakeRefs) *formflow.Registry {
	return formflow.NewRegistry(refs, &fakeRecords{snaps: map[string]map[string]string{}}, time.Hour)
}

func validBatchValues() map[string]string {
	return map[string]string{
		forms.FieldSpeciesID:     "1",
		forms.FieldStateID:       "1",
		forms.FieldUnitCost:      "12.5",
		forms.FieldTotalQuantity: "40",
		forms.FieldWeightBatch:   "50",
		forms.FieldAgeBatch:      "0",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de la sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_CargaReferenciasYQuedaEnEdicion(t *testing.T) {
	reg := newTestRegistry(defaultRefs())

	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)
	assert.Equal(t, formflow.StateEditing, s.State())

	opts := s.Options()
	assert.Len(t, opts[forms.SetSpecies], 1, "el conjunto de especies debe estar cargado")
	assert.Len(t, opts[forms.SetStates], 2, "el conjunto de estados debe estar cargado")
}

func TestOpen_TipoDesconocido(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	_, err := reg.Open(context.Background(), "factura", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetValues_RecalculaDerivados(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)

	derived, err := s.SetValues(map[string]string{
		forms.FieldUnitCost:      "12.5",
		forms.FieldTotalQuantity: "40",
	})
	require.NoError(t, err)
	assert.Equal(t, "500.00", derived[forms.FieldCost])

	// La cantidad pasa a inválida: la clave del derivado desaparece, el cliente
	// debe vaciar el control.
	derived, err = s.SetValues(map[string]string{forms.FieldTotalQuantity: "abc"})
	require.NoError(t, err)
	_, ok := derived[forms.FieldCost]
	assert.False(t, ok, "el derivado con insumo inválido no debe aparecer en la respuesta")
}

func TestSubmit_PersisteCandidatoAceptado(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)

	_, err = s.SetValues(validBatchValues())
	require.NoError(t, err)

	p := &fakePersister{}
	rec, viols, err := s.Submit(p)
	require.NoError(t, err)
	assert.Empty(t, viols)
	assert.NotNil(t, rec)
	assert.Equal(t, formflow.StatePersisted, s.State())
	assert.Equal(t, 1, p.createCount())
}

func TestSubmit_ViolacionesNoTocanPersistencia(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)

	_, err = s.SetValues(map[string]string{forms.FieldUnitCost: "-5"})
	require.NoError(t, err)

	p := &fakePersister{}
	rec, viols, err := s.Submit(p)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NotEmpty(t, viols, "un candidato incompleto debe ser rechazado por la compuerta")
	assert.Equal(t, 0, p.createCount(), "con violaciones no debe haber ninguna persistencia")
	assert.Equal(t, formflow.StateEditing, s.State(), "la sesión sigue editable")
	assert.Equal(t, viols, s.Violations(), "las violaciones quedan consultables en la sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vuelo único
// ──────────────────────────────────────────────────────────────────────────────

// TestSubmit_VueloUnico un doble clic de enviar produce exactamente una
// persistencia: el segundo envío recibe ErrSubmitInFlight mientras el primero
// sigue en curso.
func TestSubmit_VueloUnico(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)
	_, err = s.SetValues(validBatchValues())
	require.NoError(t, err)

	p := &fakePersister{release: make(chan struct{})}

	firstDone := make(chan error, 1)
	go func() {
		_, _, err := s.Submit(p)
		firstDone <- err
	}()

	// Esperar a que el primer envío entre en submitting.
	require.Eventually(t, func() bool {
		return s.State() == formflow.StateSubmitting
	}, time.Second, 5*time.Millisecond)

	_, _, err = s.Submit(p)
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight, "el reintento durante el vuelo debe rechazarse")

	_, err = s.SetValues(map[string]string{forms.FieldAgeBatch: "3"})
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight, "editar durante el vuelo también se rechaza")

	close(p.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, p.createCount(), "debe haber exactamente una persistencia")
}

// TestSubmit_ReenvioTrasPersistirEsIdempotente reenviar una sesión ya
// persistida devuelve el mismo registro sin escribir de nuevo.
func TestSubmit_ReenvioTrasPersistirEsIdempotente(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)
	_, err = s.SetValues(validBatchValues())
	require.NoError(t, err)

	p := &fakePersister{}
	rec1, _, err := s.Submit(p)
	require.NoError(t, err)

	rec2, viols, err := s.Submit(p)
	require.NoError(t, err)
	assert.Empty(t, viols)
	assert.Equal(t, rec1, rec2, "el reenvío devuelve el registro ya persistido")
	assert.Equal(t, 1, p.createCount(), "no debe haber una segunda escritura")
}

func TestSubmit_FalloDePersistenciaVuelveAEdicion(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)
	_, err = s.SetValues(validBatchValues())
	require.NoError(t, err)

	p := &fakePersister{err: errors.New("deadlock detectado")}
	_, _, err = s.Submit(p)
	require.Error(t, err)
	assert.Equal(t, formflow.StateEditing, s.State(), "tras el fallo la sesión vuelve a edición")

	// El candidato sigue intacto: un reintento con un persister sano funciona.
	ok := &fakePersister{}
	rec, viols, err := s.Submit(ok)
	require.NoError(t, err)
	assert.Empty(t, viols)
	assert.NotNil(t, rec, "el reintento debe persistir el mismo candidato sin reescribirlo")
}

// TestSubmit_ValidacionDelPersisterSeReportaComoViolaciones si la capa de
// persistencia corre su propia compuerta y rechaza, las violaciones vuelven a
// la sesión en lugar de un error opaco.
func TestSubmit_ValidacionDelPersisterSeReportaComoViolaciones(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)
	_, err = s.SetValues(validBatchValues())
	require.NoError(t, err)

	want := []forms.Violation{{Field: forms.FieldSpeciesID, Code: forms.CodeUnknownReference, Message: "la especie fue eliminada"}}
	p := &fakePersister{err: &domain.ValidationError{Violations: want}}

	rec, viols, err := s.Submit(p)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, want, viols)
	assert.Equal(t, formflow.StateEditing, s.State())
}
