package formflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroapp/agroapp-api/internal/application/formflow"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del Registry: fallo de referencias, reintento, precarga de edición,
// cierre y barrido por inactividad.
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_FalloDeReferenciasBloqueaElFormulario(t *testing.T) {
	refs := defaultRefs()
	refs.setFail(forms.SetStates)
	reg := newTestRegistry(refs)

	s, err := reg.Open(context.Background(), "batch", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReferenceData)
	require.NotNil(t, s, "la sesión existe aunque la carga haya fallado, para poder reintentar")
	assert.Equal(t, formflow.StateReferenceError, s.State())

	// Mientras las referencias no carguen, el formulario no es editable.
	_, err = s.SetValues(map[string]string{forms.FieldUnitCost: "10"})
	assert.ErrorIs(t, err, domain.ErrReferenceData)

	_, _, err = s.Submit(&fakePersister{})
	assert.ErrorIs(t, err, domain.ErrReferenceData)
}

func TestReload_RecuperaSesionEnReferenceError(t *testing.T) {
	refs := defaultRefs()
	refs.setFail(forms.SetStates)
	reg := newTestRegistry(refs)

	s, err := reg.Open(context.Background(), "batch", nil)
	require.Error(t, err)
	require.Equal(t, formflow.StateReferenceError, s.State())

	// El proveedor se recupera: el reintento deja la sesión editable.
	refs.setFail("")
	s2, err := reg.Reload(context.Background(), s.ID())
	require.NoError(t, err)
	assert.Same(t, s, s2, "Reload opera sobre la misma sesión")
	assert.Equal(t, formflow.StateEditing, s.State())

	_, err = s.SetValues(validBatchValues())
	assert.NoError(t, err)
}

func TestOpen_EdicionPrecargaElRegistro(t *testing.T) {
	refs := defaultRefs()
	records := &fakeRecords{snaps: map[string]map[string]string{
		"species/5": {forms.FieldSpecieName: "Cerdo"},
	}}
	reg := formflow.NewRegistry(refs, records, time.Hour)

	id := int64(5)
	s, err := reg.Open(context.Background(), "species", &id)
	require.NoError(t, err)
	require.Equal(t, formflow.StateEditing, s.State())

	// El candidato precargado debe pasar la compuerta sin que el usuario toque nada.
	p := &fakePersister{}
	rec, viols, err := s.Submit(p)
	require.NoError(t, err)
	assert.Empty(t, viols)
	assert.NotNil(t, rec)
	assert.Equal(t, 0, p.creates, "editar un registro existente debe actualizar, no crear")
	assert.Equal(t, 1, p.updates)
}

func TestOpen_EdicionRegistroInexistente(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	id := int64(404)
	_, err := reg.Open(context.Background(), "species", &id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_SesionInexistente(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	_, err := reg.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClose_DescartaLaSesion(t *testing.T) {
	reg := newTestRegistry(defaultRefs())
	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)

	reg.Close(s.ID())
	_, err = reg.Get(s.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Cerrar una sesión que no existe no hace nada.
	reg.Close("no-existe")
}

func TestSweep_CierraSesionesAbandonadas(t *testing.T) {
	refs := defaultRefs()
	reg := formflow.NewRegistry(refs, &fakeRecords{}, 10*time.Millisecond)

	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	closed := reg.Sweep()
	assert.Equal(t, 1, closed, "la sesión inactiva por más del TTL debe barrerse")

	_, err = reg.Get(s.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSweep_NoTocaSesionesActivas(t *testing.T) {
	reg := formflow.NewRegistry(defaultRefs(), &fakeRecords{}, time.Hour)

	s, err := reg.Open(context.Background(), "batch", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, reg.Sweep())
	_, err = reg.Get(s.ID())
	assert.NoError(t, err)
}
