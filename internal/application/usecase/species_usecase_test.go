package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroapp/agroapp-api/internal/application/dto"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
	"github.com/agroapp/agroapp-api/internal/domain"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
	"github.com/agroapp/agroapp-api/internal/domain/forms"
)

// Tests del caso de uso de especies: el nombre pasa por la allow-list del
// motor de formularios antes de tocar el repositorio.

func TestSpeciesCreate_Valida(t *testing.T) {
	repo := newFakeSpeciesRepo()
	uc := usecase.NewSpeciesUseCase(repo)

	resp, err := uc.Create(dto.SaveSpeciesRequest{SpecieName: "  Cerdo Ibérico  "})
	require.NoError(t, err)
	assert.Equal(t, "Cerdo Ibérico", resp.SpecieName, "el nombre se persiste recortado")
	assert.Equal(t, 1, repo.creates)
}

func TestSpeciesCreate_CaracteresProhibidos(t *testing.T) {
	repo := newFakeSpeciesRepo()
	uc := usecase.NewSpeciesUseCase(repo)

	_, err := uc.Create(dto.SaveSpeciesRequest{SpecieName: "Pollo<script>"})

	verr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, forms.CodeInvalidCharacters, verr.Violations[0].Code)
	assert.Equal(t, 0, repo.creates, "un nombre rechazado nunca se persiste")
}

func TestSpeciesCreate_NombreVacio(t *testing.T) {
	repo := newFakeSpeciesRepo()
	uc := usecase.NewSpeciesUseCase(repo)

	_, err := uc.Create(dto.SaveSpeciesRequest{SpecieName: "   "})

	verr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, forms.CodeRequired, verr.Violations[0].Code)
}

func TestSpeciesUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewSpeciesUseCase(newFakeSpeciesRepo())
	resp, err := uc.Update(404, dto.SaveSpeciesRequest{SpecieName: "Pollo"})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestSpeciesUpdate_CambiaElNombre(t *testing.T) {
	repo := newFakeSpeciesRepo(&entity.Species{ID: 1, Name: "Pollo"})
	uc := usecase.NewSpeciesUseCase(repo)

	resp, err := uc.Update(1, dto.SaveSpeciesRequest{SpecieName: "Gallina"})
	require.NoError(t, err)
	assert.Equal(t, "Gallina", resp.SpecieName)
	assert.Equal(t, 1, repo.updates)
}
