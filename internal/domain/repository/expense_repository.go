package repository

import "github.com/agroapp/agroapp-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para gastos de producción.
// Hay creación y edición en sitio; no hay camino de borrado.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	GetByID(id int64) (*entity.Expense, error)
	List() ([]*entity.Expense, error)
	Update(e *entity.Expense) error
}
