package repository

import (
	"context"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// StaffRepository define el puerto de lectura de staff (DIP). El alta y la
// edición de staff pertenecen al dashboard administrativo; este servicio
// nunca escribe en esa tabla.
type StaffRepository interface {
	// FindByPIN devuelve el staff activo cuyo PIN coincide, o (nil, nil) si no hay.
	FindByPIN(ctx context.Context, pin string) (*entity.StaffMember, error)
	GetByID(ctx context.Context, id string) (*entity.StaffMember, error)
	List(ctx context.Context) ([]*entity.StaffMember, error)
}
