package users

import "context"

// Repository son point lookups puros: las cuentas vienen sembradas y no
// hay pantalla que observe la colección completa.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}
