package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	GetByOwnerAndName(ctx context.Context, ownerID, name string) (Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)

	// Exists permite a otros módulos validar la referencia sin
	// cargar el registro completo (lo usa comments.PetChecker).
	Exists(ctx context.Context, id string) (bool, error)
}
