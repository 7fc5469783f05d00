package repositories

import (
	"context"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	// Create persiste o usuário e os posts aninhados (se houver) na mesma
	// operação. O ID gerado é escrito de volta na entidade.
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, opts UserListOptions) ([]*entities.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserListOptions contém opções para listagem de usuários
type UserListOptions struct {
	IncludePosts bool // Carregar os posts de cada usuário
}
