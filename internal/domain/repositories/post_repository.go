package repositories

import (
	"context"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
)

// PostRepository define a interface para persistência de posts
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id uint) (*entities.Post, error)
	// ListPublished retorna apenas posts com published=true, com o autor
	// carregado (quando houver). A ordem não faz parte do contrato.
	ListPublished(ctx context.Context) ([]*entities.Post, error)
	Update(ctx context.Context, post *entities.Post) error
	Delete(ctx context.Context, id uint) error
	// DetachAuthor desvincula todos os posts de um autor (author_id = NULL).
	// Usado na remoção de usuários: posts nunca são removidos em cascata.
	DetachAuthor(ctx context.Context, authorID uint) error
}
