package services

import (
	"context"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
	"github.com/rafabene/blogfeed-backend/internal/domain/errors"
	"github.com/rafabene/blogfeed-backend/internal/domain/ports"
	"github.com/rafabene/blogfeed-backend/internal/domain/repositories"
	"github.com/rafabene/blogfeed-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
		uow:      uow,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email string
	Name  *string
	// Posts aninhados: criados atomicamente junto com o usuário
	Posts []NestedPostInput
}

// NestedPostInput representa um post aninhado na criação de usuário
type NestedPostInput struct {
	Title   string
	Content *string
}

// CreateUser cria um novo usuário, com posts aninhados opcionais.
// A escrita é atômica: usuário e posts são criados juntos ou nenhum é.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	s.logger.Info("creating user", "email", input.Email, "nested_posts", len(input.Posts))

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	user := &entities.User{
		Email: email,
		Name:  input.Name,
	}
	for _, p := range input.Posts {
		user.Posts = append(user.Posts, entities.Post{
			Title:   p.Title,
			Content: p.Content,
		})
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		// Validar se email já existe (o índice único é a garantia final)
		existing, err := s.userRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}

		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "email", email.String())
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários, opcionalmente com seus posts carregados
func (s *UserService) ListUsers(ctx context.Context, includePosts bool) ([]*entities.User, error) {
	return s.userRepo.List(ctx, repositories.UserListOptions{IncludePosts: includePosts})
}

// DeleteUser remove um usuário. Os posts do usuário não são removidos:
// dentro da mesma transação, author_id é anulado em todos eles antes da
// remoção da linha do usuário.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*entities.User, error) {
	var deleted *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

		if err := s.postRepo.DetachAuthor(txCtx, id); err != nil {
			return err
		}

		if err := s.userRepo.Delete(txCtx, id); err != nil {
			return err
		}

		deleted = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user deleted", "user_id", id)
	return deleted, nil
}
