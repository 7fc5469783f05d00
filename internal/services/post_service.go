package services

import (
	"context"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
	"github.com/rafabene/blogfeed-backend/internal/domain/errors"
	"github.com/rafabene/blogfeed-backend/internal/domain/ports"
	"github.com/rafabene/blogfeed-backend/internal/domain/repositories"
	"github.com/rafabene/blogfeed-backend/internal/domain/valueobjects"
)

// PostService contém a lógica de negócio para posts
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewPostService cria um novo PostService
func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreatePostInput representa os dados para criar um post
type CreatePostInput struct {
	Title   string
	Content *string
	// AuthorEmail vincula o post a um usuário existente pelo email (chave
	// única). Se informado e nenhum usuário corresponder, a criação falha.
	AuthorEmail *string
}

// CreatePost cria um novo post, sempre como rascunho (published=false)
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*entities.Post, error) {
	s.logger.Info("creating post", "title", input.Title)

	post := &entities.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: false,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if input.AuthorEmail != nil && *input.AuthorEmail != "" {
		email, err := valueobjects.NewEmail(*input.AuthorEmail)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}

		author, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, errors.ErrAuthorNotFound
		}

		post.AuthorID = &author.ID
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created", "post_id", post.ID)
	return post, nil
}

// GetPost busca um post por ID
func (s *PostService) GetPost(ctx context.Context, id uint) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}
	return post, nil
}

// Feed retorna os posts publicados, com autor carregado
func (s *PostService) Feed(ctx context.Context) ([]*entities.Post, error) {
	return s.postRepo.ListPublished(ctx)
}

// PublishPost marca um post como publicado e retorna o registro atualizado
func (s *PostService) PublishPost(ctx context.Context, id uint) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	post.Publish()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post published", "post_id", id)
	return post, nil
}

// DeletePost remove um post e retorna o registro removido
func (s *PostService) DeletePost(ctx context.Context, id uint) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("post deleted", "post_id", id)
	return post, nil
}
