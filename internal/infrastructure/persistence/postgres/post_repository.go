package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
	"github.com/rafabene/blogfeed-backend/internal/domain/repositories"
)

// PostRepository implementa repositories.PostRepository
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository cria um novo PostRepository
func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	model := postToModel(post)

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	post.ID = model.ID
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*entities.Post, error) {
	var model PostModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return postToEntity(&model)
}

func (r *PostRepository) ListPublished(ctx context.Context) ([]*entities.Post, error) {
	var models []*PostModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("Author").
		Where("published = ?", true).
		Find(&models).Error; err != nil {
		return nil, err
	}

	return postsToEntities(models)
}

func (r *PostRepository) Update(ctx context.Context, post *entities.Post) error {
	model := postToModel(post)

	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Delete(&PostModel{}, id).Error
}

func (r *PostRepository) DetachAuthor(ctx context.Context, authorID uint) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).
		Model(&PostModel{}).
		Where("author_id = ?", authorID).
		Update("author_id", nil).Error
}

// Conversores
func postToModel(post *entities.Post) *PostModel {
	return &PostModel{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// postToEntityShallow converte sem tocar na associação Author
func postToEntityShallow(model *PostModel) *entities.Post {
	return &entities.Post{
		ID:        model.ID,
		Title:     model.Title,
		Content:   model.Content,
		Published: model.Published,
		AuthorID:  model.AuthorID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func postToEntity(model *PostModel) (*entities.Post, error) {
	post := postToEntityShallow(model)

	if model.Author != nil {
		author, err := userToEntity(model.Author)
		if err != nil {
			return nil, err
		}
		post.Author = author
	}

	return post, nil
}

func postsToEntities(models []*PostModel) ([]*entities.Post, error) {
	posts := make([]*entities.Post, 0, len(models))

	for _, model := range models {
		post, err := postToEntity(model)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}
