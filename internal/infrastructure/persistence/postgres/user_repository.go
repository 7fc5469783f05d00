package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
	"github.com/rafabene/blogfeed-backend/internal/domain/repositories"
	"github.com/rafabene/blogfeed-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	db := dbFromContext(ctx, r.db)
	// GORM cria os posts associados na mesma operação (nested write)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	for i := range model.Posts {
		user.Posts[i].ID = model.Posts[i].ID
		user.Posts[i].AuthorID = model.Posts[i].AuthorID
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Posts").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) List(ctx context.Context, opts repositories.UserListOptions) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&UserModel{})

	if opts.IncludePosts {
		query = query.Preload("Posts")
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return usersToEntities(models)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.WithContext(ctx).Delete(&UserModel{}, id).Error
}

// Conversores
func userToModel(user *entities.User) *UserModel {
	model := &UserModel{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	for i := range user.Posts {
		post := &user.Posts[i]
		model.Posts = append(model.Posts, PostModel{
			ID:        post.ID,
			Title:     post.Title,
			Content:   post.Content,
			Published: post.Published,
		})
	}

	return model
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:        model.ID,
		Email:     email,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	for i := range model.Posts {
		post := postToEntityShallow(&model.Posts[i])
		user.Posts = append(user.Posts, *post)
	}

	return user, nil
}

func usersToEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := userToEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
