package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
	"github.com/rafabene/blogfeed-backend/internal/domain/repositories"
	"github.com/rafabene/blogfeed-backend/internal/domain/valueobjects"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Em :memory:, cada conexão nova do pool é um banco vazio distinto
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&UserModel{}, &PostModel{}))
	return db
}

func mustEmail(t *testing.T, raw string) valueobjects.Email {
	t.Helper()
	email, err := valueobjects.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func strptr(s string) *string { return &s }

func TestUserRepository_CreateComNestedPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		Email: mustEmail(t, "alice@example.com"),
		Name:  strptr("Alice"),
		Posts: []entities.Post{
			{Title: "Primeiro post"},
			{Title: "Segundo post", Content: strptr("conteúdo")},
		},
	}

	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	// Os posts aninhados devem existir e estar vinculados ao usuário
	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Posts, 2)
	for _, post := range found.Posts {
		require.NotNil(t, post.AuthorID)
		assert.Equal(t, user.ID, *post.AuthorID)
		assert.False(t, post.Published)
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Email: mustEmail(t, "bob@example.com")}))

	found, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "bob@example.com", found.Email.String())

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_EmailUnico(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Email: mustEmail(t, "dup@example.com")}))

	// O índice único é a garantia final contra emails duplicados
	err := repo.Create(ctx, &entities.User{Email: mustEmail(t, "dup@example.com")})
	assert.Error(t, err)

	users, err := repo.List(ctx, repositories.UserListOptions{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_ListIncludePosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{
		Email: mustEmail(t, "carol@example.com"),
		Posts: []entities.Post{{Title: "Post da Carol"}},
	}))

	// Sem posts por padrão
	users, err := repo.List(ctx, repositories.UserListOptions{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Posts)

	// Com posts quando solicitado
	users, err = repo.List(ctx, repositories.UserListOptions{IncludePosts: true})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Len(t, users[0].Posts, 1)
}

func TestPostRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &entities.Post{Title: "Hello", Content: strptr("world")}
	require.NoError(t, repo.Create(ctx, post))
	assert.NotZero(t, post.ID)

	found, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Hello", found.Title)
	assert.False(t, found.Published)
	assert.Nil(t, found.AuthorID)

	found.Publish()
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, updated.Published)

	require.NoError(t, repo.Delete(ctx, post.ID))

	missing, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostRepository_ListPublished(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	author := &entities.User{Email: mustEmail(t, "dave@example.com")}
	require.NoError(t, userRepo.Create(ctx, author))

	published := &entities.Post{Title: "Publicado", Published: true, AuthorID: &author.ID}
	draft := &entities.Post{Title: "Rascunho", AuthorID: &author.ID}
	orphan := &entities.Post{Title: "Órfão publicado", Published: true}
	require.NoError(t, postRepo.Create(ctx, published))
	require.NoError(t, postRepo.Create(ctx, draft))
	require.NoError(t, postRepo.Create(ctx, orphan))

	feed, err := postRepo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// O feed nunca contém posts não publicados
	for _, post := range feed {
		assert.True(t, post.Published)
	}

	// Autor carregado quando houver
	for _, post := range feed {
		if post.AuthorID != nil {
			require.NotNil(t, post.Author)
			assert.Equal(t, "dave@example.com", post.Author.Email.String())
		} else {
			assert.Nil(t, post.Author)
		}
	}
}

func TestPostRepository_DetachAuthor(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	author := &entities.User{Email: mustEmail(t, "eve@example.com")}
	require.NoError(t, userRepo.Create(ctx, author))

	post := &entities.Post{Title: "Vai ficar órfão", AuthorID: &author.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	require.NoError(t, postRepo.DetachAuthor(ctx, author.ID))

	// O post permanece, sem autor
	orphan, err := postRepo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.AuthorID)
}

func TestUnitOfWork_RollbackDescartaEscritas(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	boom := assert.AnError
	err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := userRepo.Create(txCtx, &entities.User{Email: mustEmail(t, "tx@example.com")}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Nada deve ter sido persistido
	found, err := userRepo.FindByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}
