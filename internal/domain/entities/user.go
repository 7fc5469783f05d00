package entities

import (
	"errors"
	"time"

	"github.com/rafabene/blogfeed-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um autor do sistema. O email é único e serve de chave
// alternativa de lookup (ex: authorEmail na criação de posts).
type User struct {
	ID        uint
	Email     valueobjects.Email
	Name      *string
	Posts     []Post
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	for i := range u.Posts {
		if err := u.Posts[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
