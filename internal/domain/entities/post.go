package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidPostData = errors.New("invalid post data")
)

// Post representa uma publicação do blog. Um post pode existir sem autor:
// AuthorID é nil quando o post é órfão (criado sem autor, ou quando o
// autor foi removido).
type Post struct {
	ID        uint
	Title     string
	Content   *string
	Published bool
	AuthorID  *uint
	Author    *User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Publish marca o post como publicado. Essa é a única transição possível:
// um post nunca volta de published=true para false.
func (p *Post) Publish() {
	p.Published = true
}

// HasAuthor verifica se o post está vinculado a um autor
func (p *Post) HasAuthor() bool {
	return p.AuthorID != nil
}

// Validate valida regras de negócio da entidade Post
func (p *Post) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}

	return nil
}
