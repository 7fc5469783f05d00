package dto

import (
	"time"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
	"github.com/rafabene/blogfeed-backend/internal/services"
)

// CreatePostRequest representa a requisição para criar um post.
// authorEmail é opcional: quando informado, vincula o post a um usuário
// existente pelo email único.
type CreatePostRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Content     *string `json:"content" binding:"omitempty"`
	AuthorEmail *string `json:"authorEmail" binding:"omitempty,email"`
}

// ToInput converte a requisição para o input do service
func (r *CreatePostRequest) ToInput() services.CreatePostInput {
	return services.CreatePostInput{
		Title:       r.Title,
		Content:     r.Content,
		AuthorEmail: r.AuthorEmail,
	}
}

// PostResponse representa a resposta de um post
type PostResponse struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Content   *string       `json:"content"`
	Published bool          `json:"published"`
	AuthorID  *uint         `json:"authorId"`
	Author    *UserResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ToPostResponse converte uma entidade Post para PostResponse
func ToPostResponse(post *entities.Post) PostResponse {
	response := PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Author != nil {
		author := ToUserResponse(post.Author)
		response.Author = &author
	}
	return response
}

// ToPostResponses converte uma lista de entidades Post para PostResponse
func ToPostResponses(posts []*entities.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
