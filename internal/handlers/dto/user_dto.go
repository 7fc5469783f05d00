package dto

import (
	"time"

	"github.com/rafabene/blogfeed-backend/internal/domain/entities"
	"github.com/rafabene/blogfeed-backend/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário.
// Posts aninhados são opcionais e criados atomicamente junto com o usuário.
type CreateUserRequest struct {
	Email string                    `json:"email" binding:"required,email"`
	Name  *string                   `json:"name" binding:"omitempty,max=255"`
	Posts []CreateNestedPostRequest `json:"posts" binding:"omitempty,dive"`
}

// CreateNestedPostRequest representa um post aninhado na criação de usuário
type CreateNestedPostRequest struct {
	Title   string  `json:"title" binding:"required,max=255"`
	Content *string `json:"content" binding:"omitempty"`
}

// ToInput converte a requisição para o input do service
func (r *CreateUserRequest) ToInput() services.CreateUserInput {
	input := services.CreateUserInput{
		Email: r.Email,
		Name:  r.Name,
	}
	for _, p := range r.Posts {
		input.Posts = append(input.Posts, services.NestedPostInput{
			Title:   p.Title,
			Content: p.Content,
		})
	}
	return input
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        uint           `json:"id"`
	Email     string         `json:"email"`
	Name      *string        `json:"name"`
	Posts     []PostResponse `json:"posts,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	response := UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
	for i := range user.Posts {
		response.Posts = append(response.Posts, ToPostResponse(&user.Posts[i]))
	}
	return response
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
