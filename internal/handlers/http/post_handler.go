package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/blogfeed-backend/internal/domain/errors"
	"github.com/rafabene/blogfeed-backend/internal/handlers/dto"
	"github.com/rafabene/blogfeed-backend/internal/services"
)

// PostHandler lida com requisições HTTP relacionadas a posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler cria um novo PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost cria um novo post (sempre como rascunho)
//
//	@Summary		Create post
//	@Description	Creates a draft post; authorEmail links it to an existing user
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			post	body		dto.CreatePostRequest	true	"Post payload"
//	@Success		200		{object}	dto.PostResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/post [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// GetPost busca um post por ID.
// Mantém o contrato original da rota: post inexistente responde 200 com
// corpo JSON null, não 404.
//
//	@Summary	Get post by id
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	dto.PostResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/post/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrPostNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Feed lista os posts publicados, com autor
//
//	@Summary	Published posts feed
//	@Tags		posts
//	@Produce	json
//	@Success	200	{array}	dto.PostResponse
//	@Router		/feed [get]
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.postService.Feed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// PublishPost marca um post como publicado
//
//	@Summary	Publish post
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	dto.PostResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/post/publish/{id} [put]
func (h *PostHandler) PublishPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postService.PublishPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// DeletePost remove um post e retorna o registro removido
//
//	@Summary	Delete post
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	dto.PostResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/post/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postService.DeletePost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}
