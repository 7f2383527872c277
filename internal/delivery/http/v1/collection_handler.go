package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shario-backend/internal/delivery/http/response"
	"shario-backend/internal/domain"
	"shario-backend/pkg/apperror"
	"shario-backend/pkg/validation"
)

type CollectionHandler struct {
	collectionUC domain.CollectionUsecase
}

func NewCollectionHandler(protected *gin.RouterGroup, collectionUC domain.CollectionUsecase) {
	handler := &CollectionHandler{collectionUC: collectionUC}

	collections := protected.Group("/collections")
	{
		collections.POST("", handler.Create)
		collections.GET("", handler.ListMine)
		collections.GET("/:id", handler.GetDetails)
		collections.PUT("/:id", handler.Update)
		collections.DELETE("/:id", handler.Delete)
		collections.POST("/:id/resources/:resourceId", handler.AddResource)
		collections.DELETE("/:id/resources/:resourceId", handler.RemoveResource)
	}
}

type CreateCollectionRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	IsPublic    *bool  `json:"is_public"`
}

type UpdateCollectionRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsPublic    *bool   `json:"is_public"`
}

// Create godoc
// @Summary      Create a collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        collection  body      CreateCollectionRequest  true  "Collection JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /collections [post]
// @Security     BearerAuth
func (h *CollectionHandler) Create(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	col, err := h.collectionUC.Create(c.Request.Context(), userID, domain.CreateCollectionInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Collection created", gin.H{"collection": col})
}

// ListMine godoc
// @Summary      List the caller's collections
// @Tags         collections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /collections [get]
// @Security     BearerAuth
func (h *CollectionHandler) ListMine(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}

	collections, err := h.collectionUC.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Collections fetched", gin.H{"collections": collections})
}

// GetDetails godoc
// @Summary      Get a collection
// @Description  Private collections are visible to their owner only.
// @Tags         collections
// @Produce      json
// @Param        id   path      string  true  "Collection ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id} [get]
// @Security     BearerAuth
func (h *CollectionHandler) GetDetails(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Collection")
	if err != nil {
		c.Error(err)
		return
	}

	col, err := h.collectionUC.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Collection fetched", gin.H{"collection": col})
}

// Update godoc
// @Summary      Update a collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        id          path      string                   true  "Collection ID"
// @Param        collection  body      UpdateCollectionRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id} [put]
// @Security     BearerAuth
func (h *CollectionHandler) Update(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Collection")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	col, err := h.collectionUC.Update(c.Request.Context(), userID, id, domain.CollectionUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Collection updated", gin.H{"collection": col})
}

// Delete godoc
// @Summary      Delete a collection
// @Tags         collections
// @Produce      json
// @Param        id   path      string  true  "Collection ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id} [delete]
// @Security     BearerAuth
func (h *CollectionHandler) Delete(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Collection")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.collectionUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Collection deleted", nil)
}

// AddResource godoc
// @Summary      Add a resource to a collection
// @Tags         collections
// @Produce      json
// @Param        id          path      string  true  "Collection ID"
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id}/resources/{resourceId} [post]
// @Security     BearerAuth
func (h *CollectionHandler) AddResource(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Collection")
	if err != nil {
		c.Error(err)
		return
	}
	resourceID, err := pathID(c, "resourceId", "Resource")
	if err != nil {
		c.Error(err)
		return
	}

	col, err := h.collectionUC.AddResource(c.Request.Context(), userID, id, resourceID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource added to collection", gin.H{"collection": col})
}

// RemoveResource godoc
// @Summary      Remove a resource from a collection
// @Tags         collections
// @Produce      json
// @Param        id          path      string  true  "Collection ID"
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id}/resources/{resourceId} [delete]
// @Security     BearerAuth
func (h *CollectionHandler) RemoveResource(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Collection")
	if err != nil {
		c.Error(err)
		return
	}
	resourceID, err := pathID(c, "resourceId", "Resource")
	if err != nil {
		c.Error(err)
		return
	}

	col, err := h.collectionUC.RemoveResource(c.Request.Context(), userID, id, resourceID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource removed from collection", gin.H{"collection": col})
}
