package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shario-backend/internal/delivery/http/response"
	"shario-backend/internal/domain"
	"shario-backend/pkg/apperror"
	"shario-backend/pkg/validation"
)

type ResourceHandler struct {
	resourceUC domain.ResourceUsecase
}

func NewResourceHandler(public *gin.RouterGroup, protected *gin.RouterGroup, resourceUC domain.ResourceUsecase) {
	handler := &ResourceHandler{resourceUC: resourceUC}

	// PUBLIC routes - browsing requires no authentication
	publicResources := public.Group("/resources")
	{
		publicResources.GET("", handler.List)
		publicResources.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes - every mutation passes the auth middleware
	protectedResources := protected.Group("/resources")
	{
		protectedResources.POST("", handler.Create)
		protectedResources.PUT("/:id", handler.Update)
		protectedResources.DELETE("/:id", handler.Delete)
		protectedResources.POST("/:id/like", handler.ToggleLike)
	}
}

type CreateResourceRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=2000"`
	URL         string   `json:"url" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=video article book course podcast tool documentation other"`
	Skills      []string `json:"skills" binding:"required,min=1"`
	Tags        []string `json:"tags"`
	Difficulty  string   `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Duration    int      `json:"duration" binding:"omitempty,gte=0"`
	Thumbnail   string   `json:"thumbnail"`
}

type UpdateResourceRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	URL         *string  `json:"url"`
	Type        *string  `json:"type" binding:"omitempty,oneof=video article book course podcast tool documentation other"`
	Skills      []string `json:"skills"`
	Tags        []string `json:"tags"`
	Difficulty  *string  `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Duration    *int     `json:"duration" binding:"omitempty,gte=0"`
	Thumbnail   *string  `json:"thumbnail"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft published"`
}

// Create godoc
// @Summary      Share a learning resource
// @Description  Create a resource; the AI classifier merges a category and tags into skills/tags.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource  body      CreateResourceRequest  true  "Resource JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /resources [post]
// @Security     BearerAuth
func (h *ResourceHandler) Create(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	resource, err := h.resourceUC.Create(c.Request.Context(), userID, domain.CreateResourceInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Type:        req.Type,
		Skills:      req.Skills,
		Tags:        req.Tags,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resource created", gin.H{"resource": resource})
}

// List godoc
// @Summary      Browse published resources
// @Description  List published resources with optional filters, newest first.
// @Tags         resources
// @Produce      json
// @Param        skill       query  string  false  "Exact skill membership"
// @Param        type        query  string  false  "Resource type"
// @Param        difficulty  query  string  false  "Difficulty level"
// @Param        search      query  string  false  "Free-text match on title/description"
// @Param        page        query  int     false  "1-indexed page"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	filter := domain.ResourceFilter{
		Skill:      c.Query("skill"),
		Type:       c.Query("type"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resources, total, err := h.resourceUC.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	pages := (total + int64(limit) - 1) / int64(limit)

	response.Success(c, http.StatusOK, "Resources fetched", gin.H{
		"resources": resources,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetDetails godoc
// @Summary      Get a resource
// @Tags         resources
// @Produce      json
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resources/{id} [get]
func (h *ResourceHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "id", "Resource")
	if err != nil {
		c.Error(err)
		return
	}

	resource, err := h.resourceUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource fetched", gin.H{"resource": resource})
}

// Update godoc
// @Summary      Update a resource
// @Description  Partial update; only the owner may modify a resource.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id        path      string                 true  "Resource ID"
// @Param        resource  body      UpdateResourceRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resources/{id} [put]
// @Security     BearerAuth
func (h *ResourceHandler) Update(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Resource")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	resource, err := h.resourceUC.Update(c.Request.Context(), userID, id, domain.ResourceUpdate{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Type:        req.Type,
		Skills:      req.Skills,
		Tags:        req.Tags,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Thumbnail:   req.Thumbnail,
		Status:      req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource updated", gin.H{"resource": resource})
}

// Delete godoc
// @Summary      Delete a resource
// @Description  Permanent removal; only the owner may delete a resource.
// @Tags         resources
// @Produce      json
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resources/{id} [delete]
// @Security     BearerAuth
func (h *ResourceHandler) Delete(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Resource")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.resourceUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource deleted", nil)
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Adds or removes the caller from the resource's likes.
// @Tags         resources
// @Produce      json
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resources/{id}/like [post]
// @Security     BearerAuth
func (h *ResourceHandler) ToggleLike(c *gin.Context) {
	userID, err := principalID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id", "Resource")
	if err != nil {
		c.Error(err)
		return
	}

	liked, likes, err := h.resourceUC.ToggleLike(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Resource liked"
	if !liked {
		message = "Like removed"
	}
	response.Success(c, http.StatusOK, message, gin.H{"liked": liked, "likes": likes})
}
