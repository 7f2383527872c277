package v1

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shario-backend/internal/domain"
	"shario-backend/pkg/apperror"
)

// principalID returns the authenticated user's id from the request context.
// Present whenever the auth middleware ran; the error path covers a route
// wired without it.
func principalID(c *gin.Context) (primitive.ObjectID, error) {
	raw := c.GetString(string(domain.KeyUserID))
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperror.Unauthorized("Not authenticated")
	}
	return id, nil
}

// pathID parses an ObjectID path parameter. A malformed id cannot address
// any document, so it maps to NotFound.
func pathID(c *gin.Context, param, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		return primitive.NilObjectID, apperror.NotFound(what + " not found")
	}
	return id, nil
}
