package api

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightpath-arts/site-backend/database"
	"github.com/brightpath-arts/site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	imageHandler   imageHandler
	healthHandler  healthHandler
}

// ProjectStore is the slice of the project repository the handlers use.
type ProjectStore interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindByCategory(ctx context.Context, category models.Category) ([]*models.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Replace(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Reorder(ctx context.Context, updates []database.OrderUpdate) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MsgResponse is the wire shape for message and error bodies.
// @Description Message response structure
type MsgResponse struct {
	Msg string `json:"msg" example:"Project removed"`
}
