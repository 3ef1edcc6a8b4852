package api

import (
	"time"

	"github.com/brightpath-arts/site-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(projects ProjectStore, images storage.ImageStore, db Pinger, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(projects, images),
		imageHandler:   newImageHandler(images),
		healthHandler:  newHealthHandler(db, startupTime),
	}
}
