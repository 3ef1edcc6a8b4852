package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightpath-arts/site-backend/database"
	"github.com/brightpath-arts/site-backend/errs"
	"github.com/brightpath-arts/site-backend/models"
	"github.com/brightpath-arts/site-backend/storage"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
	images    storage.ImageStore
}

func newProjectHandler(projects ProjectStore, images storage.ImageStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		images:    images,
	}
}

// getAllProjects retrieves all projects in display order
// @Summary Get all projects
// @Description Retrieves all projects sorted by displayOrder, newest first within equal orders
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getProjectsByCategory retrieves projects with an exact category match
// @Summary Get projects by category
// @Description Retrieves projects whose category matches exactly, in display order
// @Tags Projects
// @Produce json
// @Param category path string true "Category" Enums(Artwork, Book, Other)
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /projects/category/{category} [get]
func (h projectHandler) getProjectsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := models.Category(chi.URLParam(r, "category"))

		// No category validation here: an unknown category simply
		// matches nothing and returns an empty list.
		projects, err := h.projects.FindByCategory(r.Context(), category)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a single project by ID
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {object} MsgResponse "Not Found - Project not found"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.lookupProject(w, r)
		if !ok {
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// lookupProject resolves the projectID route param to a stored project.
// An id that is not valid ObjectID hex is reported as not found, the
// same as a well-formed id that matches nothing.
func (h projectHandler) lookupProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	projectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectID"))
	if err != nil {
		h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
		return nil, false
	}

	project, err := h.projects.FindByID(r.Context(), projectID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
		return nil, false
	}
	if project == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
		return nil, false
	}
	return project, true
}

// createProject creates a new project from a multipart form with an image
// @Summary Create project
// @Description Creates a new project; requires an image file under the `image` field
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param category formData string true "Category" Enums(Artwork, Book, Other)
// @Param subcategory formData string true "Subcategory"
// @Param createdDate formData string true "Display date"
// @Param image formData file true "Image file (jpeg, jpg, png, gif, svg; max 5MB)"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} MsgResponse "Bad Request - missing or invalid field, bad image"
// @Failure 401 {object} MsgResponse "Unauthorized"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ok := h.parseUploadForm(w, r); !ok {
			return
		}

		file, header, err := r.FormFile(imageFormField)
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("Please upload an image"))
			return
		}
		defer file.Close()

		if err := validateUpload(header); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Category:    models.Category(r.FormValue("category")),
			Subcategory: r.FormValue("subcategory"),
			CreatedDate: r.FormValue("createdDate"),
		}
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, errs.BadRequest(err.Error()))
			return
		}

		filename, err := h.images.Store(r.Context(), file, header.Filename)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("store", header.Filename, err))
			return
		}
		project.ImageURL = h.images.PublicURL(filename)

		if err := h.projects.Add(r.Context(), &project); err != nil {
			// The record never made it in; drop the stored image.
			if delErr := h.images.Delete(r.Context(), filename); delErr != nil {
				h.logger.Warn().Err(delErr).Str("filename", filename).Msg("failed to remove image after create failure")
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().
			Str("projectID", project.ID.Hex()).
			Str("caller", ctxCallerID(r.Context())).
			Msg("project created")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project; all fields optional
// @Summary Update project
// @Description Updates a project from a multipart form; provided fields overwrite, omitted fields are kept. A new image replaces (and deletes) the old one.
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} MsgResponse "Bad Request - invalid field or bad image"
// @Failure 401 {object} MsgResponse "Unauthorized"
// @Failure 404 {object} MsgResponse "Not Found - Project not found"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.lookupProject(w, r)
		if !ok {
			return
		}

		if ok := h.parseUploadForm(w, r); !ok {
			return
		}

		update := models.ProjectUpdate{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Category:    models.Category(r.FormValue("category")),
			Subcategory: r.FormValue("subcategory"),
			CreatedDate: r.FormValue("createdDate"),
		}
		if update.Category != "" && !models.ValidCategory(update.Category) {
			h.responder.WriteError(w, errs.BadRequest("category must be one of Artwork, Book, Other"))
			return
		}
		// A displayOrder that doesn't parse as an integer is treated as
		// not provided, like every other blank field on this route.
		if order, err := strconv.Atoi(r.FormValue("displayOrder")); err == nil {
			update.DisplayOrder = order
		}

		if file, header, err := r.FormFile(imageFormField); err == nil {
			defer file.Close()

			if err := validateUpload(header); err != nil {
				h.responder.WriteError(w, err)
				return
			}

			// Best-effort removal of the replaced image. Failure is
			// logged, never surfaced.
			if project.ImageURL != "" {
				if delErr := h.images.Delete(r.Context(), project.ImageURL); delErr != nil {
					h.logger.Warn().Err(delErr).Str("imageUrl", project.ImageURL).Msg("failed to delete replaced image")
				}
			}

			filename, err := h.images.Store(r.Context(), file, header.Filename)
			if err != nil {
				h.responder.WriteError(w, errs.NewStorageError("store", header.Filename, err))
				return
			}
			update.ImageURL = h.images.PublicURL(filename)
		}

		models.ApplyPartialUpdate(project, update)

		if err := h.projects.Replace(r.Context(), project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.logger.Info().
			Str("projectID", project.ID.Hex()).
			Str("caller", ctxCallerID(r.Context())).
			Msg("project updated")

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project and, best effort, its image
// @Summary Delete project
// @Description Deletes a project; the associated image is removed best effort
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} MsgResponse "Project removed"
// @Failure 401 {object} MsgResponse "Unauthorized"
// @Failure 404 {object} MsgResponse "Not Found - Project not found"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.lookupProject(w, r)
		if !ok {
			return
		}

		if project.ImageURL != "" {
			if delErr := h.images.Delete(r.Context(), project.ImageURL); delErr != nil {
				h.logger.Warn().Err(delErr).Str("imageUrl", project.ImageURL).Msg("failed to delete project image")
			}
		}

		if err := h.projects.Delete(r.Context(), project.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.logger.Info().
			Str("projectID", project.ID.Hex()).
			Str("caller", ctxCallerID(r.Context())).
			Msg("project deleted")

		h.responder.WriteMsg(w, "Project removed")
	}
}

type reorderRequest struct {
	Projects []reorderItem `json:"projects"`
}

type reorderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// reorderProjects applies a batch of display-order updates
// @Summary Reorder projects
// @Description Sets displayOrder per project independently; unknown ids are skipped, the batch is not transactional
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body reorderRequest true "Order assignments"
// @Success 200 {object} MsgResponse "Projects reordered successfully"
// @Failure 400 {object} MsgResponse "Bad Request - not a non-empty array"
// @Failure 401 {object} MsgResponse "Unauthorized"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /projects/reorder [put]
func (h projectHandler) reorderProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.BadRequest("Invalid project order data"))
			return
		}
		if len(req.Projects) == 0 {
			h.responder.WriteError(w, errs.BadRequest("Invalid project order data"))
			return
		}

		updates := make([]database.OrderUpdate, 0, len(req.Projects))
		for _, item := range req.Projects {
			id, err := primitive.ObjectIDFromHex(item.ID)
			if err != nil {
				// Malformed ids don't fail the batch, matching the
				// treatment of well-formed ids that match nothing.
				h.logger.Debug().Str("id", item.ID).Msg("skipping reorder item with invalid id")
				continue
			}
			updates = append(updates, database.OrderUpdate{ID: id, Order: item.Order})
		}

		if err := h.projects.Reorder(r.Context(), updates); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("reorder", "projects", err))
			return
		}

		h.responder.WriteMsg(w, "Projects reordered successfully")
	}
}

// parseUploadForm reads the multipart body under the global size cap.
// Returns false after writing the error response if parsing failed.
func (h projectHandler) parseUploadForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.responder.WriteError(w, errs.NewMaxBodySizeError("Image must be 5MB or smaller"))
			return false
		}
		h.responder.WriteError(w, errs.Malformed("multipart form"))
		return false
	}
	return true
}
