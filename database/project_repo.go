package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightpath-arts/site-backend/models"
)

const projectCollection = "projects"

// displayOrderSort lists projects by manual order first; ties go to the
// most recently created project.
var displayOrderSort = bson.D{
	{Key: "displayOrder", Value: 1},
	{Key: "createdAt", Value: -1},
}

type ProjectRepo struct {
	coll *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) *ProjectRepo {
	return &ProjectRepo{db.Collection(projectCollection)}
}

// FindAll returns all projects ordered for display
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	return r.find(ctx, bson.D{})
}

// FindByCategory returns the projects whose category matches exactly
func (r *ProjectRepo) FindByCategory(ctx context.Context, category models.Category) ([]*models.Project, error) {
	return r.find(ctx, bson.D{{Key: "category", Value: category}})
}

func (r *ProjectRepo) find(ctx context.Context, filter bson.D) ([]*models.Project, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(displayOrderSort))
	if err != nil {
		return nil, err
	}
	var projects []*models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns a project by its ID, or nil if no such project exists
func (r *ProjectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project. The repository owns the generated ID, the
// creation timestamp and the default display order.
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	project.CreatedAt = time.Now().UTC()
	project.DisplayOrder = 0
	_, err := r.coll.InsertOne(ctx, project)
	return err
}

// Replace saves the full document back. Partial-update merging happens
// before this call, in models.ApplyPartialUpdate.
func (r *ProjectRepo) Replace(ctx context.Context, project *models.Project) error {
	_, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: project.ID}}, project)
	return err
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}

// OrderUpdate assigns a display order to one project.
type OrderUpdate struct {
	ID    primitive.ObjectID
	Order int
}

// Reorder sets displayOrder for each listed project independently. There
// is no transaction across the batch: an id that matches no document is
// not an error, and a failure partway through leaves earlier updates
// applied. Accepted weak-consistency behavior.
func (r *ProjectRepo) Reorder(ctx context.Context, updates []OrderUpdate) error {
	for _, u := range updates {
		_, err := r.coll.UpdateOne(ctx,
			bson.D{{Key: "_id", Value: u.ID}},
			bson.D{{Key: "$set", Value: bson.D{{Key: "displayOrder", Value: u.Order}}}},
		)
		if err != nil {
			return err
		}
	}
	return nil
}
