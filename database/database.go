package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Database struct {
	client      *mongo.Client
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared Mongo database handle
func New(client *mongo.Client, dbName string) Database {
	db := client.Database(dbName)
	return Database{
		client:      client,
		projectRepo: NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Ping verifies the server is still reachable.
func (d Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}
