package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category classifies a showcased work.
type Category string

const (
	CategoryArtwork Category = "Artwork"
	CategoryBook    Category = "Book"
	CategoryOther   Category = "Other"
)

// ValidCategory reports whether c is one of the fixed category set.
// Matching is exact: no case folding, no partial matches.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryArtwork, CategoryBook, CategoryOther:
		return true
	}
	return false
}

// Project represents a single showcased work with metadata and an image
type Project struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Category     Category           `json:"category" bson:"category"`
	Subcategory  string             `json:"subcategory" bson:"subcategory"`
	ImageURL     string             `json:"imageUrl" bson:"imageUrl"`
	CreatedDate  string             `json:"createdDate" bson:"createdDate"`
	DisplayOrder int                `json:"displayOrder" bson:"displayOrder"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// Validate checks the fields required at creation time. ImageURL is not
// checked here because it is derived by the upload pipeline after the
// rest of the record has been validated. CreatedDate is a display string
// and is not parsed as a calendar date.
func (p Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if !ValidCategory(p.Category) {
		return errors.New("category must be one of Artwork, Book, Other")
	}
	if p.Subcategory == "" {
		return errors.New("subcategory is required")
	}
	if p.CreatedDate == "" {
		return errors.New("createdDate is required")
	}
	return nil
}
