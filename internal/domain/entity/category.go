package entity

import (
	"time"
)

// Category represents a content category document. Categories form a
// single-level hierarchy via ParentID; a category may not be its own
// parent (deeper cycles are not checked).
type Category struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Slug        string     `bson:"slug" json:"slug"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string     `bson:"icon,omitempty" json:"icon,omitempty"`
	Color       string     `bson:"color" json:"color"`
	ParentID    *string    `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	PostCount   int        `bson:"post_count" json:"post_count"`
	IsActive    bool       `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultCategoryColor is applied when a category is created without one.
const DefaultCategoryColor = "#6366f1"
