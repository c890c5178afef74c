// Package model contains the content types stored in MongoDB and shared
// between the store, the handlers, and the views.
package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("post not found")

// Post status values. Only published posts appear on public pages.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// BlogPost is the core content type, stored in the posts collection.
//
// ImageURL is an opaque string in one of three historical shapes: a data-URL
// produced by the editor's inline upload, a bare base64 payload from the
// legacy form, or an absolute HTTP(S) URL for externally hosted images.
// It is stored as-is and interpreted at read time by the thumbnail endpoint.
type BlogPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Content   string             `bson:"content" json:"content"`
	Status    string             `bson:"status" json:"status"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Published reports whether the post is visible on public pages.
func (p BlogPost) Published() bool {
	return p.Status == StatusPublished
}

// PostUpdate carries a partial update for an existing post. Nil fields are
// left untouched by the store.
type PostUpdate struct {
	Title    *string
	Slug     *string
	Content  *string
	Status   *string
	ImageURL *string
}
