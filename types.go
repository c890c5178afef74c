package praxis

import (
	"context"

	"github.com/edelenyi/praxis/model"
)

// ContentStore is the facade over the document database holding blog posts.
// Handlers depend on this interface so tests can substitute a stub; the
// MongoDB implementation lives in store.go.
type ContentStore interface {
	CreatePost(ctx context.Context, p model.BlogPost) (model.BlogPost, error)
	GetPost(ctx context.Context, id string) (model.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (model.BlogPost, error)
	ListPosts(ctx context.Context) ([]model.BlogPost, error)
	ListPublished(ctx context.Context) ([]model.BlogPost, error)
	UpdatePost(ctx context.Context, id string, upd model.PostUpdate) (model.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}
