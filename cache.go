package praxis

import (
	"context"
	"sync"
	"time"

	"github.com/edelenyi/praxis/model"
)

// PostCache is an in-memory cache of published posts with a TTL. Public pages
// read through it so a slow or failing store does not hit every request;
// admin writes invalidate it.
type PostCache struct {
	mu      sync.RWMutex
	posts   []model.BlogPost
	fetched time.Time
	ttl     time.Duration
	store   ContentStore
}

// NewPostCache creates a PostCache backed by the given store.
func NewPostCache(s ContentStore, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns cached posts after ensuring the cache is fresh.
// It tries a read lock first; a write lock is taken only for a reload.
func (c *PostCache) ensureLoaded(ctx context.Context) ([]model.BlogPost, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.store.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	c.posts = posts
	c.fetched = time.Now()
	return c.posts, nil
}

// ListPublished returns the published posts, newest first.
func (c *PostCache) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	return c.ensureLoaded(ctx)
}

// Latest returns at most n of the newest published posts.
func (c *PostCache) Latest(ctx context.Context, n int) ([]model.BlogPost, error) {
	posts, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) > n {
		posts = posts[:n]
	}
	return posts, nil
}

// GetPublished returns a single published post by slug from the cache.
func (c *PostCache) GetPublished(ctx context.Context, slug string) (model.BlogPost, error) {
	posts, err := c.ensureLoaded(ctx)
	if err != nil {
		return model.BlogPost{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.BlogPost{}, model.ErrNotFound
}
