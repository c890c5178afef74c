package praxis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edelenyi/praxis/model"
)

// stubStore is an in-memory ContentStore for handler and cache tests.
type stubStore struct {
	posts     []model.BlogPost
	listErr   error
	listCalls int
}

func (s *stubStore) CreatePost(_ context.Context, p model.BlogPost) (model.BlogPost, error) {
	s.posts = append(s.posts, p)
	return p, nil
}

func (s *stubStore) GetPost(_ context.Context, id string) (model.BlogPost, error) {
	for _, p := range s.posts {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return model.BlogPost{}, model.ErrNotFound
}

func (s *stubStore) GetPostBySlug(_ context.Context, slug string) (model.BlogPost, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.BlogPost{}, model.ErrNotFound
}

func (s *stubStore) ListPosts(_ context.Context) ([]model.BlogPost, error) {
	return s.posts, nil
}

func (s *stubStore) ListPublished(_ context.Context) ([]model.BlogPost, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []model.BlogPost
	for _, p := range s.posts {
		if p.Published() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) UpdatePost(_ context.Context, id string, upd model.PostUpdate) (model.BlogPost, error) {
	for i, p := range s.posts {
		if p.ID.Hex() != id {
			continue
		}
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Slug != nil {
			p.Slug = *upd.Slug
		}
		if upd.Content != nil {
			p.Content = *upd.Content
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.ImageURL != nil {
			p.ImageURL = *upd.ImageURL
		}
		s.posts[i] = p
		return p, nil
	}
	return model.BlogPost{}, model.ErrNotFound
}

func (s *stubStore) DeletePost(_ context.Context, id string) error {
	for i, p := range s.posts {
		if p.ID.Hex() == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func TestPostCacheServesFromCache(t *testing.T) {
	store := &stubStore{posts: []model.BlogPost{
		{Slug: "a", Status: model.StatusPublished},
		{Slug: "b", Status: model.StatusPublished},
	}}
	cache := NewPostCache(store, time.Minute)
	ctx := context.Background()

	posts, err := cache.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}

	if _, err := cache.ListPublished(ctx); err != nil {
		t.Fatalf("second ListPublished failed: %v", err)
	}
	if store.listCalls != 1 {
		t.Errorf("store queried %d times, want 1", store.listCalls)
	}
}

func TestPostCacheExcludesDrafts(t *testing.T) {
	store := &stubStore{posts: []model.BlogPost{
		{Slug: "live", Status: model.StatusPublished},
		{Slug: "draft", Status: model.StatusDraft},
	}}
	cache := NewPostCache(store, time.Minute)

	posts, err := cache.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "live" {
		t.Errorf("got %v, want only the published post", posts)
	}
}

func TestPostCacheExpires(t *testing.T) {
	store := &stubStore{posts: []model.BlogPost{{Slug: "a", Status: model.StatusPublished}}}
	cache := NewPostCache(store, 50*time.Millisecond)
	ctx := context.Background()

	if _, err := cache.ListPublished(ctx); err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	time.Sleep(80 * time.Millisecond)
	if _, err := cache.ListPublished(ctx); err != nil {
		t.Fatalf("ListPublished after expiry failed: %v", err)
	}
	if store.listCalls != 2 {
		t.Errorf("store queried %d times, want 2", store.listCalls)
	}
}

func TestPostCacheInvalidate(t *testing.T) {
	store := &stubStore{posts: []model.BlogPost{{Slug: "a", Status: model.StatusPublished}}}
	cache := NewPostCache(store, time.Minute)
	ctx := context.Background()

	if _, err := cache.ListPublished(ctx); err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}

	store.posts = append(store.posts, model.BlogPost{Slug: "b", Status: model.StatusPublished})
	cache.Invalidate()

	posts, err := cache.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished after invalidate failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("got %d posts after invalidate, want 2", len(posts))
	}
}

func TestPostCacheLatest(t *testing.T) {
	store := &stubStore{posts: []model.BlogPost{
		{Slug: "p1", Status: model.StatusPublished},
		{Slug: "p2", Status: model.StatusPublished},
		{Slug: "p3", Status: model.StatusPublished},
		{Slug: "p4", Status: model.StatusPublished},
	}}
	cache := NewPostCache(store, time.Minute)

	posts, err := cache.Latest(context.Background(), 3)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if len(posts) != 3 {
		t.Errorf("got %d posts, want 3", len(posts))
	}
	if posts[0].Slug != "p1" {
		t.Errorf("first post = %q, want %q (store order preserved)", posts[0].Slug, "p1")
	}
}

func TestPostCacheGetPublished(t *testing.T) {
	store := &stubStore{posts: []model.BlogPost{
		{Slug: "live", Status: model.StatusPublished},
		{Slug: "draft", Status: model.StatusDraft},
	}}
	cache := NewPostCache(store, time.Minute)
	ctx := context.Background()

	got, err := cache.GetPublished(ctx, "live")
	if err != nil {
		t.Fatalf("GetPublished failed: %v", err)
	}
	if got.Slug != "live" {
		t.Errorf("Slug = %q, want %q", got.Slug, "live")
	}

	if _, err := cache.GetPublished(ctx, "draft"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("draft lookup err = %v, want ErrNotFound", err)
	}
	if _, err := cache.GetPublished(ctx, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("missing lookup err = %v, want ErrNotFound", err)
	}
}

func TestPostCachePropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &stubStore{listErr: storeErr}
	cache := NewPostCache(store, time.Minute)

	if _, err := cache.ListPublished(context.Background()); !errors.Is(err, storeErr) {
		t.Errorf("err = %v, want the store error", err)
	}
}
