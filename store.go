package praxis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/edelenyi/praxis/model"
)

const postsCollection = "posts"

// Store is the MongoDB-backed ContentStore. Posts live in a single
// collection; ids and creation timestamps are assigned here on insert.
type Store struct {
	client *mongo.Client
	posts  *mongo.Collection
}

// NewStore connects to MongoDB at uri and uses the named database.
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Store{
		client: client,
		posts:  client.Database(dbName).Collection(postsCollection),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// CreatePost assigns an id and creation time, derives the slug from the title
// when none is given, persists the post, and returns the stored record.
func (s *Store) CreatePost(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = model.StatusDraft
	}
	if _, err := s.posts.InsertOne(ctx, p); err != nil {
		return model.BlogPost{}, fmt.Errorf("insert post: %w", err)
	}
	return p, nil
}

// GetPost returns a post by its id.
func (s *Store) GetPost(ctx context.Context, id string) (model.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.BlogPost{}, model.ErrNotFound
	}
	var p model.BlogPost
	err = s.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.BlogPost{}, model.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("find post %s: %w", id, err)
	}
	return p, nil
}

// GetPostBySlug returns the first post matching slug, in storage order.
// Duplicate slugs are not prevented at write time, so "first match" is all
// this promises.
func (s *Store) GetPostBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	var p model.BlogPost
	err := s.posts.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.BlogPost{}, model.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("find post by slug %q: %w", slug, err)
	}
	return p, nil
}

// ListPosts returns every post, newest first.
func (s *Store) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.list(ctx, bson.M{})
}

// ListPublished returns published posts only, newest first.
func (s *Store) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	return s.list(ctx, bson.M{"status": model.StatusPublished})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]model.BlogPost, error) {
	cur, err := s.posts.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []model.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

// UpdatePost merges the non-nil fields of upd into the post and returns the
// updated record. Concurrent edits are last-write-wins; the store enforces
// nothing beyond that.
func (s *Store) UpdatePost(ctx context.Context, id string, upd model.PostUpdate) (model.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.BlogPost{}, model.ErrNotFound
	}
	set := updateDocument(upd)
	if len(set) == 0 {
		return s.GetPost(ctx, id)
	}

	var p model.BlogPost
	err = s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.BlogPost{}, model.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("update post %s: %w", id, err)
	}
	return p, nil
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}
	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// updateDocument builds the $set document for a partial update.
func updateDocument(upd model.PostUpdate) bson.M {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	return set
}
