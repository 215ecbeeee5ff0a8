package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

type PaperRepository struct {
	col   *mongo.Collection
	users *UserRepository
	seq   *sequence
}

func NewPaperRepository(db *mongo.Database, seq *sequence) *PaperRepository {
	return &PaperRepository{
		col:   db.Collection(collectionPapers),
		users: NewUserRepository(db, seq),
		seq:   seq,
	}
}

type paperDoc struct {
	ID          int64  `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Category    string `bson:"category"`
	FilePath    string `bson:"file_path"`
	UserID      int64  `bson:"user_id"`
}

func (d paperDoc) toDomain() *domain.Paper {
	return &domain.Paper{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    domain.Category(d.Category),
		FilePath:    d.FilePath,
		UserID:      d.UserID,
	}
}

// Create checks the owner and the category before inserting, since MongoDB
// enforces neither.
func (r *PaperRepository) Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if !paper.Category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}
	ok, err := r.users.exists(ctx, paper.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	id, err := r.seq.next(ctx, collectionPapers)
	if err != nil {
		return nil, err
	}
	doc := paperDoc{
		ID:          id,
		Title:       paper.Title,
		Description: paper.Description,
		Category:    string(paper.Category),
		FilePath:    paper.FilePath,
		UserID:      paper.UserID,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert paper: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaperRepository) FindByID(ctx context.Context, id int64) (*domain.Paper, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc paperDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaperNotFound
		}
		return nil, fmt.Errorf("find paper: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaperRepository) List(ctx context.Context, filter ports.PaperFilter) ([]*domain.Paper, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, paperFilter(filter), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	var docs []paperDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode papers: %w", err)
	}

	papers := make([]*domain.Paper, 0, len(docs))
	for _, d := range docs {
		papers = append(papers, d.toDomain())
	}
	return papers, nil
}

// paperFilter translates the filter into a query document. The search term
// is quoted so regex metacharacters match literally.
func paperFilter(f ports.PaperFilter) bson.M {
	q := bson.M{}
	if f.OwnerID != 0 {
		q["user_id"] = f.OwnerID
	}
	if f.Search != "" {
		q["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	if f.Category != "" {
		q["category"] = string(f.Category)
	}
	return q
}

func (r *PaperRepository) Update(ctx context.Context, paper *domain.Paper) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if !paper.Category.IsValid() {
		return domain.ErrInvalidCategory
	}
	update := bson.M{"$set": bson.M{
		"title":       paper.Title,
		"description": paper.Description,
		"category":    string(paper.Category),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": paper.ID}, update)
	if err != nil {
		return fmt.Errorf("update paper: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaperNotFound
	}
	return nil
}

func (r *PaperRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPaperNotFound
	}
	return nil
}

// EnsureIndexes creates indexes on the papers collection.
func (r *PaperRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
