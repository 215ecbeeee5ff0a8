package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

type ChatRepository struct {
	col   *mongo.Collection
	users *UserRepository
	seq   *sequence
}

func NewChatRepository(db *mongo.Database, seq *sequence) *ChatRepository {
	return &ChatRepository{
		col:   db.Collection(collectionChats),
		users: NewUserRepository(db, seq),
		seq:   seq,
	}
}

type chatDoc struct {
	ID          int64  `bson:"_id"`
	SenderID    int64  `bson:"sender_id"`
	RecipientID int64  `bson:"recipient_id"`
	Message     string `bson:"message"`
}

func (d chatDoc) toDomain() *domain.ChatMessage {
	return &domain.ChatMessage{ID: d.ID, SenderID: d.SenderID, RecipientID: d.RecipientID, Message: d.Message}
}

func (r *ChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := r.users.exists(ctx, msg.SenderID, msg.RecipientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	id, err := r.seq.next(ctx, collectionChats)
	if err != nil {
		return nil, err
	}
	doc := chatDoc{ID: id, SenderID: msg.SenderID, RecipientID: msg.RecipientID, Message: msg.Message}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ChatRepository) Conversation(ctx context.Context, a, b int64) ([]*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": a, "recipient_id": b},
		bson.M{"sender_id": b, "recipient_id": a},
	}}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	var docs []chatDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}

	msgs := make([]*domain.ChatMessage, 0, len(docs))
	for _, d := range docs {
		msgs = append(msgs, d.toDomain())
	}
	return msgs, nil
}

func (r *ChatRepository) Partners(ctx context.Context, userID int64) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	recipients, err := r.col.Distinct(ctx, "recipient_id", bson.M{"sender_id": userID})
	if err != nil {
		return nil, fmt.Errorf("distinct recipients: %w", err)
	}
	senders, err := r.col.Distinct(ctx, "sender_id", bson.M{"recipient_id": userID})
	if err != nil {
		return nil, fmt.Errorf("distinct senders: %w", err)
	}

	seen := make(map[int64]struct{})
	ids := make([]int64, 0, len(recipients)+len(senders))
	for _, v := range append(recipients, senders...) {
		id, ok := toInt64(v)
		if !ok || id == userID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.users.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find partners: %w", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode partners: %w", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

// EnsureIndexes creates the conversation lookup index.
func (r *ChatRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "recipient_id", Value: 1}}},
		{Keys: bson.D{{Key: "recipient_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
