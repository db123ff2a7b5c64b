package subscription

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	mongoCollection         = "subscriptions"
	mongoCountersCollection = "counters"
	mongoCounterKey         = "subscriptions"
)

// MongoStore persists subscriptions in MongoDB.
// Numeric ids come from a counters collection so they match the SQL stores.
// BSON dates keep millisecond precision.
type MongoStore struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	if db == nil {
		panic("subscription: mongo database is required")
	}
	return &MongoStore{
		coll:     db.Collection(mongoCollection),
		counters: db.Collection(mongoCountersCollection),
	}
}

type mongoDoc struct {
	ID             int64     `bson:"_id"`
	UserID         int64     `bson:"user_id"`
	Name           string    `bson:"name"`
	Provider       string    `bson:"provider"`
	ExpirationDate time.Time `bson:"expiration_date"`
	Status         string    `bson:"status"`
}

func toMongoDoc(sub Subscription) mongoDoc {
	return mongoDoc{
		ID:             sub.ID,
		UserID:         sub.UserID,
		Name:           sub.Name,
		Provider:       string(sub.Provider),
		ExpirationDate: sub.ExpirationDate.UTC(),
		Status:         string(sub.Status),
	}
}

func (d mongoDoc) toSubscription() (Subscription, error) {
	return sqlRow(d).toSubscription()
}

// EnsureIndexes creates the user_id index used by FindByUserID.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func (s *MongoStore) FindAll(ctx context.Context) ([]Subscription, error) {
	return s.find(ctx, bson.D{})
}

func (s *MongoStore) FindByID(ctx context.Context, id int64) (Subscription, error) {
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Subscription{}, notFound(id)
	}
	if err != nil {
		return Subscription{}, err
	}
	return doc.toSubscription()
}

func (s *MongoStore) FindByUserID(ctx context.Context, userID int64) ([]Subscription, error) {
	if userID <= 0 {
		return []Subscription{}, nil
	}
	return s.find(ctx, bson.D{{Key: "user_id", Value: userID}})
}

func (s *MongoStore) Insert(ctx context.Context, sub Subscription) (Subscription, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return Subscription{}, errors.Join(ErrFailedToGenerateID, err)
	}
	sub.ID = id

	if _, err := s.coll.InsertOne(ctx, toMongoDoc(sub)); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (s *MongoStore) Update(ctx context.Context, sub Subscription) (Subscription, error) {
	res, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: sub.ID}}, toMongoDoc(sub))
	if err != nil {
		return Subscription{}, err
	}
	if res.MatchedCount == 0 {
		return Subscription{}, notFound(sub.ID)
	}
	return sub, nil
}

func (s *MongoStore) Upsert(ctx context.Context, sub Subscription) (Subscription, error) {
	if sub.ID == 0 {
		return s.Insert(ctx, sub)
	}

	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: sub.ID}},
		toMongoDoc(sub),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return Subscription{}, err
	}

	// Keep generated ids ahead of explicitly chosen ones.
	_, err = s.counters.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: mongoCounterKey}},
		bson.D{{Key: "$max", Value: bson.D{{Key: "seq", Value: sub.ID}}}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (s *MongoStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoStore) find(ctx context.Context, filter bson.D) ([]Subscription, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []mongoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]Subscription, 0, len(docs))
	for _, doc := range docs {
		sub, err := doc.toSubscription()
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

func (s *MongoStore) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: mongoCounterKey}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
