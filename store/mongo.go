package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore keeps one MongoDB collection per record kind.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{client: db.Client(), db: db}
}

// OpenMongo connects to uri, pings the primary and selects database name.
func OpenMongo(ctx context.Context, uri, name string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewMongoStore(client.Database(name)), nil
}

func (s *MongoStore) CreateDocument(ctx context.Context, kind Kind, record any) (string, error) {
	doc, err := ToDocument(record)
	if err != nil {
		return "", storeErr("create", kind, err)
	}
	res, err := s.db.Collection(kind.Collection()).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", storeErr("create", kind, err)
	}
	return objectIDString(res.InsertedID), nil
}

func (s *MongoStore) GetDocuments(ctx context.Context, kind Kind) ([]Document, error) {
	cur, err := s.db.Collection(kind.Collection()).Find(ctx, bson.D{})
	if err != nil {
		return nil, storeErr("get", kind, err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, storeErr("get", kind, err)
	}
	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		doc := Document(m)
		if id, ok := m[IDField]; ok {
			doc[IDField] = objectIDString(id)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &StoreError{Op: "list collections", Err: err}
	}
	return names, nil
}

func (s *MongoStore) Name() string    { return s.db.Name() }
func (s *MongoStore) Available() bool { return true }

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func objectIDString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
