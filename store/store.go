package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// IDField is the document field holding the store-assigned identifier.
const IDField = "_id"

// ErrUnavailable is the cause of every StoreError raised without a connection.
var ErrUnavailable = errors.New("database not available")

// Document is a flat record as persisted in a collection.
type Document map[string]any

// Store persists documents grouped by record kind. Only create and read-all are supported.
type Store interface {
	// CreateDocument inserts record into the collection of kind and returns its id.
	CreateDocument(ctx context.Context, kind Kind, record any) (string, error)
	// GetDocuments returns every document of kind in insertion order, each with IDField set.
	// A collection that does not exist yet yields an empty slice.
	GetDocuments(ctx context.Context, kind Kind) ([]Document, error)
	ListCollections(ctx context.Context) ([]string, error)
	Name() string
	Available() bool
	Close() error
}

// StoreError reports a failed store operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, kind Kind, err error) error {
	return &StoreError{Op: fmt.Sprintf("%s %s", op, kind), Err: err}
}

// ToDocument converts a typed record into a Document using its json field names.
func ToDocument(record any) (Document, error) {
	if doc, ok := record.(Document); ok {
		return doc.clone(), nil
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("record is not an object: %w", err)
	}
	delete(doc, IDField)
	return doc, nil
}

// ID returns the identifier stored under IDField as text.
func (d Document) ID() string {
	switch v := d[IDField].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Public returns a copy of d with the identifier moved from IDField to "id".
func (d Document) Public() Document {
	out := d.clone()
	if _, ok := out[IDField]; ok {
		out["id"] = d.ID()
		delete(out, IDField)
	}
	return out
}

func (d Document) clone() Document {
	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Unavailable is the Store used when no connection could be established.
type Unavailable struct {
	Reason string
}

func (u Unavailable) CreateDocument(_ context.Context, kind Kind, _ any) (string, error) {
	return "", storeErr("create", kind, ErrUnavailable)
}

func (u Unavailable) GetDocuments(_ context.Context, kind Kind) ([]Document, error) {
	return nil, storeErr("get", kind, ErrUnavailable)
}

func (u Unavailable) ListCollections(context.Context) ([]string, error) {
	return nil, &StoreError{Op: "list collections", Err: ErrUnavailable}
}

func (u Unavailable) Name() string    { return "" }
func (u Unavailable) Available() bool { return false }
func (u Unavailable) Close() error    { return nil }
