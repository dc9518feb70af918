package controllers

import "prestige-salon-backend/store"

// publicDocuments exposes each document's identifier as "id" instead of the store's field.
func publicDocuments(docs []store.Document) []store.Document {
	out := make([]store.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Public())
	}
	return out
}
