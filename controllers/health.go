package controllers

import (
	"net/http"

	"prestige-salon-backend/store"

	"github.com/gin-gonic/gin"
)

const maxListedCollections = 10

// HealthController serves liveness and store diagnostics.
type HealthController struct {
	Store store.Store
	// URLConfigured reports whether a connection string was provided.
	URLConfigured bool
}

// Diagnostic is the body of GET /test.
type Diagnostic struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (h HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Prestige Beauty Salon Backend Running"})
}

// Test reports backend and store status. It never fails; store problems are reported in
// the body.
func (h HealthController) Test(c *gin.Context) {
	resp := Diagnostic{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.Store == nil || !h.Store.Available() {
		resp.Database = "⚠️  Available but not initialized"
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Database = "✅ Available"
	urlState := "❌ Not Set"
	if h.URLConfigured {
		urlState = "✅ Set"
	}
	resp.DatabaseURL = &urlState
	name := h.Store.Name()
	if name == "" {
		name = "✅ Connected"
	}
	resp.DatabaseName = &name
	resp.ConnectionStatus = "Connected"

	collections, err := h.Store.ListCollections(c.Request.Context())
	if err != nil {
		resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, resp)
		return
	}
	if len(collections) > maxListedCollections {
		collections = collections[:maxListedCollections]
	}
	if collections != nil {
		resp.Collections = collections
	}
	resp.Database = "✅ Connected & Working"
	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
