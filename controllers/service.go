// controllers/service.go
package controllers

import (
	"net/http"

	"prestige-salon-backend/services"
	"prestige-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Catalog *services.Catalog
}

// GetServices lists the salon's services, seeding the defaults on first use.
func (ctl ServiceController) GetServices(c *gin.Context) {
	docs, err := ctl.Catalog.ListServices(c.Request.Context())
	if err != nil {
		utils.RespondWithFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, publicDocuments(docs))
}
