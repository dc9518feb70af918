// controllers/contact.go
package controllers

import (
	"net/http"

	"prestige-salon-backend/metrics"
	"prestige-salon-backend/models"
	"prestige-salon-backend/services"
	"prestige-salon-backend/store"
	"prestige-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Store    store.Store
	Notifier *services.Notifier
}

func (ctl ContactController) CreateContactMessage(c *gin.Context) {
	var input models.ContactMessage
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithFailure(c, utils.NewValidationError(err))
		return
	}

	id, err := ctl.Store.CreateDocument(c.Request.Context(), store.KindContactMessage, input)
	if err != nil {
		utils.RespondWithFailure(c, err)
		return
	}
	metrics.ContactMessages.Inc()
	ctl.Notifier.ContactReceived(id, input)

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
