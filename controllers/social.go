// controllers/social.go
package controllers

import (
	"net/http"

	"prestige-salon-backend/config"

	"github.com/gin-gonic/gin"
)

// SocialController serves placeholder social feeds. No external API is called.
type SocialController struct {
	Social config.SocialConfig
}

type InstagramPost struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption"`
	Permalink string `json:"permalink"`
}

type FacebookPost struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Permalink string `json:"permalink"`
}

func (ctl SocialController) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Social)
}

func (ctl SocialController) GetInstagramFeed(c *gin.Context) {
	if ctl.Social.InstagramUsername == nil || *ctl.Social.InstagramUsername == "" {
		c.JSON(http.StatusOK, []InstagramPost{})
		return
	}
	permalink := "https://instagram.com/" + *ctl.Social.InstagramUsername
	c.JSON(http.StatusOK, []InstagramPost{
		{
			ID:        "1",
			ImageURL:  "https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=1200&auto=format&fit=crop",
			Caption:   "Stilime moderne tek Prestige ✨",
			Permalink: permalink,
		},
		{
			ID:        "2",
			ImageURL:  "https://images.unsplash.com/photo-1517167685284-96dd43deca1d?q=80&w=1200&auto=format&fit=crop",
			Caption:   "Ngjyra të buta, estetikë minimale.",
			Permalink: permalink,
		},
	})
}

func (ctl SocialController) GetFacebookFeed(c *gin.Context) {
	if ctl.Social.FacebookPage == nil || *ctl.Social.FacebookPage == "" {
		c.JSON(http.StatusOK, []FacebookPost{})
		return
	}
	c.JSON(http.StatusOK, []FacebookPost{
		{
			ID:        "1",
			Message:   "Mirë se erdhët tek Prestige Beauty Salon!",
			Permalink: "https://facebook.com/" + *ctl.Social.FacebookPage,
		},
	})
}
