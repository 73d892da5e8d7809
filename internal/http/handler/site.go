package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0tsuro/SparkCar/internal/http/dto"
	"github.com/0tsuro/SparkCar/internal/model"
)

// SiteContent is the read-only content rendered by the front-end.
type SiteContent struct {
	Slides           []model.SlidePair
	Plans            []model.PricingPlan
	Contact          model.ContactInfo
	AutoplayInterval time.Duration
}

type SiteHandler struct {
	content SiteContent
}

func NewSiteHandler(content SiteContent) *SiteHandler {
	return &SiteHandler{content: content}
}

func (h *SiteHandler) Slides(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSlidesResponse(h.content.Slides, h.content.AutoplayInterval))
}

func (h *SiteHandler) Pricing(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PricingResponse{Plans: h.content.Plans})
}

func (h *SiteHandler) ContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ContactInfoResponse{Contact: h.content.Contact})
}
