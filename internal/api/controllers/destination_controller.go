package controllers

import (
	"github.com/gin-gonic/gin"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary List the destination catalog
// @Tags Destinations
// @Produce json
// @Success 200 {array} response_models.DestinationResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	destinations, err := d.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// ListOptions godoc
// @Summary List destination options for selection controls
// @Tags Destinations
// @Produce json
// @Success 200 {array} response_models.DestinationOption
// @Router /destinations/options [get]
func (d *DestinationController) ListOptions(c *gin.Context) {
	options, err := d.destinationService.ListOptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Destination options fetched successfully")
}
