package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	mem "tripdesk/pkg/memcache"
	"tripdesk/pkg/utils"
)

type TutorialController struct {
	visited mem.VisitedPageStore
}

func NewTutorialController(visited mem.VisitedPageStore) *TutorialController {
	return &TutorialController{
		visited: visited,
	}
}

// Visit godoc
// @Summary Record a visited page
// @Description Record a normalized page path for the session; first_visit gates the tutorial prompt
// @Tags Tutorial
// @Accept json
// @Produce json
// @Param request body request_models.VisitPageRequest true "Visited path"
// @Success 200 {object} response_models.VisitedPagesResponse
// @Security BearerAuth
// @Router /tutorial/visited [post]
func (t *TutorialController) Visit(c *gin.Context) {
	var req request_models.VisitPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")
	first := t.visited.Visit(userId, req.Path)

	utils.RespondSuccess(c, response_models.VisitedPagesResponse{
		Paths:      t.visited.Visited(userId),
		FirstVisit: first,
	}, "Page visit recorded")
}

// Visited godoc
// @Summary List visited pages
// @Tags Tutorial
// @Produce json
// @Success 200 {object} response_models.VisitedPagesResponse
// @Security BearerAuth
// @Router /tutorial/visited [get]
func (t *TutorialController) Visited(c *gin.Context) {
	userId := c.GetString("user_id")

	utils.RespondSuccess(c, response_models.VisitedPagesResponse{
		Paths: t.visited.Visited(userId),
	}, "Visited pages fetched successfully")
}
