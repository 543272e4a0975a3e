package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arca/internal/itinerary"
	"arca/internal/models/request_models"
	"arca/internal/models/response_models"
	"arca/internal/services"
	"arca/pkg/i18n"
	"arca/pkg/middleware"
	"arca/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	bundle           *i18n.Bundle
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, bundle *i18n.Bundle) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		bundle:           bundle,
	}
}

// translator prefers the session's language, then Accept-Language.
func translator(bundle *i18n.Bundle, c *gin.Context) *i18n.Translator {
	var sessionLang string
	if claims, ok := middleware.Session(c); ok {
		sessionLang = claims.Language
	}
	return bundle.For(sessionLang, c.GetHeader("Accept-Language"))
}

func (ic *ItineraryController) render(c *gin.Context, it itinerary.Itinerary, message string) {
	utils.RespondSuccess(c, response_models.BuildItineraryResponse(it, translator(ic.bundle, c)), message)
}

// GetItinerary godoc
// @Summary Get the current itinerary
// @Description Returns every day with its ordered activities, per-day and total cost
// @Tags Itinerary
// @Produce json
// @Param Accept-Language header string false "Display language (en, vi)"
// @Success 200 {object} response_models.ItineraryResponse
// @Router /itinerary [get]
func (ic *ItineraryController) GetItinerary(c *gin.Context) {
	it := ic.itineraryService.Current(c.Request.Context(), middleware.Owner(c))
	ic.render(c, it, "Itinerary fetched successfully")
}

// GetSummary godoc
// @Summary Get the trip summary
// @Description Trip title, destination, travelers, day count, activity count and total cost for the header
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItinerarySummaryResponse
// @Router /itinerary/summary [get]
func (ic *ItineraryController) GetSummary(c *gin.Context) {
	ic.renderSummary(c, "Summary fetched successfully")
}

// UpdateTripDetails godoc
// @Summary Edit the trip header
// @Description Sets the trip title, destination and number of travelers
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.UpdateTripDetailsRequest true "Trip details"
// @Success 200 {object} response_models.ItinerarySummaryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/details [put]
func (ic *ItineraryController) UpdateTripDetails(c *gin.Context) {
	var req request_models.UpdateTripDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if _, err := ic.itineraryService.UpdateDetails(c.Request.Context(), middleware.Owner(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ic.renderSummary(c, "Trip details updated successfully")
}

func (ic *ItineraryController) renderSummary(c *gin.Context, message string) {
	summary := ic.itineraryService.Summary(c.Request.Context(), middleware.Owner(c))

	var name string
	var premium bool
	if claims, ok := middleware.Session(c); ok {
		name, premium = claims.Name, claims.IsPremium
	}

	resp := response_models.BuildSummaryResponse(summary, translator(ic.bundle, c), name, premium)
	utils.RespondSuccess(c, resp, message)
}

// MoveActivity godoc
// @Summary Move an activity
// @Description Moves an activity to a position in the same or another day. target_index is the drop position as displayed before the move and is clamped to the day's bounds.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.MoveActivityRequest true "Move payload"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/move [post]
func (ic *ItineraryController) MoveActivity(c *gin.Context) {
	var req request_models.MoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	it, err := ic.itineraryService.Move(c.Request.Context(), middleware.Owner(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ic.render(c, it, "Activity moved successfully")
}

// AddActivity godoc
// @Summary Add a blank activity
// @Description Appends a placeholder activity to the end of a day
// @Tags Itinerary
// @Produce json
// @Param dayId path string true "Day ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/days/{dayId}/activities [post]
func (ic *ItineraryController) AddActivity(c *gin.Context) {
	dayID := c.Param("dayId")
	if dayID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Day ID is required")
		return
	}

	it, err := ic.itineraryService.AddActivity(c.Request.Context(), middleware.Owner(c), dayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ic.render(c, it, "Activity added successfully")
}

// UpdateActivity godoc
// @Summary Replace an activity's fields
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Activity fields"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/activities/{activityId} [put]
func (ic *ItineraryController) UpdateActivity(c *gin.Context) {
	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	it, err := ic.itineraryService.UpdateActivity(c.Request.Context(), middleware.Owner(c), c.Param("activityId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ic.render(c, it, "Activity updated successfully")
}

// AddDay godoc
// @Summary Add a day
// @Description Appends an empty day dated one day after the last day
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 409 {object} utils.APIResponse
// @Router /itinerary/days [post]
func (ic *ItineraryController) AddDay(c *gin.Context) {
	it, err := ic.itineraryService.AddDay(c.Request.Context(), middleware.Owner(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ic.render(c, it, "Day added successfully")
}

// ResetItinerary godoc
// @Summary Restore the sample itinerary
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Router /itinerary/reset [post]
func (ic *ItineraryController) ResetItinerary(c *gin.Context) {
	it := ic.itineraryService.Reset(c.Request.Context(), middleware.Owner(c))
	ic.render(c, it, "Itinerary reset successfully")
}
