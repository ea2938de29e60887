package api

import (
	"errors"
	"net/http"
	"strconv"

	"beautify-api/internal/domain/availability"
	reqdto "beautify-api/internal/handler/dto/request"
	resdto "beautify-api/internal/handler/dto/response"
	"beautify-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Get bookable slots
// @Description List open slot instants for a date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/slots [get]
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	slots, err := h.availabilityUseCase.GetSlots(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SlotsResponse{Date: date, Slots: slots})
}

// @Summary List weekly rules
// @Description List the weekly opening hours
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.RuleResponse
// @Router /availability/rules [get]
func (h *AvailabilityHandler) ListRules(c *gin.Context) {
	rules, err := h.availabilityUseCase.ListRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRuleRMs(rules))
}

// @Summary Upsert a weekly rule
// @Description Set opening hours for one weekday (0=Sunday)
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weekday path int true "Weekday (0-6)"
// @Param request body reqdto.UpsertRuleRequest true "Rule"
// @Success 200 {object} resdto.RuleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability/rules/{weekday} [put]
func (h *AvailabilityHandler) UpsertRule(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid weekday",
		})
		return
	}

	var req reqdto.UpsertRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rule, err := h.availabilityUseCase.UpsertRule(c.Request.Context(), weekday, req.StartTime, req.EndTime, req.Active)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidWeekday):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Weekday must be between 0 and 6",
			})
		case errors.Is(err, usecase.ErrInvalidRule):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid opening hours",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleRM(rule))
}

// @Summary List time-off entries
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TimeOffResponse
// @Failure 401 {object} map[string]string
// @Router /availability/timeoff [get]
func (h *AvailabilityHandler) ListTimeOff(c *gin.Context) {
	entries, err := h.availabilityUseCase.ListTimeOff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeOffRMs(entries))
}

// @Summary Add a time-off entry
// @Description Block a full day or a window within it
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTimeOffRequest true "Time-off"
// @Success 201 {object} resdto.TimeOffResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability/timeoff [post]
func (h *AvailabilityHandler) AddTimeOff(c *gin.Context) {
	var req reqdto.CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.availabilityUseCase.AddTimeOff(c.Request.Context(), req.Date, req.StartTime, req.EndTime, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errors.Is(err, usecase.ErrInvalidTimeOff):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid time-off interval",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTimeOffRM(entry))
}

// @Summary Remove a time-off entry
// @Tags availability
// @Security BearerAuth
// @Param id path string true "Time-off ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/timeoff/{id} [delete]
func (h *AvailabilityHandler) RemoveTimeOff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time-off ID",
		})
		return
	}

	if err := h.availabilityUseCase.RemoveTimeOff(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTimeOffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Time-off entry not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
