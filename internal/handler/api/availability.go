package api

import (
	"net/http"

	resdto "braceria-backend/internal/handler/dto/response"
	"braceria-backend/internal/handler/httperr"
	"braceria-backend/internal/pkg/errs"
	"braceria-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Disabled time slots
// @Description Lists the blocked time windows of a date, ordered by start time.
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DisabledTimeSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /gestionale/get-disabled-time-slots/ [get]
func (h *AvailabilityHandler) DisabledTimeSlots(c *gin.Context) {
	view, err := h.q.DisabledTimeSlots(c.Request.Context(), c.Query("date"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrDateRequired):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Data richiesta", "DATE_REQUIRED")
		case errs.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Data non valida", "INVALID_DATE")
		default:
			httperr.AbortWithCode(c, http.StatusInternalServerError, err, "Errore del server", "INTERNAL_ERROR")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}
