package api

import (
	"log/slog"
	"net/http"

	"braceria-backend/internal/domain/reservation"
	reqdto "braceria-backend/internal/handler/dto/request"
	resdto "braceria-backend/internal/handler/dto/response"
	"braceria-backend/internal/handler/httperr"
	"braceria-backend/internal/handler/middleware"
	"braceria-backend/internal/pkg/config"
	"braceria-backend/internal/pkg/errs"
	"braceria-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ReservationHandler struct {
	cmds           commands.ReservationCommands
	conflictStatus int
	restaurantName string
}

func NewReservationHandler(cmds commands.ReservationCommands, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{
		cmds:           cmds,
		conflictStatus: cfg.Reservation.ConflictStatus,
		restaurantName: cfg.Restaurant.Name,
	}
}

type errorMapping struct {
	target  error
	message string
	code    string
}

// checked in order; the first match wins
var validationMappings = []errorMapping{
	{reservation.ErrConsentRequired, "Consenso privacy obbligatorio", "CONSENT_REQUIRED"},
	{reservation.ErrMissingFields, "Compila tutti i campi obbligatori", "MISSING_FIELDS"},
	{reservation.ErrInvalidDate, "Data non valida", "INVALID_DATE"},
	{reservation.ErrInvalidTime, "Orario non valido", "INVALID_TIME"},
	{reservation.ErrInvalidEmail, "Indirizzo email non valido", "INVALID_EMAIL"},
	{reservation.ErrInvalidGuests, "Numero di persone non valido", "INVALID_GUESTS"},
}

var conflictMappings = []errorMapping{
	{commands.ErrDateUnavailable, "Data non disponibile", "DATE_UNAVAILABLE"},
	{commands.ErrTimeUnavailable, "Orario non disponibile", "TIME_UNAVAILABLE"},
}

// @Summary Create reservation
// @Description Validates the booking form, checks disabled dates and time slots, and stores the reservation.
// @Description Also served on the legacy path POST /prenotazioni.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/braceria/prenota [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		var consent reqdto.CookieConsentField
		if c.ShouldBindBodyWith(&consent, binding.JSON) == nil && !consent.Granted() {
			h.abortCreate(c, errs.Wrap(reservation.ErrConsentRequired, err.Error()))
			return
		}
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Richiesta non valida", "INVALID_REQUEST")
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortCreate(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(result.Reservation))
}

func (h *ReservationHandler) abortCreate(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrValidation) {
		for _, m := range validationMappings {
			if errs.Is(err, m.target) {
				httperr.AbortWithCode(c, http.StatusBadRequest, err, m.message, m.code)
				return
			}
		}
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Richiesta non valida", "INVALID_REQUEST")
		return
	}
	for _, m := range conflictMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, h.conflictStatus, err, m.message, m.code)
			return
		}
	}
	httperr.AbortWithCode(c, http.StatusInternalServerError, err, "Errore durante la prenotazione", "INTERNAL_ERROR")
}

type cancelPage struct {
	Restaurant string
	FirstName  string
	Date       string
	Time       string
	Guests     int
}

// @Summary Cancel reservation
// @Description Deletes the reservation identified by the link sent in the confirmation email and renders an HTML page.
// @Tags reservations
// @Produce html
// @Param id path string true "Reservation ID"
// @Param token path string true "Cancellation token"
// @Success 200 {string} string "HTML page (cancelled or not found)"
// @Failure 500 {string} string "HTML error page"
// @Router /api/braceria/annulla/{id}/{token} [get]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	page := cancelPage{Restaurant: h.restaurantName}

	cancelled, err := h.cmds.CancelReservation(c.Request.Context(), c.Param("id"), c.Param("token"))
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			c.HTML(http.StatusOK, tmplCancelNotFound, page)
			return
		}
		slog.Error("cancellation failed",
			"request_id", middleware.GetRequestID(c),
			"reservation_id", c.Param("id"),
			"error", err.Error())
		c.HTML(http.StatusInternalServerError, tmplCancelError, page)
		return
	}

	page.FirstName = cancelled.FirstName
	page.Date = cancelled.Date.Time().Format("02/01/2006")
	page.Time = cancelled.Time.HHMM()
	page.Guests = cancelled.Guests
	c.HTML(http.StatusOK, tmplCancelSuccess, page)
}
