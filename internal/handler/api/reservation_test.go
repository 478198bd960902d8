//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/handler/api"
	resdto "braceria-backend/internal/handler/dto/response"
	"braceria-backend/internal/pkg/config"
	"braceria-backend/internal/pkg/errs"
	"braceria-backend/internal/usecase/commands"
	"braceria-backend/tests/common/builder"
	"braceria-backend/tests/common/httptest"
	"braceria-backend/tests/common/testutil"
	commandsmock "braceria-backend/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	cfg          config.Config
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.router = s.newRouter(s.cfg)
}

func (s *ReservationHandlerTestSuite) newRouter(cfg config.Config) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(api.Templates())
	h := api.NewReservationHandler(s.mockCommands, cfg)
	r.POST("/api/braceria/prenota", h.Create)
	r.GET("/api/braceria/annulla/:id/:token", h.Cancel)
	return r
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/braceria/prenota"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()

	created, err := b.BuildDomain()
	s.Require().NoError(err)
	created.AssignID(42)

	s.Run("success: returns 201 with the normalized reservation", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), b.BuildInput()).
			Return(&commands.CreateReservationResult{Reservation: created}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var got resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)

		want := resdto.CreateReservationResponse{
			Success: true,
			ID:      42,
			Message: "Prenotazione confermata",
			Data: resdto.ReservationData{
				ReservationID:   42,
				FirstName:       "Anna",
				LastName:        "Rossi",
				ReservationDate: "2030-06-15",
				ReservationTime: "20:00",
				Guests:          2,
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("cookie_consent must be a JSON boolean", func() {
		var captured reservation.Input
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in reservation.Input) (*commands.CreateReservationResult, error) {
				captured = in
				return nil, reservation.ErrConsentRequired
			})

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("cookie_consent", "true"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Consenso privacy obbligatorio", "CONSENT_REQUIRED")
		s.False(captured.Consents.Cookie)
	})

	s.Run("omitted guests reach the use case as nil", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in reservation.Input) (*commands.CreateReservationResult, error) {
				s.Nil(in.Guests)
				return &commands.CreateReservationResult{Reservation: created}, nil
			})

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("missing consent is reported before a mistyped field", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("guests", "2"),
			testutil.Field("cookie_consent", false))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Consenso privacy obbligatorio", "CONSENT_REQUIRED")
	})

	s.Run("mistyped field with consent granted is an invalid request", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", "2"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Richiesta non valida", "INVALID_REQUEST")
	})

	s.Run("malformed JSON returns 400 without reaching the use case", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"first_name":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Richiesta non valida", "INVALID_REQUEST")
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
		expectTag  string
	}{
		{"consent", reservation.ErrConsentRequired, http.StatusBadRequest, "Consenso privacy obbligatorio", "CONSENT_REQUIRED"},
		{"missing fields", reservation.ErrMissingFields, http.StatusBadRequest, "Compila tutti i campi obbligatori", "MISSING_FIELDS"},
		{"invalid date", reservation.ErrInvalidDate, http.StatusBadRequest, "Data non valida", "INVALID_DATE"},
		{"invalid time", reservation.ErrInvalidTime, http.StatusBadRequest, "Orario non valido", "INVALID_TIME"},
		{"invalid email", reservation.ErrInvalidEmail, http.StatusBadRequest, "Indirizzo email non valido", "INVALID_EMAIL"},
		{"invalid guests", reservation.ErrInvalidGuests, http.StatusBadRequest, "Numero di persone non valido", "INVALID_GUESTS"},
		{"date unavailable", commands.ErrDateUnavailable, http.StatusConflict, "Data non disponibile", "DATE_UNAVAILABLE"},
		{"time unavailable", errs.Wrap(commands.ErrTimeUnavailable, "slot 19:00-21:00"), http.StatusConflict, "Orario non disponibile", "TIME_UNAVAILABLE"},
		{"storage failure", errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Errore durante la prenotazione", "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		s.Run("error mapping: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg, tc.expectTag)
		})
	}

	s.Run("conflicts use the configured status", func() {
		cfg := s.cfg
		cfg.Reservation.ConflictStatus = http.StatusBadRequest
		router := s.newRouter(cfg)

		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDateUnavailable)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Data non disponibile", "DATE_UNAVAILABLE")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success renders the confirmation page", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), "42", "tok-abc").
			Return(&reservation.Cancelled{
				ID:        42,
				FirstName: "Anna",
				Guests:    1,
				Date:      schedule.NewDate(2030, 6, 15),
				Time:      schedule.MustTimeOfDay("20:00"),
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/braceria/annulla/42/tok-abc", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		s.Contains(body, "Prenotazione annullata")
		s.Contains(body, "Ciao Anna")
		s.Contains(body, "15/06/2030")
		s.Contains(body, "20:00")
		s.Contains(body, "1 persona)")
	})

	s.Run("unknown reservation renders the not found page with 200", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), "999", "tok").
			Return(nil, commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/braceria/annulla/999/tok", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Prenotazione non trovata")
	})

	s.Run("storage failure renders the error page with 500", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), "7", "tok").
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/braceria/annulla/7/tok", nil)

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "Si è verificato un errore")
	})
}
