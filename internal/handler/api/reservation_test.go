//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"table-reserve/internal/domain/reservation"
	"table-reserve/internal/handler/api"
	resdto "table-reserve/internal/handler/dto/response"
	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"
	"table-reserve/tests/common/builder"
	"table-reserve/tests/common/httptest"
	"table-reserve/tests/common/testutil"
	commandsmock "table-reserve/tests/mock/commands"
	queriesmock "table-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Stands in for the JWT middleware.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor_email", "user@example.com")
		c.Set("actor_roles", []string{"ROLE_USER"})
		c.Next()
	}

	s.router.POST("/reserves/new", authMiddleware, s.handler.Book)
	s.router.GET("/reserves/user", authMiddleware, s.handler.ListForMember)
	s.router.GET("/reserves/:reserveId", authMiddleware, s.handler.GetForMember)
	s.router.PATCH("/reserves/:reserveId/cancel", authMiddleware, s.handler.CancelForMember)
	s.router.PATCH("/reserves/:reserveId/arrive", authMiddleware, s.handler.ConfirmArrival)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func reservationResult(status reservation.Status) *commands.ReservationResult {
	return &commands.ReservationResult{
		ID:          uuid.New(),
		StoreName:   "참새정",
		MemberEmail: "user@example.com",
		VisitTime:   builder.BaseTime.Add(time.Hour),
		Status:      status.String(),
	}
}

func (s *ReservationHandlerTestSuite) TestBook() {
	url := "/reserves/new"
	reqBody := map[string]any{
		"storeName": "참새정",
		"visitTime": "2026-08-30 19:00:00",
	}

	s.Run("success: returns 201 Created", func() {
		expected := reservationResult(reservation.StatusValid)
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), "user@example.com").
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expected.ID, response.ID)
		s.Equal("VALID", response.Status)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"storeName", "visitTime"} {
			s.Run("missing "+field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid visit time",
				commandsError:  commands.ErrInvalidVisitTime,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid visit time",
			},
			{
				name:           "store not found",
				commandsError:  commands.ErrStoreNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Store not found",
			},
			{
				name:           "member not found",
				commandsError:  commands.ErrMemberNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Member not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Book reservation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), "user@example.com").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetForMember() {
	reservationID := uuid.New()
	url := "/reserves/" + reservationID.String()

	s.Run("success: returns 200 OK", func() {
		expected := reservationResult(reservation.StatusValid)
		s.mockCommands.EXPECT().GetForMember(gomock.Any(), reservationID, "user@example.com").
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("참새정", response.StoreName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reserves/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "illegal access",
				commandsError:  commands.ErrIllegalAccess,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().GetForMember(gomock.Any(), reservationID, "user@example.com").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancelForMember() {
	reservationID := uuid.New()
	url := "/reserves/" + reservationID.String() + "/cancel"

	s.Run("success: returns 200 OK with CANCEL status", func() {
		expected := reservationResult(reservation.StatusCancel)
		s.mockCommands.EXPECT().CancelForMember(gomock.Any(), reservationID, "user@example.com").
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var response resdto.ReservationResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CANCEL", response.Status)
	})

	s.Run("error: 403 Forbidden for someone else's reservation", func() {
		s.mockCommands.EXPECT().CancelForMember(gomock.Any(), reservationID, "user@example.com").
			Return(nil, commands.ErrIllegalAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReservationHandlerTestSuite) TestConfirmArrival() {
	reservationID := uuid.New()
	url := "/reserves/" + reservationID.String() + "/arrive"

	s.Run("success: returns 200 OK with COMPLETE status", func() {
		expected := reservationResult(reservation.StatusComplete)
		s.mockCommands.EXPECT().ConfirmArrival(gomock.Any(), reservationID, "user@example.com").
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var response resdto.ReservationResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("COMPLETE", response.Status)
	})

	s.Run("error: 409 Conflict for late arrival", func() {
		s.mockCommands.EXPECT().ConfirmArrival(gomock.Any(), reservationID, "user@example.com").
			Return(nil, commands.ErrNoLongerAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation no longer available")
	})

	s.Run("error: 409 Conflict for canceled reservation", func() {
		s.mockCommands.EXPECT().ConfirmArrival(gomock.Any(), reservationID, "user@example.com").
			Return(nil, commands.ErrReservationCanceled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation already canceled")
	})
}

func (s *ReservationHandlerTestSuite) TestListForMember() {
	url := "/reserves/user"

	views := []*queries.ReservationView{
		{ID: uuid.New(), StoreName: "참새정", MemberEmail: "user@example.com", Status: "VALID"},
		{ID: uuid.New(), StoreName: "참새정", MemberEmail: "user@example.com", Status: "CANCEL"},
	}

	s.Run("success: returns reservation list", func() {
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), "user@example.com").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		reservations, ok := response["reservations"].([]any)
		s.True(ok)
		s.Equal(len(views), len(reservations))
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), "user@example.com").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load reservations")
	})
}
