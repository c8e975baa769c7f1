//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"table-reserve/internal/handler/api"
	resdto "table-reserve/internal/handler/dto/response"
	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"
	"table-reserve/tests/common/httptest"
	"table-reserve/tests/common/testutil"
	commandsmock "table-reserve/tests/mock/commands"
	queriesmock "table-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor_email", "user@example.com")
		c.Set("actor_roles", []string{"ROLE_USER"})
		c.Next()
	}

	s.router.POST("/reserves/:reserveId/review", authMiddleware, s.handler.Create)
	s.router.GET("/reviews/user", authMiddleware, s.handler.ListForMember)
	s.router.GET("/reviews/owner", authMiddleware, s.handler.ListForOwner)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	reservationID := uuid.New()
	url := "/reserves/" + reservationID.String() + "/review"
	reqBody := map[string]any{
		"rating":  4,
		"content": "Great food",
	}

	s.Run("success: returns 201 Created", func() {
		expected := &commands.CreateReviewResult{ReviewID: uuid.New(), Rating: 4, Content: "Great food"}
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), reservationID, "user@example.com").
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expected.ReviewID, response.ReviewID)
		s.Equal(4, response.Rating)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "rating above maximum", mutate: testutil.Field("rating", 6)},
			{name: "negative rating", mutate: testutil.Field("rating", -1)},
			{name: "missing rating", mutate: testutil.Field("rating", nil)},
			{name: "missing content", mutate: testutil.Field("content", nil)},
			{name: "overlong content", mutate: testutil.Field("content", strings.Repeat("a", 1001))},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reserves/invalid-uuid/review", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
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
			{
				name:           "already reviewed",
				commandsError:  commands.ErrAlreadyReviewed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Reservation already reviewed",
			},
			{
				name:           "reservation not complete",
				commandsError:  commands.ErrReservationNotComplete,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Reservation not complete",
			},
			{
				name:           "review window expired",
				commandsError:  commands.ErrReviewWindowExpired,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Review window expired",
			},
			{
				name:           "invalid review input",
				commandsError:  commands.ErrInvalidReviewInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid review input",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create review failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), reservationID, "user@example.com").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReviewHandlerTestSuite) TestListForMember() {
	url := "/reviews/user"

	views := []*queries.ReviewView{
		{ID: uuid.New(), StoreName: "참새정", MemberEmail: "user@example.com", Rating: 5, Content: "Excellent"},
		{ID: uuid.New(), StoreName: "참새정", MemberEmail: "user@example.com", Rating: 3, Content: "Okay"},
	}

	s.Run("success: returns review list", func() {
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), "user@example.com").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		reviews, ok := response["reviews"].([]any)
		s.True(ok)
		s.Equal(len(views), len(reviews))
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListByMember(gomock.Any(), "user@example.com").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load reviews")
	})
}

func (s *ReviewHandlerTestSuite) TestListForOwner() {
	url := "/reviews/owner"

	s.Run("success: returns reviews across the owner's stores", func() {
		views := []*queries.ReviewView{
			{ID: uuid.New(), StoreName: "참새정", MemberEmail: "guest@example.com", Rating: 4, Content: "Good"},
		}
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), "user@example.com").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		reviews, ok := response["reviews"].([]any)
		s.True(ok)
		s.Equal(1, len(reviews))
	})
}
