package api

import (
	"errors"
	"net/http"

	reqdto "table-reserve/internal/handler/dto/request"
	resdto "table-reserve/internal/handler/dto/response"
	"table-reserve/internal/handler/httperr"
	"table-reserve/internal/handler/middleware"
	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a completed reservation within the review window
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reserveId path string true "Reservation ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reserves/{reserveId}/review [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	memberEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	reservationID, err := uuid.Parse(c.Param("reserveId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), req, reservationID, memberEmail)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrIllegalAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrAlreadyReviewed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already reviewed", nil)
		case errors.Is(err, commands.ErrReservationNotComplete):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation not complete", nil)
		case errors.Is(err, commands.ErrReviewWindowExpired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Review window expired", nil)
		case errors.Is(err, commands.ErrInvalidReviewInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review input", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create review failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateReviewResult(result))
}

// @Summary List own reviews
// @Description List reviews posted by the authenticated member
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReviewResponse
// @Failure 401 {object} httperr.Response
// @Router /reviews/user [get]
func (h *ReviewHandler) ListForMember(c *gin.Context) {
	memberEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByMember(c.Request.Context(), memberEmail)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromReviewViews(views)})
}

// @Summary List reviews at own stores
// @Description List reviews posted at the authenticated owner's stores
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReviewResponse
// @Failure 401 {object} httperr.Response
// @Router /reviews/owner [get]
func (h *ReviewHandler) ListForOwner(c *gin.Context) {
	ownerEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerEmail)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromReviewViews(views)})
}
