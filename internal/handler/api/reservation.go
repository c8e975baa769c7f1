package api

import (
	"context"
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

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Book reservation
// @Description Book a reservation by store name
// @Tags reserves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.ReservationResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reserves/new [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	memberEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Book(c.Request.Context(), req, memberEmail)
	if err != nil {
		h.abortBookError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

// @Summary Book reservation from store page
// @Description Book a reservation for the store in the path
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Param request body reqdto.CreateStoreReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.ReservationResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{storeId}/add-reserve [post]
func (h *ReservationHandler) BookFromStore(c *gin.Context) {
	memberEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store id", nil)
		return
	}
	var req reqdto.CreateStoreReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.BookFromStore(c.Request.Context(), req, storeID, memberEmail)
	if err != nil {
		h.abortBookError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

func (h *ReservationHandler) abortBookError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidVisitTime):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid visit time", nil)
	case errors.Is(err, commands.ErrStoreNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
	case errors.Is(err, commands.ErrMemberNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Book reservation failed", nil)
	}
}

// @Summary Get own reservation
// @Description Get a reservation made by the authenticated member
// @Tags reserves
// @Produce json
// @Security BearerAuth
// @Param reserveId path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reserves/{reserveId} [get]
func (h *ReservationHandler) GetForMember(c *gin.Context) {
	h.withReservation(c, h.cmds.GetForMember, http.StatusOK)
}

// @Summary Get reservation as owner
// @Description Get a reservation at one of the authenticated owner's stores
// @Tags reserves
// @Produce json
// @Security BearerAuth
// @Param reserveId path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reserves/owner/{reserveId} [get]
func (h *ReservationHandler) GetForOwner(c *gin.Context) {
	h.withReservation(c, h.cmds.GetForOwner, http.StatusOK)
}

// @Summary Cancel own reservation
// @Description Cancel a reservation made by the authenticated member
// @Tags reserves
// @Produce json
// @Security BearerAuth
// @Param reserveId path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reserves/{reserveId}/cancel [patch]
func (h *ReservationHandler) CancelForMember(c *gin.Context) {
	h.withReservation(c, h.cmds.CancelForMember, http.StatusOK)
}

// @Summary Cancel reservation as owner
// @Description Cancel a reservation at one of the authenticated owner's stores
// @Tags reserves
// @Produce json
// @Security BearerAuth
// @Param reserveId path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reserves/owner/{reserveId}/cancel [patch]
func (h *ReservationHandler) CancelForOwner(c *gin.Context) {
	h.withReservation(c, h.cmds.CancelForOwner, http.StatusOK)
}

// @Summary Confirm arrival
// @Description Confirm arrival at the store; late arrival cancels the reservation
// @Tags reserves
// @Produce json
// @Security BearerAuth
// @Param reserveId path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reserves/{reserveId}/arrive [patch]
func (h *ReservationHandler) ConfirmArrival(c *gin.Context) {
	h.withReservation(c, h.cmds.ConfirmArrival, http.StatusOK)
}

func (h *ReservationHandler) withReservation(
	c *gin.Context,
	op func(ctx context.Context, reservationID uuid.UUID, actorEmail string) (*commands.ReservationResult, error),
	status int,
) {
	actorEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	reservationID, err := uuid.Parse(c.Param("reserveId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	result, err := op(c.Request.Context(), reservationID, actorEmail)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrIllegalAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrReservationCanceled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already canceled", nil)
		case errors.Is(err, commands.ErrNoLongerAvailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation no longer available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reservation operation failed", nil)
		}
		return
	}
	c.JSON(status, resdto.FromReservationResult(result))
}

// @Summary List own reservations
// @Description List reservations made by the authenticated member
// @Tags reserves
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reserves/user [get]
func (h *ReservationHandler) ListForMember(c *gin.Context) {
	memberEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByMember(c.Request.Context(), memberEmail)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservations", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromReservationViews(views)})
}

// @Summary List store reservations
// @Description List reservations across the authenticated owner's stores
// @Tags reserves
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reserves/owner [get]
func (h *ReservationHandler) ListForOwner(c *gin.Context) {
	ownerEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerEmail)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservations", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromReservationViews(views)})
}
