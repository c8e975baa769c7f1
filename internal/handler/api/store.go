package api

import (
	"errors"
	"net/http"

	reqdto "table-reserve/internal/handler/dto/request"
	resdto "table-reserve/internal/handler/dto/response"
	"table-reserve/internal/handler/httperr"
	"table-reserve/internal/handler/middleware"
	"table-reserve/internal/infra"
	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoreHandler struct {
	cmds    commands.StoreCommands
	q       queries.StoreQueries
	reviews queries.ReviewQueries
}

func NewStoreHandler(cmds commands.StoreCommands, q queries.StoreQueries, reviews queries.ReviewQueries) *StoreHandler {
	return &StoreHandler{cmds: cmds, q: q, reviews: reviews}
}

// @Summary Register store
// @Description Register a new store owned by the authenticated partner
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStoreRequest true "Create store request"
// @Success 201 {object} resdto.CreateStoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stores/new [post]
func (h *StoreHandler) Create(c *gin.Context) {
	ownerEmail, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateStore(c.Request.Context(), req, ownerEmail)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateStoreName):
			httperr.AbortWithError(c, http.StatusConflict, err, "Store name already registered", nil)
		case errors.Is(err, commands.ErrMemberNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Owner not found", nil)
		case errors.Is(err, commands.ErrInvalidStoreInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store input", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create store failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateStoreResult(result))
}

// @Summary Search stores
// @Description List stores, optionally filtered by name or city
// @Tags stores
// @Produce json
// @Param name query string false "Partial store name"
// @Param city query string false "City"
// @Success 200 {array} resdto.StoreResponse
// @Failure 500 {object} httperr.Response
// @Router /stores [get]
func (h *StoreHandler) Search(c *gin.Context) {
	var req reqdto.StoreSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search condition", nil)
		return
	}
	views, err := h.q.Search(c.Request.Context(), queries.StoreSearchCond{Name: req.Name, City: req.City})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": resdto.FromStoreViews(views)})
}

// @Summary Get store
// @Description Get store details by ID
// @Tags stores
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{storeId} [get]
func (h *StoreHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load store", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreView(view))
}

// @Summary List store reviews
// @Description List reviews posted for a store, newest first
// @Tags stores
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /stores/{storeId}/reviews [get]
func (h *StoreHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store id", nil)
		return
	}
	views, err := h.reviews.ListByStore(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromReviewViews(views)})
}
