package response

import (
	"time"

	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"storeId"`
	StoreName    string    `json:"storeName"`
	MemberEmail  string    `json:"memberEmail"`
	VisitTime    time.Time `json:"visitTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// ReservationResultResponse mirrors the slimmer write-side result.
type ReservationResultResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreName   string    `json:"storeName"`
	MemberEmail string    `json:"memberEmail"`
	VisitTime   time.Time `json:"visitTime"`
	Status      string    `json:"status"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(views))
	for i, v := range views {
		result[i] = FromReservationView(v)
	}
	return result
}

func FromReservationResult(r *commands.ReservationResult) *ReservationResultResponse {
	var resp ReservationResultResponse
	_ = copier.Copy(&resp, r)
	return &resp
}
