package request

import (
	"time"
)

// VisitTimeLayout is the fixed wire format for requested visit times.
const VisitTimeLayout = "2006-01-02 15:04:05"

type CreateReservationRequest struct {
	StoreName string `json:"storeName" binding:"required"`
	VisitTime string `json:"visitTime" binding:"required"`
}

func (r CreateReservationRequest) ParseVisitTime() (time.Time, error) {
	return time.ParseInLocation(VisitTimeLayout, r.VisitTime, time.Local)
}

// CreateStoreReservationRequest is the store-page booking variant: the
// store id arrives in the path instead of a name in the body.
type CreateStoreReservationRequest struct {
	VisitTime string `json:"visitTime" binding:"required"`
}

func (r CreateStoreReservationRequest) ParseVisitTime() (time.Time, error) {
	return time.ParseInLocation(VisitTimeLayout, r.VisitTime, time.Local)
}
