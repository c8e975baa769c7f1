package response

import (
	"time"

	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreID     uuid.UUID `json:"storeId"`
	StoreName   string    `json:"storeName"`
	MemberEmail string    `json:"memberEmail"`
	Rating      int       `json:"rating"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateReviewResponse struct {
	ReviewID uuid.UUID `json:"reviewId"`
	Rating   int       `json:"rating"`
	Content  string    `json:"content"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	var resp ReviewResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, len(views))
	for i, v := range views {
		result[i] = FromReviewView(v)
	}
	return result
}

func FromCreateReviewResult(r *commands.CreateReviewResult) *CreateReviewResponse {
	var resp CreateReviewResponse
	_ = copier.Copy(&resp, r)
	return &resp
}
