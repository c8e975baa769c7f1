package response

import (
	"time"

	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Legion      string    `json:"legion"`
	City        string    `json:"city"`
	Street      string    `json:"street"`
	Zipcode     string    `json:"zipcode"`
	Description string    `json:"description"`
	OwnerEmail  string    `json:"ownerEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateStoreResponse struct {
	StoreID    uuid.UUID `json:"storeId"`
	Name       string    `json:"name"`
	OwnerEmail string    `json:"ownerEmail"`
}

func FromStoreView(v *queries.StoreView) *StoreResponse {
	var resp StoreResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromStoreViews(views []*queries.StoreView) []*StoreResponse {
	result := make([]*StoreResponse, len(views))
	for i, v := range views {
		result[i] = FromStoreView(v)
	}
	return result
}

func FromCreateStoreResult(r *commands.CreateStoreResult) *CreateStoreResponse {
	var resp CreateStoreResponse
	_ = copier.Copy(&resp, r)
	return &resp
}
