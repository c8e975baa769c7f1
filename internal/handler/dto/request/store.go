package request

import (
	"table-reserve/internal/domain/store"
)

type CreateStoreRequest struct {
	StoreName   string `json:"storeName" binding:"required,max=30"`
	Legion      string `json:"legion" binding:"omitempty,max=30"`
	City        string `json:"city" binding:"required,max=30"`
	Street      string `json:"street" binding:"required,max=30"`
	Zipcode     string `json:"zipcode" binding:"omitempty,max=30"`
	Description string `json:"description" binding:"omitempty"`
}

func (r CreateStoreRequest) ToAddress() (store.Address, error) {
	return store.NewAddress(r.Legion, r.City, r.Street, r.Zipcode)
}

// StoreSearchRequest is bound from query parameters.
type StoreSearchRequest struct {
	Name *string `form:"name"`
	City *string `form:"city"`
}
