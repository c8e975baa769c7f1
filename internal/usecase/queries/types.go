package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type MemberView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Gender      string    `json:"gender"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"created_at"`
}

type StoreView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Legion      string    `json:"legion"`
	City        string    `json:"city"`
	Street      string    `json:"street"`
	Zipcode     string    `json:"zipcode"`
	Description string    `json:"description"`
	OwnerEmail  string    `json:"owner_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"store_id"`
	StoreName    string    `json:"store_name"`
	MemberID     uuid.UUID `json:"member_id"`
	MemberEmail  string    `json:"member_email"`
	VisitTime    time.Time `json:"visit_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

type ReviewView struct {
	ID          uuid.UUID `json:"id"`
	StoreID     uuid.UUID `json:"store_id"`
	StoreName   string    `json:"store_name"`
	MemberEmail string    `json:"member_email"`
	Rating      int       `json:"rating"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoreSearchCond narrows the store list; nil fields match everything.
type StoreSearchCond struct {
	Name *string
	City *string
}
