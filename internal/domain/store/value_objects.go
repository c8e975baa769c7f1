package store

import "errors"

var (
	ErrEmptyStoreName = errors.New("store name cannot be empty")
	ErrInvalidAddress = errors.New("address requires city and street")
)

type Address struct {
	legion  string
	city    string
	street  string
	zipcode string
}

func NewAddress(legion, city, street, zipcode string) (Address, error) {
	if city == "" || street == "" {
		return Address{}, ErrInvalidAddress
	}
	return Address{
		legion:  legion,
		city:    city,
		street:  street,
		zipcode: zipcode,
	}, nil
}

func (a Address) Legion() string  { return a.legion }
func (a Address) City() string    { return a.city }
func (a Address) Street() string  { return a.street }
func (a Address) Zipcode() string { return a.zipcode }
