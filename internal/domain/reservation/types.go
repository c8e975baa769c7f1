package reservation

type Status string

const (
	StatusValid    Status = "VALID"
	StatusCancel   Status = "CANCEL"
	StatusComplete Status = "COMPLETE"
	StatusReviewed Status = "REVIEWED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusValid, StatusCancel, StatusComplete, StatusReviewed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
