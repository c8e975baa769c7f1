package request

type CreateReviewRequest struct {
	Rating  *int   `json:"rating" binding:"required,min=0,max=5"`
	Content string `json:"content" binding:"required,max=1000"`
}

func (r CreateReviewRequest) RatingValue() int {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}
