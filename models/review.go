package models

type Review struct {
	ReviewID     int64   `json:"reviewId"`
	HotelID      int64   `json:"hotelId"`
	CustomerName string  `json:"customerName"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	CreatedAt    string  `json:"createdAt"`
}

type ReviewRequest struct {
	HotelID int64  `json:"hotelId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=500"`
}

func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
