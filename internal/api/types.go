package api

type EntryRequest struct {
	FoodID string `json:"food_id" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
