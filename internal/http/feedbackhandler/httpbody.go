package feedbackhandler

import "auctionhousego/internal/models"

type RatingBody struct {
	Auction int64 `json:"auction" binding:"required,min=1"       example:"7"`
	Value   int   `json:"value"   binding:"required,min=1,max=5" example:"4"`
} // @name RatingRequest

// Only the value of an existing rating can change.
type RatingUpdateBody struct {
	Value int `json:"value" binding:"required,min=1,max=5" example:"5"`
} // @name RatingUpdateRequest

type RatingsQuery struct {
	Auction int64 `form:"auction" json:"auction" binding:"omitempty,min=1"`
}

type CommentBody struct {
	Title string `json:"title" binding:"required,max=150" example:"Great seller"`
	Body  string `json:"body"  binding:"required"         example:"Shipped the next day."`
} // @name CommentRequest

type RatingPage struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []models.Rating `json:"results"`
} // @name RatingPage

type CommentPage struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []models.Comment `json:"results"`
} // @name CommentPage
