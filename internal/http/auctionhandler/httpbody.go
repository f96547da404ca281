package auctionhandler

import (
	"auctionhousego/internal/models"
	"auctionhousego/internal/services/auction"
	"auctionhousego/internal/validation"

	"github.com/shopspring/decimal"
)

type AuctionBody struct {
	Title       string            `json:"title"        binding:"required,max=150"         example:"iPhone 15"`
	Description string            `json:"description"  binding:"required"                 example:"Sealed box"`
	Price       *decimal.Decimal  `json:"price"        binding:"required"                 swaggertype:"string" example:"799.00"`
	Stock       int               `json:"stock"        binding:"required,min=1"           example:"1"`
	Brand       string            `json:"brand"        binding:"required,max=100"         example:"Apple"`
	Category    int64             `json:"category"     binding:"required,min=1"           example:"1"`
	Thumbnail   string            `json:"thumbnail"    binding:"required,url,max=200"     example:"https://cdn.example.com/iphone.png"`
	ClosingDate *models.Timestamp `json:"closing_date" binding:"required"                 swaggertype:"string" example:"2025-08-27T16:05:05Z"`
} // @name AuctionRequest

func (b AuctionBody) input() (auction.AuctionInput, error) {
	if err := validation.CheckPrice("price", *b.Price); err != nil {
		return auction.AuctionInput{}, err
	}
	return auction.AuctionInput{
		Title:       b.Title,
		Description: b.Description,
		Price:       *b.Price,
		Stock:       b.Stock,
		Brand:       b.Brand,
		Category:    b.Category,
		Thumbnail:   b.Thumbnail,
		ClosingDate: b.ClosingDate.Time,
	}, nil
}

type BidBody struct {
	Price *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"150.00"`
} // @name BidRequest

func (b BidBody) price() (decimal.Decimal, error) {
	if err := validation.CheckPrice("price", *b.Price); err != nil {
		return decimal.Decimal{}, err
	}
	return *b.Price, nil
}

type AuctionPage struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []models.Auction `json:"results"`
} // @name AuctionPage

type BidPage struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []models.Bid `json:"results"`
} // @name BidPage
