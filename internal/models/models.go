package models

import (
	"auctionhousego/internal/permissions"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	IsStaff      bool      `json:"is_staff"`
	DateJoined   Timestamp `json:"date_joined" swaggertype:"string" example:"2025-07-27T16:05:05Z"`
	PasswordHash string    `json:"-"`
} // @name User

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" example:"Electronics"`
} // @name Category

type Auction struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"          example:"iPhone 15"`
	Description   string    `json:"description"`
	Price         Price     `json:"price"          swaggertype:"string" example:"799.00"`
	Stock         int       `json:"stock"          example:"1"`
	Brand         string    `json:"brand"          example:"Apple"`
	Category      int64     `json:"category"`
	Thumbnail     string    `json:"thumbnail"      example:"https://cdn.example.com/iphone.png"`
	CreationDate  Timestamp `json:"creation_date"  swaggertype:"string" example:"2025-07-27T16:05:05Z"`
	ClosingDate   Timestamp `json:"closing_date"   swaggertype:"string" example:"2025-08-27T16:05:05Z"`
	Auctioneer    int64     `json:"auctioneer"`
	IsOpen        bool      `json:"isOpen"`
	AverageRating float64   `json:"average_rating" example:"3.5"`
} // @name Auction

type Bid struct {
	ID             int64     `json:"id"`
	Auction        int64     `json:"auction"`
	Price          Price     `json:"price"           swaggertype:"string" example:"150.00"`
	CreationDate   Timestamp `json:"creation_date"   swaggertype:"string" example:"2025-07-27T16:05:05Z"`
	Bidder         int64     `json:"bidder"`
	BidderUsername string    `json:"bidder_username"`
} // @name Bid

type Rating struct {
	ID      int64     `json:"id"`
	Auction int64     `json:"auction"`
	User    int64     `json:"user"`
	Value   int       `json:"value" example:"4"`
	Created Timestamp `json:"created" swaggertype:"string" example:"2025-07-27T16:05:05Z"`
} // @name Rating

type Comment struct {
	ID           int64     `json:"id"`
	Auction      int64     `json:"auction"`
	User         int64     `json:"user"`
	UserUsername string    `json:"user_username"`
	Title        string    `json:"title"   example:"Great seller"`
	Body         string    `json:"body"`
	Created      Timestamp `json:"created" swaggertype:"string" example:"2025-07-27T16:05:05Z"`
	Updated      Timestamp `json:"updated" swaggertype:"string" example:"2025-07-27T16:05:05Z"`
} // @name Comment

func (Category) OwnerPrincipal() permissions.Owner {
	return permissions.Owner{Kind: permissions.OwnerNone}
}

func (a Auction) OwnerPrincipal() permissions.Owner {
	return permissions.Owner{Kind: permissions.OwnerAuctioneer, UserID: a.Auctioneer}
}

func (b Bid) OwnerPrincipal() permissions.Owner {
	return permissions.Owner{Kind: permissions.OwnerUser, UserID: b.Bidder}
}

func (r Rating) OwnerPrincipal() permissions.Owner {
	return permissions.Owner{Kind: permissions.OwnerUser, UserID: r.User}
}

func (c Comment) OwnerPrincipal() permissions.Owner {
	return permissions.Owner{Kind: permissions.OwnerUser, UserID: c.User}
}

func (u User) OwnerPrincipal() permissions.Owner {
	return permissions.Owner{Kind: permissions.OwnerUser, UserID: u.ID}
}
