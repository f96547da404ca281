package auction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/database/db_client"
	"auctionhousego/internal/models"
	"auctionhousego/internal/pagination"
	"auctionhousego/internal/permissions"
	"auctionhousego/internal/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type IBidService interface {
	ListBids(ctx context.Context, auctionID int64, page pagination.Page) (pagination.List[models.Bid], error)
	ListUserBids(ctx context.Context, p permissions.Principal, page pagination.Page) (pagination.List[models.Bid], error)
	GetBid(ctx context.Context, auctionID, bidID int64) (*models.Bid, error)
	PlaceBid(ctx context.Context, p permissions.Principal, auctionID int64, price decimal.Decimal) (*models.Bid, error)
	UpdateBid(ctx context.Context, p permissions.Principal, auctionID, bidID int64, price decimal.Decimal) (*models.Bid, error)
	DeleteBid(ctx context.Context, p permissions.Principal, auctionID, bidID int64) error
}

const bidColumns = `b.id, b.auction_id, b.price, b.creation_date, b.bidder_id, u.username`

func scanBid(row rowScanner) (models.Bid, error) {
	var b models.Bid
	err := row.Scan(&b.ID, &b.Auction, &b.Price, &b.CreationDate, &b.Bidder, &b.BidderUsername)
	return b, err
}

// ListBids lists the bids of one auction, highest first.
func (svc *auctionService) ListBids(ctx context.Context, auctionID int64, page pagination.Page) (pagination.List[models.Bid], error) {
	var exists bool
	err := svc.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM auctions WHERE id = $1)`, auctionID).Scan(&exists)
	if err != nil {
		return pagination.List[models.Bid]{}, err
	}
	if !exists {
		return pagination.List[models.Bid]{}, apperr.ErrNotFound
	}
	return svc.listBids(ctx, "b.auction_id = $1", auctionID, "b.price DESC, b.id", page)
}

// ListUserBids lists the bids the caller placed across all auctions, newest first.
func (svc *auctionService) ListUserBids(ctx context.Context, p permissions.Principal, page pagination.Page) (pagination.List[models.Bid], error) {
	if err := permissions.RequireAuth(p); err != nil {
		return pagination.List[models.Bid]{}, err
	}
	return svc.listBids(ctx, "b.bidder_id = $1", p.UserID, "b.creation_date DESC, b.id DESC", page)
}

func (svc *auctionService) listBids(ctx context.Context, cond string, arg any, order string, page pagination.Page) (pagination.List[models.Bid], error) {
	var out pagination.List[models.Bid]
	err := svc.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bids b WHERE `+cond, arg).Scan(&out.Count)
	if err != nil {
		return out, err
	}
	if page, err = page.Resolve(out.Count); err != nil {
		return out, err
	}
	out.Page = page

	rows, err := svc.db.QueryContext(ctx,
		`SELECT `+bidColumns+` FROM bids b JOIN users u ON u.id = b.bidder_id WHERE `+cond+
			` ORDER BY `+order+` LIMIT $2 OFFSET $3`,
		arg, page.Limit(), page.Offset())
	if err != nil {
		return out, err
	}
	defer rows.Close()

	out.Items = make([]models.Bid, 0, page.Limit())
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, b)
	}
	return out, rows.Err()
}

func (svc *auctionService) GetBid(ctx context.Context, auctionID, bidID int64) (*models.Bid, error) {
	row := svc.db.QueryRowContext(ctx,
		`SELECT `+bidColumns+` FROM bids b JOIN users u ON u.id = b.bidder_id WHERE b.id = $1 AND b.auction_id = $2`,
		bidID, auctionID)
	b, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// lockAuction takes the row lock that serialises every bid write on one auction and
// returns its closing date.
func lockAuction(ctx context.Context, tx *sql.Tx, auctionID int64) (time.Time, error) {
	var closing time.Time
	err := tx.QueryRowContext(ctx, `SELECT closing_date FROM auctions WHERE id = $1 FOR UPDATE`, auctionID).Scan(&closing)
	if errors.Is(err, sql.ErrNoRows) {
		return closing, apperr.ErrNotFound
	}
	return closing, err
}

// highestBid reads the persisted maximum, ignoring excludeID (0 excludes nothing).
func highestBid(ctx context.Context, tx *sql.Tx, auctionID, excludeID int64) (decimal.NullDecimal, error) {
	var top decimal.NullDecimal
	err := tx.QueryRowContext(ctx,
		`SELECT MAX(price) FROM bids WHERE auction_id = $1 AND id <> $2`, auctionID, excludeID,
	).Scan(&top)
	return top, err
}

// lockedBid loads a bid inside the auction lock.
func lockedBid(ctx context.Context, tx *sql.Tx, auctionID, bidID int64) (models.Bid, error) {
	b := models.Bid{ID: bidID, Auction: auctionID}
	err := tx.QueryRowContext(ctx,
		`SELECT bidder_id FROM bids WHERE id = $1 AND auction_id = $2`, bidID, auctionID,
	).Scan(&b.Bidder)
	if errors.Is(err, sql.ErrNoRows) {
		return b, apperr.ErrNotFound
	}
	return b, err
}

func (svc *auctionService) PlaceBid(ctx context.Context, p permissions.Principal, auctionID int64, price decimal.Decimal) (*models.Bid, error) {
	if err := permissions.RequireAuth(p); err != nil {
		return nil, err
	}
	if err := validation.CheckPrice("price", price); err != nil {
		return nil, err
	}
	tx, err := svc.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	closing, err := lockAuction(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	top, err := highestBid(ctx, tx, auctionID, 0)
	if err != nil {
		return nil, err
	}
	now := svc.now().UTC()
	if err := validation.CheckBid(closing, price, top.Decimal, top.Valid, now); err != nil {
		zap.L().Debug("bid_rejected", zap.Int64("auction", auctionID), zap.String("price", price.String()), zap.Error(err))
		return nil, err
	}

	b := &models.Bid{
		Auction:        auctionID,
		Price:          models.NewPrice(price),
		CreationDate:   models.NewTimestamp(now),
		Bidder:         p.UserID,
		BidderUsername: p.Username,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO bids (auction_id, price, creation_date, bidder_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		auctionID, price, now, p.UserID,
	).Scan(&b.ID)
	if err != nil {
		if db_client.MissingUser(err) {
			return nil, apperr.ErrAccountGone
		}
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	zap.L().Info("bid_placed", zap.Int64("auction", auctionID), zap.Int64("bid", b.ID), zap.String("price", b.Price.String()))
	return b, nil
}

// UpdateBid changes the price of a bid. The new price has to beat every other bid on the
// auction, and the auction must still be open.
func (svc *auctionService) UpdateBid(ctx context.Context, p permissions.Principal, auctionID, bidID int64, price decimal.Decimal) (*models.Bid, error) {
	if err := validation.CheckPrice("price", price); err != nil {
		return nil, err
	}
	tx, err := svc.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	closing, err := lockAuction(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	bid, err := lockedBid(ctx, tx, auctionID, bidID)
	if err != nil {
		return nil, err
	}
	if err := permissions.CheckWrite(p, bid); err != nil {
		return nil, err
	}
	top, err := highestBid(ctx, tx, auctionID, bidID)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckBid(closing, price, top.Decimal, top.Valid, svc.now()); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `UPDATE bids SET price = $1 WHERE id = $2`, price, bidID); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return svc.GetBid(ctx, auctionID, bidID)
}

func (svc *auctionService) DeleteBid(ctx context.Context, p permissions.Principal, auctionID, bidID int64) error {
	tx, err := svc.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	closing, err := lockAuction(ctx, tx, auctionID)
	if err != nil {
		return err
	}
	bid, err := lockedBid(ctx, tx, auctionID, bidID)
	if err != nil {
		return err
	}
	if err := permissions.CheckWrite(p, bid); err != nil {
		return err
	}
	if err := validation.CheckBidMutable(closing, svc.now()); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bids WHERE id = $1`, bidID); err != nil {
		return err
	}
	return tx.Commit()
}
