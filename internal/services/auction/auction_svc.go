package auction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/database/db_client"
	"auctionhousego/internal/filters"
	"auctionhousego/internal/models"
	"auctionhousego/internal/pagination"
	"auctionhousego/internal/permissions"
	"auctionhousego/internal/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AuctionInput carries the writable attributes of an auction.
type AuctionInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Stock       int
	Brand       string
	Category    int64
	Thumbnail   string
	ClosingDate time.Time
}

//go:generate mockgen -source=auction_svc.go -destination=mocks/auction_svc_mock.go -package=mocks -aux_files=auctionhousego/internal/services/auction=bid_svc.go
type IAuctionService interface {
	ListAuctions(ctx context.Context, f filters.AuctionFilter, page pagination.Page) (pagination.List[models.Auction], error)
	ListUserAuctions(ctx context.Context, p permissions.Principal, page pagination.Page) (pagination.List[models.Auction], error)
	GetAuction(ctx context.Context, id int64) (*models.Auction, error)
	CreateAuction(ctx context.Context, p permissions.Principal, in AuctionInput) (*models.Auction, error)
	UpdateAuction(ctx context.Context, p permissions.Principal, id int64, in AuctionInput) (*models.Auction, error)
	DeleteAuction(ctx context.Context, p permissions.Principal, id int64) error

	IBidService
}

type auctionService struct {
	db  *sql.DB
	now func() time.Time
}

var _ IAuctionService = (*auctionService)(nil)

func NewAuctionService(db *sql.DB) IAuctionService {
	return newAuctionService(db, time.Now)
}

func newAuctionService(db *sql.DB, now func() time.Time) *auctionService {
	return &auctionService{db: db, now: now}
}

const auctionColumns = `a.id, a.title, a.description, a.price, a.stock, a.brand, a.category_id,
       a.thumbnail, a.creation_date, a.closing_date, a.auctioneer_id,
       (SELECT AVG(r.value) FROM ratings r WHERE r.auction_id = a.id)`

type rowScanner interface {
	Scan(dest ...any) error
}

func (svc *auctionService) scanAuction(row rowScanner) (models.Auction, error) {
	var (
		a   models.Auction
		avg sql.NullFloat64
	)
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Price, &a.Stock, &a.Brand, &a.Category,
		&a.Thumbnail, &a.CreationDate, &a.ClosingDate, &a.Auctioneer, &avg)
	if err != nil {
		return a, err
	}
	a.IsOpen = validation.IsOpen(a.ClosingDate.Time, svc.now())
	a.AverageRating = validation.AverageRating(avg.Float64, avg.Valid)
	return a, nil
}

// ListAuctions returns one page of auctions matching every criterion of f, ordered by id.
func (svc *auctionService) ListAuctions(ctx context.Context, f filters.AuctionFilter, page pagination.Page) (pagination.List[models.Auction], error) {
	if f.HasCategoryName() {
		var exists bool
		err := svc.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`, f.CategoryName).Scan(&exists)
		if err != nil {
			return pagination.List[models.Auction]{}, err
		}
		if !exists {
			return pagination.List[models.Auction]{}, apperr.NewFieldError("category",
				fmt.Sprintf("Category '%s' does not exist.", f.CategoryName))
		}
	}
	where, args := f.Where(1)
	if where != "" {
		where = " WHERE " + where
	}
	return svc.listAuctions(ctx, where, args, page)
}

// ListUserAuctions lists the auctions the caller is auctioneer of.
func (svc *auctionService) ListUserAuctions(ctx context.Context, p permissions.Principal, page pagination.Page) (pagination.List[models.Auction], error) {
	if err := permissions.RequireAuth(p); err != nil {
		return pagination.List[models.Auction]{}, err
	}
	return svc.listAuctions(ctx, " WHERE a.auctioneer_id = $1", []any{p.UserID}, page)
}

func (svc *auctionService) listAuctions(ctx context.Context, where string, args []any, page pagination.Page) (pagination.List[models.Auction], error) {
	var out pagination.List[models.Auction]
	err := svc.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM auctions a`+where, args...).Scan(&out.Count)
	if err != nil {
		return out, err
	}
	if page, err = page.Resolve(out.Count); err != nil {
		return out, err
	}
	out.Page = page

	n := len(args)
	q := fmt.Sprintf(`SELECT %s FROM auctions a%s ORDER BY a.id LIMIT $%d OFFSET $%d`,
		auctionColumns, where, n+1, n+2)
	rows, err := svc.db.QueryContext(ctx, q, append(args, page.Limit(), page.Offset())...)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	out.Items = make([]models.Auction, 0, page.Limit())
	for rows.Next() {
		a, err := svc.scanAuction(rows)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, a)
	}
	return out, rows.Err()
}

func (svc *auctionService) GetAuction(ctx context.Context, id int64) (*models.Auction, error) {
	row := svc.db.QueryRowContext(ctx, `SELECT `+auctionColumns+` FROM auctions a WHERE a.id = $1`, id)
	a, err := svc.scanAuction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (svc *auctionService) CreateAuction(ctx context.Context, p permissions.Principal, in AuctionInput) (*models.Auction, error) {
	if err := permissions.RequireAuth(p); err != nil {
		return nil, err
	}
	now := svc.now().UTC()
	if err := validation.CheckAuctionDuration(in.ClosingDate, now, now); err != nil {
		return nil, err
	}

	const insertQ = `
	  INSERT INTO auctions (title, description, price, stock, brand, category_id,
	                        thumbnail, creation_date, closing_date, auctioneer_id)
	       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	    RETURNING id`
	var id int64
	err := svc.db.QueryRowContext(ctx, insertQ,
		in.Title, in.Description, in.Price, in.Stock, in.Brand, in.Category,
		in.Thumbnail, now, in.ClosingDate.UTC(), p.UserID,
	).Scan(&id)
	if err != nil {
		return nil, mapAuctionWriteErr(err, in.Category)
	}
	zap.L().Info("auction_created", zap.Int64("id", id), zap.Int64("auctioneer", p.UserID))

	return &models.Auction{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Price:        models.NewPrice(in.Price),
		Stock:        in.Stock,
		Brand:        in.Brand,
		Category:     in.Category,
		Thumbnail:    in.Thumbnail,
		CreationDate: models.NewTimestamp(now),
		ClosingDate:  models.NewTimestamp(in.ClosingDate),
		Auctioneer:   p.UserID,
		IsOpen:       true,
	}, nil
}

// UpdateAuction replaces the writable attributes. The minimum duration is measured from
// the stored creation date; creation date and auctioneer never change.
func (svc *auctionService) UpdateAuction(ctx context.Context, p permissions.Principal, id int64, in AuctionInput) (*models.Auction, error) {
	tx, err := svc.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var (
		owner   models.Auction
		created time.Time
	)
	err = tx.QueryRowContext(ctx,
		`SELECT auctioneer_id, creation_date FROM auctions WHERE id = $1 FOR UPDATE`, id,
	).Scan(&owner.Auctioneer, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := permissions.CheckWrite(p, owner); err != nil {
		return nil, err
	}
	if err := validation.CheckAuctionDuration(in.ClosingDate, created, svc.now()); err != nil {
		return nil, err
	}

	const updateQ = `
	  UPDATE auctions
	     SET title = $1, description = $2, price = $3, stock = $4, brand = $5,
	         category_id = $6, thumbnail = $7, closing_date = $8
	   WHERE id = $9`
	_, err = tx.ExecContext(ctx, updateQ,
		in.Title, in.Description, in.Price, in.Stock, in.Brand,
		in.Category, in.Thumbnail, in.ClosingDate.UTC(), id,
	)
	if err != nil {
		return nil, mapAuctionWriteErr(err, in.Category)
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return svc.GetAuction(ctx, id)
}

// DeleteAuction removes the auction; bids, ratings and comments go with it.
func (svc *auctionService) DeleteAuction(ctx context.Context, p permissions.Principal, id int64) error {
	var owner models.Auction
	err := svc.db.QueryRowContext(ctx, `SELECT auctioneer_id FROM auctions WHERE id = $1`, id).Scan(&owner.Auctioneer)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := permissions.CheckWrite(p, owner); err != nil {
		return err
	}
	if _, err := svc.db.ExecContext(ctx, `DELETE FROM auctions WHERE id = $1`, id); err != nil {
		return err
	}
	zap.L().Info("auction_deleted", zap.Int64("id", id), zap.Int64("by", p.UserID))
	return nil
}

func mapAuctionWriteErr(err error, category int64) error {
	if db_client.MissingUser(err) {
		return apperr.ErrAccountGone
	}
	if _, ok := db_client.ForeignKeyViolation(err); ok {
		return apperr.NewFieldError("category",
			fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, category))
	}
	return fmt.Errorf("write auction: %w", err)
}
