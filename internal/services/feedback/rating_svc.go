package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/database/db_client"
	"auctionhousego/internal/models"
	"auctionhousego/internal/pagination"
	"auctionhousego/internal/permissions"

	"go.uber.org/zap"
)

const (
	msgAlreadyRated = "You have already rated this auction."
	msgNoAuction    = `Invalid pk "%d" - object does not exist.`
)

// Ratings are private to their author; admins see every rating.
type IRatingService interface {
	ListRatings(ctx context.Context, p permissions.Principal, auctionID int64, page pagination.Page) (pagination.List[models.Rating], error)
	GetRating(ctx context.Context, p permissions.Principal, id int64) (*models.Rating, error)
	CreateRating(ctx context.Context, p permissions.Principal, auctionID int64, value int) (*models.Rating, error)
	UpdateRating(ctx context.Context, p permissions.Principal, id int64, value int) (*models.Rating, error)
	DeleteRating(ctx context.Context, p permissions.Principal, id int64) error
}

const ratingColumns = `id, auction_id, user_id, value, created`

func scanRating(row rowScanner) (models.Rating, error) {
	var r models.Rating
	err := row.Scan(&r.ID, &r.Auction, &r.User, &r.Value, &r.Created)
	return r, err
}

// ListRatings lists the caller's ratings, newest first. auctionID 0 lists all of them.
func (svc *feedbackService) ListRatings(ctx context.Context, p permissions.Principal, auctionID int64, page pagination.Page) (pagination.List[models.Rating], error) {
	var out pagination.List[models.Rating]
	if err := permissions.RequireAuth(p); err != nil {
		return out, err
	}

	var (
		conds []string
		args  []any
	)
	if !p.IsAdmin {
		args = append(args, p.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if auctionID != 0 {
		args = append(args, auctionID)
		conds = append(conds, fmt.Sprintf("auction_id = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + joinAnd(conds)
	}

	err := svc.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings`+where, args...).Scan(&out.Count)
	if err != nil {
		return out, err
	}
	if page, err = page.Resolve(out.Count); err != nil {
		return out, err
	}
	out.Page = page

	q := fmt.Sprintf(`SELECT %s FROM ratings%s ORDER BY created DESC, id DESC LIMIT $%d OFFSET $%d`,
		ratingColumns, where, len(args)+1, len(args)+2)
	rows, err := svc.db.QueryContext(ctx, q, append(args, page.Limit(), page.Offset())...)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	out.Items = make([]models.Rating, 0, page.Limit())
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, r)
	}
	return out, rows.Err()
}

// GetRating hides other users' ratings behind a 404 so their existence does not leak.
func (svc *feedbackService) GetRating(ctx context.Context, p permissions.Principal, id int64) (*models.Rating, error) {
	if err := permissions.RequireAuth(p); err != nil {
		return nil, err
	}
	r, err := scanRating(svc.db.QueryRowContext(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !permissions.CanWrite(p, r) {
		return nil, apperr.ErrNotFound
	}
	return &r, nil
}

func (svc *feedbackService) CreateRating(ctx context.Context, p permissions.Principal, auctionID int64, value int) (*models.Rating, error) {
	if err := permissions.RequireAuth(p); err != nil {
		return nil, err
	}
	r := models.Rating{Auction: auctionID, User: p.UserID, Value: value, Created: models.NewTimestamp(svc.now())}
	err := svc.db.QueryRowContext(ctx,
		`INSERT INTO ratings (auction_id, user_id, value, created) VALUES ($1, $2, $3, $4) RETURNING id`,
		auctionID, p.UserID, value, r.Created.Time,
	).Scan(&r.ID)
	if err != nil {
		return nil, mapFeedbackWriteErr(err, auctionID)
	}
	zap.L().Info("rating_created", zap.Int64("auction", auctionID), zap.Int64("user", p.UserID), zap.Int("value", value))
	return &r, nil
}

// UpdateRating changes only the value; auction and author are fixed at creation.
func (svc *feedbackService) UpdateRating(ctx context.Context, p permissions.Principal, id int64, value int) (*models.Rating, error) {
	r, err := svc.GetRating(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := permissions.CheckWrite(p, r); err != nil {
		return nil, err
	}
	if _, err := svc.db.ExecContext(ctx, `UPDATE ratings SET value = $1 WHERE id = $2`, value, id); err != nil {
		return nil, err
	}
	r.Value = value
	return r, nil
}

func (svc *feedbackService) DeleteRating(ctx context.Context, p permissions.Principal, id int64) error {
	r, err := svc.GetRating(ctx, p, id)
	if err != nil {
		return err
	}
	if err := permissions.CheckWrite(p, r); err != nil {
		return err
	}
	_, err = svc.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	return err
}

func mapFeedbackWriteErr(err error, auctionID int64) error {
	if _, ok := db_client.UniqueViolation(err); ok {
		return apperr.NewFieldError(apperr.NonFieldKey, msgAlreadyRated)
	}
	if db_client.MissingUser(err) {
		return apperr.ErrAccountGone
	}
	if _, ok := db_client.ForeignKeyViolation(err); ok {
		return apperr.NewFieldError("auction", fmt.Sprintf(msgNoAuction, auctionID))
	}
	return fmt.Errorf("write feedback: %w", err)
}
