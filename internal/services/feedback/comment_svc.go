package feedback

import (
	"context"
	"database/sql"
	"errors"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/models"
	"auctionhousego/internal/pagination"
	"auctionhousego/internal/permissions"
)

type ICommentService interface {
	ListComments(ctx context.Context, auctionID int64, page pagination.Page) (pagination.List[models.Comment], error)
	GetComment(ctx context.Context, auctionID, id int64) (*models.Comment, error)
	CreateComment(ctx context.Context, p permissions.Principal, auctionID int64, title, body string) (*models.Comment, error)
	UpdateComment(ctx context.Context, p permissions.Principal, auctionID, id int64, title, body string) (*models.Comment, error)
	DeleteComment(ctx context.Context, p permissions.Principal, auctionID, id int64) error
}

const commentColumns = `c.id, c.auction_id, c.user_id, u.username, c.title, c.body, c.created, c.updated`

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.Auction, &c.User, &c.UserUsername, &c.Title, &c.Body, &c.Created, &c.Updated)
	return c, err
}

func (svc *feedbackService) auctionExists(ctx context.Context, auctionID int64) error {
	var exists bool
	err := svc.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM auctions WHERE id = $1)`, auctionID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrNotFound
	}
	return nil
}

// ListComments lists the comments on one auction, newest first.
func (svc *feedbackService) ListComments(ctx context.Context, auctionID int64, page pagination.Page) (pagination.List[models.Comment], error) {
	var out pagination.List[models.Comment]
	if err := svc.auctionExists(ctx, auctionID); err != nil {
		return out, err
	}
	err := svc.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE auction_id = $1`, auctionID).Scan(&out.Count)
	if err != nil {
		return out, err
	}
	if page, err = page.Resolve(out.Count); err != nil {
		return out, err
	}
	out.Page = page

	rows, err := svc.db.QueryContext(ctx,
		`SELECT `+commentColumns+` FROM comments c JOIN users u ON u.id = c.user_id
		  WHERE c.auction_id = $1 ORDER BY c.created DESC, c.id DESC LIMIT $2 OFFSET $3`,
		auctionID, page.Limit(), page.Offset())
	if err != nil {
		return out, err
	}
	defer rows.Close()

	out.Items = make([]models.Comment, 0, page.Limit())
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, c)
	}
	return out, rows.Err()
}

func (svc *feedbackService) GetComment(ctx context.Context, auctionID, id int64) (*models.Comment, error) {
	row := svc.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments c JOIN users u ON u.id = c.user_id
		  WHERE c.id = $1 AND c.auction_id = $2`, id, auctionID)
	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (svc *feedbackService) CreateComment(ctx context.Context, p permissions.Principal, auctionID int64, title, body string) (*models.Comment, error) {
	if err := permissions.RequireAuth(p); err != nil {
		return nil, err
	}
	if err := svc.auctionExists(ctx, auctionID); err != nil {
		return nil, err
	}
	now := models.NewTimestamp(svc.now())
	c := models.Comment{
		Auction:      auctionID,
		User:         p.UserID,
		UserUsername: p.Username,
		Title:        title,
		Body:         body,
		Created:      now,
		Updated:      now,
	}
	err := svc.db.QueryRowContext(ctx,
		`INSERT INTO comments (auction_id, user_id, title, body, created, updated)
		      VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`,
		auctionID, p.UserID, title, body, now.Time,
	).Scan(&c.ID)
	if err != nil {
		return nil, mapFeedbackWriteErr(err, auctionID)
	}
	return &c, nil
}

// UpdateComment rewrites title and body and refreshes the updated timestamp.
func (svc *feedbackService) UpdateComment(ctx context.Context, p permissions.Principal, auctionID, id int64, title, body string) (*models.Comment, error) {
	c, err := svc.GetComment(ctx, auctionID, id)
	if err != nil {
		return nil, err
	}
	if err := permissions.CheckWrite(p, c); err != nil {
		return nil, err
	}
	now := models.NewTimestamp(svc.now())
	_, err = svc.db.ExecContext(ctx,
		`UPDATE comments SET title = $1, body = $2, updated = $3 WHERE id = $4`,
		title, body, now.Time, id)
	if err != nil {
		return nil, err
	}
	c.Title, c.Body, c.Updated = title, body, now
	return c, nil
}

func (svc *feedbackService) DeleteComment(ctx context.Context, p permissions.Principal, auctionID, id int64) error {
	c, err := svc.GetComment(ctx, auctionID, id)
	if err != nil {
		return err
	}
	if err := permissions.CheckWrite(p, c); err != nil {
		return err
	}
	_, err = svc.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}
