package category

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

const msgNameTaken = "category with this name already exists."

//go:generate mockgen -source=category_svc.go -destination=mocks/category_svc_mock.go -package=mocks
type ICategoryService interface {
	ListCategories(ctx context.Context, page pagination.Page) (pagination.List[models.Category], error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, p permissions.Principal, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, p permissions.Principal, id int64, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, p permissions.Principal, id int64) error
}

type categoryService struct {
	db *sql.DB
}

func NewCategoryService(db *sql.DB) ICategoryService {
	return &categoryService{db: db}
}

func (svc *categoryService) ListCategories(ctx context.Context, page pagination.Page) (pagination.List[models.Category], error) {
	var out pagination.List[models.Category]
	if err := svc.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&out.Count); err != nil {
		return out, err
	}
	page, err := page.Resolve(out.Count)
	if err != nil {
		return out, err
	}
	out.Page = page

	rows, err := svc.db.QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY id LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		return out, err
	}
	defer rows.Close()

	out.Items = make([]models.Category, 0, page.Limit())
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return out, err
		}
		out.Items = append(out.Items, c)
	}
	return out, rows.Err()
}

func (svc *categoryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	c := &models.Category{}
	err := svc.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (svc *categoryService) CreateCategory(ctx context.Context, p permissions.Principal, name string) (*models.Category, error) {
	if err := permissions.RequireAdmin(p); err != nil {
		return nil, err
	}
	c := &models.Category{Name: name}
	err := svc.db.QueryRowContext(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&c.ID)
	if err != nil {
		return nil, mapWriteErr(err)
	}
	zap.L().Info("category_created", zap.Int64("id", c.ID), zap.String("name", name))
	return c, nil
}

func (svc *categoryService) UpdateCategory(ctx context.Context, p permissions.Principal, id int64, name string) (*models.Category, error) {
	if err := permissions.RequireAdmin(p); err != nil {
		return nil, err
	}
	res, err := svc.db.ExecContext(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return nil, mapWriteErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.ErrNotFound
	}
	return &models.Category{ID: id, Name: name}, nil
}

// DeleteCategory removes the category together with its auctions and everything hanging off them.
func (svc *categoryService) DeleteCategory(ctx context.Context, p permissions.Principal, id int64) error {
	if err := permissions.RequireAdmin(p); err != nil {
		return err
	}
	res, err := svc.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	zap.L().Info("category_deleted", zap.Int64("id", id), zap.Int64("by", p.UserID))
	return nil
}

func mapWriteErr(err error) error {
	if _, ok := db_client.UniqueViolation(err); ok {
		return apperr.NewFieldError("name", msgNameTaken)
	}
	return fmt.Errorf("write category: %w", err)
}
