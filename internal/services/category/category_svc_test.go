package category

import (
	"context"
	"regexp"
	"testing"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/pagination"
	"auctionhousego/internal/permissions"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin = permissions.Principal{UserID: 1, Username: "root", IsAdmin: true}
	user  = permissions.Principal{UserID: 2, Username: "bob"}
)

func newSvc(t *testing.T) (ICategoryService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCategoryService(db), mock
}

func TestListCategories(t *testing.T) {
	svc, mock := newSvc(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM categories`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM categories ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(6, "Books").AddRow(7, "Toys"))

	out, err := svc.ListCategories(context.Background(), pagination.Page{Number: 2, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Count)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Books", out.Items[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories_PagePastEnd(t *testing.T) {
	svc, mock := newSvc(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM categories`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	_, err := svc.ListCategories(context.Background(), pagination.Page{Number: 2, Size: 5})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateCategory(t *testing.T) {
	svc, mock := newSvc(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories (name) VALUES ($1) RETURNING id`)).
		WithArgs("Electronics").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	c, err := svc.CreateCategory(context.Background(), admin, "Electronics")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).
		WithArgs("Electronics").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"})

	_, err = svc.CreateCategory(context.Background(), admin, "Electronics")
	var fe *apperr.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{msgNameTaken}, fe.Fields["name"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryWrites_RequireAdmin(t *testing.T) {
	svc, mock := newSvc(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, user, "Toys")
	require.ErrorIs(t, err, apperr.ErrForbidden)
	_, err = svc.UpdateCategory(ctx, permissions.Principal{}, 1, "Toys")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
	require.ErrorIs(t, svc.DeleteCategory(ctx, user, 1), apperr.ErrForbidden)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	svc, mock := newSvc(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE categories SET name = $1 WHERE id = $2`)).
		WithArgs("Gadgets", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	c, err := svc.UpdateCategory(ctx, admin, 1, "Gadgets")
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", c.Name)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, svc.DeleteCategory(ctx, admin, 99), apperr.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
