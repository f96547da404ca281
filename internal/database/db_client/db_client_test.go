package db_client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN("db", "5432", "auction_user", "p@ss:word", "auction_db", "disable")
	require.Equal(t, "postgres://auction_user:p%40ss%3Aword@db:5432/auction_db?sslmode=disable", dsn)
}

func TestPgErrors(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"})
	name, ok := UniqueViolation(dup)
	require.True(t, ok)
	require.Equal(t, "categories_name_key", name)
	_, ok = ForeignKeyViolation(dup)
	require.False(t, ok)

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "auctions_category_id_fkey"}
	name, ok = ForeignKeyViolation(fk)
	require.True(t, ok)
	require.Equal(t, "auctions_category_id_fkey", name)

	_, ok = UniqueViolation(errors.New("boom"))
	require.False(t, ok)
}

func TestMissingUser(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"auctioneer", &pgconn.PgError{Code: "23503", ConstraintName: "auctions_auctioneer_id_fkey"}, true},
		{"bidder_wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "bids_bidder_id_fkey"}), true},
		{"comment_author", &pgconn.PgError{Code: "23503", ConstraintName: "comments_user_id_fkey"}, true},
		{"category", &pgconn.PgError{Code: "23503", ConstraintName: "auctions_category_id_fkey"}, false},
		{"auction", &pgconn.PgError{Code: "23503", ConstraintName: "ratings_auction_id_fkey"}, false},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "ratings_user_id_fkey"}, false},
		{"plain", errors.New("boom"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MissingUser(tc.err))
		})
	}
}
