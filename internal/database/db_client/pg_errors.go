package db_client

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// UniqueViolation reports whether err is a unique-constraint failure and which constraint tripped.
func UniqueViolation(err error) (string, bool) {
	return pgCode(err, codeUniqueViolation)
}

func ForeignKeyViolation(err error) (string, bool) {
	return pgCode(err, codeForeignKeyViolation)
}

var userRefSuffixes = []string{"_auctioneer_id_fkey", "_bidder_id_fkey", "_user_id_fkey"}

// MissingUser reports a foreign-key failure on a column that references users.
func MissingUser(err error) bool {
	name, ok := ForeignKeyViolation(err)
	if !ok {
		return false
	}
	for _, suffix := range userRefSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func pgCode(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}
