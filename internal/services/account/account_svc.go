package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/auth/token"
	"auctionhousego/internal/database/db_client"
	"auctionhousego/internal/models"
	"auctionhousego/internal/permissions"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const msgUsernameTaken = "A user with that username already exists."

var ErrBadCredentials = fmt.Errorf("no active account found with the given credentials: %w", apperr.ErrUnauthorized)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	IsStaff  bool
}

//go:generate mockgen -source=account_svc.go -destination=mocks/account_svc_mock.go -package=mocks
type IAccountService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (token.Pair, error)
	Refresh(ctx context.Context, refresh string) (token.Pair, error)
	Logout(ctx context.Context, refresh string) error
	Me(ctx context.Context, p permissions.Principal) (*models.User, error)
	DeleteMe(ctx context.Context, p permissions.Principal) error
}

type accountService struct {
	db     *sql.DB
	tokens token.IManager
	cost   int
	now    func() time.Time
}

func NewAccountService(db *sql.DB, tokens token.IManager) IAccountService {
	return &accountService{db: db, tokens: tokens, cost: bcrypt.DefaultCost, now: time.Now}
}

const userColumns = `id, username, email, password, is_staff, date_joined`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsStaff, &u.DateJoined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	return u, err
}

func principalOf(u *models.User) permissions.Principal {
	return permissions.Principal{UserID: u.ID, Username: u.Username, IsAdmin: u.IsStaff}
}

// Register creates an account. Only the create-admin command passes IsStaff.
func (svc *accountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), svc.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.NewFieldError("password", "Password is too long.")
		}
		return nil, err
	}

	u := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		IsStaff:      in.IsStaff,
		DateJoined:   models.NewTimestamp(svc.now()),
		PasswordHash: string(hash),
	}
	err = svc.db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password, is_staff, date_joined) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		u.Username, u.Email, u.PasswordHash, u.IsStaff, u.DateJoined.Time,
	).Scan(&u.ID)
	if err != nil {
		if _, ok := db_client.UniqueViolation(err); ok {
			return nil, apperr.NewFieldError("username", msgUsernameTaken)
		}
		return nil, err
	}
	zap.L().Info("user_registered", zap.Int64("id", u.ID), zap.String("username", u.Username), zap.Bool("staff", u.IsStaff))
	return u, nil
}

func (svc *accountService) Login(ctx context.Context, username, password string) (token.Pair, error) {
	u, err := scanUser(svc.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, apperr.ErrNotFound) {
		return token.Pair{}, ErrBadCredentials
	}
	if err != nil {
		return token.Pair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		zap.L().Debug("login_failed", zap.String("username", username))
		return token.Pair{}, ErrBadCredentials
	}
	return svc.tokens.Issue(principalOf(u))
}

// Refresh rotates the pair. The presented refresh token is blacklisted and the new
// claims are taken from the current user row, so staff changes apply on refresh.
func (svc *accountService) Refresh(ctx context.Context, refresh string) (token.Pair, error) {
	claims, err := svc.tokens.ParseRefresh(refresh)
	if err != nil {
		return token.Pair{}, err
	}
	p, err := claims.Principal()
	if err != nil {
		return token.Pair{}, err
	}
	u, err := scanUser(svc.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, p.UserID))
	if errors.Is(err, apperr.ErrNotFound) {
		return token.Pair{}, token.ErrInvalidToken
	}
	if err != nil {
		return token.Pair{}, err
	}
	if err := svc.tokens.Revoke(ctx, claims); err != nil {
		return token.Pair{}, err
	}
	return svc.tokens.Issue(principalOf(u))
}

func (svc *accountService) Logout(ctx context.Context, refresh string) error {
	claims, err := svc.tokens.ParseRefresh(refresh)
	if err != nil {
		return err
	}
	return svc.tokens.Revoke(ctx, claims)
}

func (svc *accountService) Me(ctx context.Context, p permissions.Principal) (*models.User, error) {
	if err := permissions.RequireAuth(p); err != nil {
		return nil, err
	}
	return scanUser(svc.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, p.UserID))
}

// DeleteMe removes the caller's account and, by cascade, every auction, bid, rating
// and comment they own.
func (svc *accountService) DeleteMe(ctx context.Context, p permissions.Principal) error {
	if err := permissions.RequireAuth(p); err != nil {
		return err
	}
	res, err := svc.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, p.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	zap.L().Info("user_deleted", zap.Int64("id", p.UserID))
	return nil
}
