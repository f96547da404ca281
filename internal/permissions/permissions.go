package permissions

import (
	"auctionhousego/internal/apperr"
)

// Principal is the caller of a request. The zero value is the anonymous caller.
type Principal struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

func (p Principal) Authenticated() bool { return p.UserID != 0 }

type OwnerKind int

const (
	OwnerNone OwnerKind = iota
	OwnerAuctioneer
	OwnerUser
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerAuctioneer:
		return "auctioneer"
	case OwnerUser:
		return "user"
	default:
		return "none"
	}
}

// Owner names who may write an entity.
type Owner struct {
	Kind   OwnerKind
	UserID int64
}

// Ownable is implemented by every entity that participates in write checks.
type Ownable interface {
	OwnerPrincipal() Owner
}

// CanWrite allows the owner or an admin. Entities without an owner are never writable
// through this check; admin-only resources go through RequireAdmin.
func CanWrite(p Principal, o Ownable) bool {
	if !p.Authenticated() {
		return false
	}
	owner := o.OwnerPrincipal()
	switch owner.Kind {
	case OwnerAuctioneer, OwnerUser:
		return p.IsAdmin || owner.UserID == p.UserID
	default:
		return false
	}
}

func CheckWrite(p Principal, o Ownable) error {
	if !p.Authenticated() {
		return apperr.ErrUnauthorized
	}
	if !CanWrite(p, o) {
		return apperr.ErrForbidden
	}
	return nil
}

func RequireAuth(p Principal) error {
	if !p.Authenticated() {
		return apperr.ErrUnauthorized
	}
	return nil
}

func RequireAdmin(p Principal) error {
	if !p.Authenticated() {
		return apperr.ErrUnauthorized
	}
	if !p.IsAdmin {
		return apperr.ErrForbidden
	}
	return nil
}
