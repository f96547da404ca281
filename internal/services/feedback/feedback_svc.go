// Package feedback stores what participants say about an auction: 1-5 ratings
// and free-text comments.
package feedback

import (
	"database/sql"
	"strings"
	"time"
)

//go:generate mockgen -source=feedback_svc.go -destination=mocks/feedback_svc_mock.go -package=mocks -aux_files=auctionhousego/internal/services/feedback=rating_svc.go,auctionhousego/internal/services/feedback=comment_svc.go
type IFeedbackService interface {
	IRatingService
	ICommentService
}

type feedbackService struct {
	db  *sql.DB
	now func() time.Time
}

var _ IFeedbackService = (*feedbackService)(nil)

func NewFeedbackService(db *sql.DB) IFeedbackService {
	return newFeedbackService(db, time.Now)
}

func newFeedbackService(db *sql.DB, now func() time.Time) *feedbackService {
	return &feedbackService{db: db, now: now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func joinAnd(conds []string) string { return strings.Join(conds, " AND ") }
