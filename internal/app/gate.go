package app

import (
	"context"

	"coursehub/pkg/api"
	"coursehub/pkg/domain"
)

// CourseContent is the protected payload unlocked by the purchase gate.
// Callers only ever see the video URL and PDF reference through here, so a
// failed gate cannot leak them.
type CourseContent struct {
	CourseID        string
	Title           string
	YoutubeVideoURL string
	Notes           string
	PDFFile         *domain.PDFFile
	CanReview       bool
}

// CanAccess decides whether user may open course's protected content:
// the course's own instructor and admins always may; everyone else needs a
// paid order. Ownership and role are answered from data already in hand, so
// the order history is only fetched when it can actually change the answer.
func (a *App) CanAccess(ctx context.Context, user domain.Session, course domain.Course) (bool, error) {
	if user.UserID == "" {
		return false, nil
	}
	if course.Instructor.ID == user.UserID {
		return true, nil
	}
	if user.Role == domain.RoleAdmin {
		return true, nil
	}
	orders, err := a.api.ListOrdersByUser(ctx, user.UserID)
	if err != nil {
		return false, err
	}
	return hasPaidOrder(orders, course.ID), nil
}

func hasPaidOrder(orders []domain.Order, courseID string) bool {
	for _, order := range orders {
		if order.CourseID == courseID && order.Status == domain.OrderPaid {
			return true
		}
	}
	return false
}

// Content returns the protected course content when the gate passes, and
// ErrNotPurchased otherwise. Only purchasers get the review entry point;
// instructors and admins view their own material without reviewing it.
func (a *App) Content(ctx context.Context, course domain.Course) (CourseContent, error) {
	sess, ok := a.sessions.Current()
	if !ok {
		return CourseContent{}, ErrSessionRequired
	}
	allowed, err := a.CanAccess(ctx, sess, course)
	if err != nil {
		return CourseContent{}, err
	}
	if !allowed {
		return CourseContent{}, ErrNotPurchased
	}
	return CourseContent{
		CourseID:        course.ID,
		Title:           course.Title,
		YoutubeVideoURL: course.YoutubeVideoURL,
		Notes:           course.Notes,
		PDFFile:         course.PDFFile,
		CanReview:       sess.UserID != course.Instructor.ID && sess.Role != domain.RoleAdmin,
	}, nil
}

// SubmitReview posts a review once the gate confirms purchase. The one
// review per (user, course) rule is the backend's to enforce.
func (a *App) SubmitReview(ctx context.Context, course domain.Course, rating int, comment string) (domain.Review, error) {
	v := newValidationError()
	if rating < 1 || rating > 5 {
		v.add("rating", "Rating must be between 1 and 5")
	}
	if err := v.orNil(); err != nil {
		return domain.Review{}, err
	}
	sess, ok := a.sessions.Current()
	if !ok {
		return domain.Review{}, ErrSessionRequired
	}
	allowed, err := a.CanAccess(ctx, sess, course)
	if err != nil {
		return domain.Review{}, err
	}
	if !allowed {
		return domain.Review{}, ErrNotPurchased
	}
	return a.api.CreateReview(ctx, api.ReviewInput{
		UserID:   sess.UserID,
		CourseID: course.ID,
		Rating:   rating,
		Comment:  comment,
	})
}
