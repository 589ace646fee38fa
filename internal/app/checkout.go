package app

import (
	"context"
	"fmt"

	"coursehub/internal/util"
	"coursehub/pkg/api"
	"coursehub/pkg/domain"
)

const defaultPaymentMethod = "card"

// Purchase buys a course for the signed-in user: create the pending order,
// then confirm payment. The two calls are strictly sequential since payment
// needs the order id. A course the user can already access is refused up
// front, guarding the one-paid-order-per-course invariant from this side.
func (a *App) Purchase(ctx context.Context, course domain.Course) (domain.Order, error) {
	sess, ok := a.sessions.Current()
	if !ok {
		return domain.Order{}, ErrSessionRequired
	}
	allowed, err := a.CanAccess(ctx, sess, course)
	if err != nil {
		return domain.Order{}, err
	}
	if allowed {
		return domain.Order{}, ErrAlreadyPurchased
	}

	order, err := a.api.CreateOrder(ctx, api.OrderInput{
		UserID:        sess.UserID,
		CourseID:      course.ID,
		Total:         course.Price,
		PaymentMethod: defaultPaymentMethod,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	paid, err := a.api.ProcessPayment(ctx, api.PaymentInput{
		OrderID:       order.ID,
		PaymentMethod: defaultPaymentMethod,
		TransactionID: util.NewTransactionID(),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("process payment: %w", err)
	}
	a.log.Info("course purchased", "userId", sess.UserID, "courseId", course.ID, "orderId", paid.ID)
	return paid, nil
}
