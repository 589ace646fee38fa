package api

import (
	"context"
	"fmt"
	"net/http"

	"coursehub/pkg/domain"
)

// OrderInput is the payload for starting a purchase. Orders begin pending;
// payment confirmation moves them to paid or failed.
type OrderInput struct {
	UserID        string  `json:"userId"`
	CourseID      string  `json:"courseId"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
}

type PaymentInput struct {
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

func (c *Client) CreateOrder(ctx context.Context, in OrderInput) (domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders", nil, in, &order); err != nil {
		return domain.Order{}, err
	}
	return normalizeOrder(order), nil
}

func (c *Client) ProcessPayment(ctx context.Context, in PaymentInput) (domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders/process-payment", nil, in, &order); err != nil {
		return domain.Order{}, err
	}
	return normalizeOrder(order), nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%s", id), nil, nil, &order); err != nil {
		return domain.Order{}, err
	}
	return normalizeOrder(order), nil
}

func (c *Client) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/by/user/%s", userID), nil, nil, &orders); err != nil {
		return nil, err
	}
	return normalizeOrders(orders), nil
}

func (c *Client) ListOrdersByCourse(ctx context.Context, courseID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/by/course/%s", courseID), nil, nil, &orders); err != nil {
		return nil, err
	}
	return normalizeOrders(orders), nil
}

func (c *Client) GetOrderStats(ctx context.Context) (domain.OrderStats, error) {
	var stats domain.OrderStats
	if err := c.doJSON(ctx, http.MethodGet, "/orders/stats", nil, nil, &stats); err != nil {
		return domain.OrderStats{}, err
	}
	return stats, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/orders/%s", id), nil, nil, nil)
}

// normalizeOrder backfills CourseID when the backend embedded the full course
// instead, so callers match on one field.
func normalizeOrder(order domain.Order) domain.Order {
	if order.CourseID == "" && order.Course != nil {
		order.CourseID = order.Course.ID
	}
	return order
}

func normalizeOrders(orders []domain.Order) []domain.Order {
	for i := range orders {
		orders[i] = normalizeOrder(orders[i])
	}
	return orders
}
