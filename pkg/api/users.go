package api

import (
	"context"
	"fmt"
	"net/http"

	"coursehub/pkg/domain"
)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListInstructors(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/instructors", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%s", id), nil, nil, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]string) (domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%s", id), nil, fields, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%s", id), nil, nil, nil)
}

// GetPurchasedCourses lists the courses behind a user's paid orders.
func (c *Client) GetPurchasedCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	var courses []domain.Course
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%s/purchased-courses", userID), nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
