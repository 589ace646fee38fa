package api

import (
	"context"
	"fmt"
	"net/http"

	"coursehub/pkg/domain"
)

// ReviewInput is the payload for leaving a course review. The backend owns
// the paid-order precondition; the client only gates the entry point.
type ReviewInput struct {
	UserID   string `json:"userId"`
	CourseID string `json:"courseId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (c *Client) CreateReview(ctx context.Context, in ReviewInput) (domain.Review, error) {
	var review domain.Review
	if err := c.doJSON(ctx, http.MethodPost, "/reviews", nil, in, &review); err != nil {
		return domain.Review{}, err
	}
	return review, nil
}

func (c *Client) UpdateReview(ctx context.Context, id string, in ReviewInput) (domain.Review, error) {
	var review domain.Review
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/reviews/%s", id), nil, in, &review); err != nil {
		return domain.Review{}, err
	}
	return review, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%s", id), nil, nil, nil)
}

func (c *Client) ListReviewsByCourse(ctx context.Context, courseID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/reviews/by/course/%s", courseID), nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/reviews/by/user/%s", userID), nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) GetAverageRating(ctx context.Context, courseID string) (float64, error) {
	var resp struct {
		AverageRating float64 `json:"averageRating"`
	}
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/reviews/avg/course/%s", courseID), nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.AverageRating, nil
}

func (c *Client) GetReviewStats(ctx context.Context) (domain.ReviewStats, error) {
	var stats domain.ReviewStats
	if err := c.doJSON(ctx, http.MethodGet, "/reviews/stats", nil, nil, &stats); err != nil {
		return domain.ReviewStats{}, err
	}
	return stats, nil
}
