package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"coursehub/pkg/domain"
)

// CourseInput carries the writable course fields for create/update.
type CourseInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Level           string  `json:"level"`
	YoutubeVideoURL string  `json:"youtubeVideoUrl,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

func (in CourseInput) formFields() map[string]string {
	return map[string]string{
		"title":           in.Title,
		"description":     in.Description,
		"price":           fmt.Sprintf("%g", in.Price),
		"category":        in.Category,
		"level":           in.Level,
		"youtubeVideoUrl": in.YoutubeVideoURL,
		"notes":           in.Notes,
	}
}

// ListCourses fetches a filtered course page. The backend answers with either
// a {courses, total, ...} envelope or a bare array depending on the route
// vintage; both decode into the same CoursePage here so callers never branch.
func (c *Client) ListCourses(ctx context.Context, params map[string]string) (domain.CoursePage, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/courses", params, nil, &raw); err != nil {
		return domain.CoursePage{}, err
	}
	return normalizeCoursePage(raw)
}

func normalizeCoursePage(raw json.RawMessage) (domain.CoursePage, error) {
	var bare []domain.Course
	if err := json.Unmarshal(raw, &bare); err == nil {
		return domain.CoursePage{
			Courses:    bare,
			Page:       1,
			TotalPages: 1,
			Total:      len(bare),
		}, nil
	}
	var page domain.CoursePage
	if err := json.Unmarshal(raw, &page); err != nil {
		return domain.CoursePage{}, &Error{Kind: KindServer, Message: "malformed course listing", Err: err}
	}
	if page.Page == 0 {
		page.Page = 1
	}
	if page.TotalPages == 0 {
		page.TotalPages = 1
	}
	if page.Total == 0 {
		page.Total = len(page.Courses)
	}
	return page, nil
}

func (c *Client) GetCourse(ctx context.Context, id string) (domain.Course, error) {
	var course domain.Course
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%s", id), nil, nil, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (c *Client) CreateCourse(ctx context.Context, in CourseInput) (domain.Course, error) {
	var course domain.Course
	if err := c.doJSON(ctx, http.MethodPost, "/courses", nil, in, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

// CreateCourseWithPDF uploads the course fields plus a PDF as multipart form
// data, leaving content-type negotiation to the transport.
func (c *Client) CreateCourseWithPDF(ctx context.Context, in CourseInput, filename string, pdf io.Reader) (domain.Course, error) {
	var course domain.Course
	if err := c.doMultipart(ctx, http.MethodPost, "/courses", in.formFields(), "pdfFile", filename, pdf, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id string, in CourseInput) (domain.Course, error) {
	var course domain.Course
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/courses/%s", id), nil, in, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (c *Client) UpdateCourseWithPDF(ctx context.Context, id string, in CourseInput, filename string, pdf io.Reader) (domain.Course, error) {
	var course domain.Course
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/courses/%s", id), in.formFields(), "pdfFile", filename, pdf, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/courses/%s", id), nil, nil, nil)
}

func (c *Client) GetCourseReviews(ctx context.Context, id string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%s/reviews", id), nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) GetCourseBuyers(ctx context.Context, id string) ([]domain.User, error) {
	var buyers []domain.User
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%s/buyers", id), nil, nil, &buyers); err != nil {
		return nil, err
	}
	return buyers, nil
}

func (c *Client) ListCoursesByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error) {
	var courses []domain.Course
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/instructor/%s", instructorID), nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourseAnalytics(ctx context.Context, id string) (domain.CourseAnalytics, error) {
	var analytics domain.CourseAnalytics
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%s/analytics", id), nil, nil, &analytics); err != nil {
		return domain.CourseAnalytics{}, err
	}
	return analytics, nil
}
