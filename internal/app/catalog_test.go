package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/pkg/domain"
)

func TestBuildQueryOmitsEmptyFilters(t *testing.T) {
	params := BuildQuery(domain.CourseFilters{
		Search:   "react",
		Category: "Programming",
		MinPrice: "",
	}, 3, 9)

	assert.Equal(t, map[string]string{
		"search":   "react",
		"category": "Programming",
		"page":     "3",
		"limit":    "9",
	}, params)
	assert.NotContains(t, params, "minPrice", "empty filter must be omitted, not sent blank")
}

func TestBuildQueryClampsPage(t *testing.T) {
	params := BuildQuery(domain.CourseFilters{}, 0, 9)
	assert.Equal(t, "1", params["page"])
}

func TestFilterStateResetsPageOnFilterChange(t *testing.T) {
	s := NewFilterState()
	s.SetPage(3)

	s.SetFilters(domain.CourseFilters{Category: "Programming"})
	assert.Equal(t, 1, s.Page(), "changed filters invalidate the page cursor")

	s.SetPage(4)
	s.SetFilters(domain.CourseFilters{Category: "Programming"})
	assert.Equal(t, 4, s.Page(), "re-applying identical filters keeps the cursor")

	s.Clear()
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, domain.CourseFilters{}, s.Filters())
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{"single page", 1, 1, []int{1}},
		{"first of many", 1, 10, []int{1, 2, 10}},
		{"middle", 5, 10, []int{1, 3, 4, 5, 6, 10}},
		{"last", 10, 10, []int{1, 8, 9, 10}},
		{"current beyond total", 12, 10, []int{1, 8, 9, 10}},
		{"degenerate input", 0, 0, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PageWindow(tc.current, tc.totalPages))
		})
	}
}

func TestListCoursesSendsCursorAndLimit(t *testing.T) {
	var query url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"courses":     []map[string]any{{"id": "c1", "title": "Go Basics"}},
			"currentPage": 2,
			"totalPages":  5,
			"total":       41,
		})
	})
	a, _ := newTestApp(t, mux, nil)

	state := NewFilterState()
	state.SetFilters(domain.CourseFilters{Search: "go"})
	state.SetPage(2)

	page, err := a.ListCourses(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, "go", query.Get("search"))
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "9", query.Get("limit"))
	assert.Equal(t, 5, page.TotalPages)
	require.Len(t, page.Courses, 1)
	assert.Equal(t, "c1", page.Courses[0].ID)
}

func TestFeaturedCoursesUsesShortLimit(t *testing.T) {
	var query url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "c1"}})
	})
	a, _ := newTestApp(t, mux, nil)

	courses, err := a.FeaturedCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "6", query.Get("limit"))
	assert.Len(t, courses, 1)
}

func TestCourseDetailJoinsCourseAndReviews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "c1", "title": "Go Basics"})
	})
	mux.HandleFunc("/courses/c1/reviews", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "r1", "courseId": "c1", "rating": 5, "comment": "great"},
		})
	})
	a, _ := newTestApp(t, mux, nil)

	view, err := a.CourseDetail(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", view.Course.Title)
	require.Len(t, view.Reviews, 1)
	assert.Equal(t, 5, view.Reviews[0].Rating)
}

func TestCourseDetailReportsFailedBranch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "c1", "title": "Go Basics"})
	})
	mux.HandleFunc("/courses/c1/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "reviews unavailable"})
	})
	a, _ := newTestApp(t, mux, nil)

	_, err := a.CourseDetail(context.Background(), "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load reviews")
}

func TestCourseDetailKeepsCourseWhenReviewsFail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "c1", "title": "Go Basics"})
	})
	mux.HandleFunc("/courses/c1/reviews", func(w http.ResponseWriter, r *http.Request) {
		// Fail only after the course branch has had time to land.
		time.Sleep(150 * time.Millisecond)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "reviews unavailable"})
	})
	a, _ := newTestApp(t, mux, nil)

	view, err := a.CourseDetail(context.Background(), "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load reviews")
	assert.Equal(t, "Go Basics", view.Course.Title, "course data must survive for partial render")
	assert.Empty(t, view.Reviews)
}

func TestCourseStudentsJoinsCourseAndBuyers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "c1", "title": "Go Basics"})
	})
	mux.HandleFunc("/courses/c1/buyers", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "u1", "name": "Ada"},
			{"id": "u2", "name": "Grace"},
		})
	})
	a, _ := newTestApp(t, mux, nil)

	course, buyers, err := a.CourseStudents(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.Len(t, buyers, 2)
}
