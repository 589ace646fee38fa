package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListCoursesNormalizesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"courses":     []map[string]any{{"id": "c1", "title": "Go"}, {"id": "c2", "title": "Rust"}},
			"currentPage": 2,
			"totalPages":  5,
			"total":       41,
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListCourses(context.Background(), map[string]string{"page": "2"})
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(page.Courses) != 2 || page.Page != 2 || page.TotalPages != 5 || page.Total != 41 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestListCoursesNormalizesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "c1", "title": "Go"},
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListCourses(context.Background(), nil)
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(page.Courses) != 1 || page.Page != 1 || page.TotalPages != 1 || page.Total != 1 {
		t.Fatalf("bare array not normalized: %+v", page)
	}
}

func TestListCoursesSendsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	params := map[string]string{"search": "react", "category": "Programming", "page": "1", "limit": "9"}
	if _, err := New(srv.URL).ListCourses(context.Background(), params); err != nil {
		t.Fatalf("list courses: %v", err)
	}
	for key, want := range params {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Fatalf("query %s: expected %q, got %v", key, want, got)
		}
	}
	if _, present := gotQuery["minPrice"]; present {
		t.Fatalf("unset filter must not be sent")
	}
}

func TestOrderCourseIDBackfill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "o1", "status": "paid", "course": map[string]any{"id": "c9", "title": "Go"}},
		})
	}))
	defer srv.Close()

	orders, err := New(srv.URL).ListOrdersByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].CourseID != "c9" {
		t.Fatalf("courseId not backfilled from embedded course: %+v", orders)
	}
}
