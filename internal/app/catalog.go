package app

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"coursehub/pkg/domain"
)

// BuildQuery turns a filter set plus page cursor into outgoing query
// parameters. Empty fields are omitted entirely: omission means
// unconstrained, never "match empty string".
func BuildQuery(filters domain.CourseFilters, page, pageSize int) map[string]string {
	params := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}
	set("search", filters.Search)
	set("category", filters.Category)
	set("level", filters.Level)
	set("minPrice", filters.MinPrice)
	set("maxPrice", filters.MaxPrice)
	if page < 1 {
		page = 1
	}
	params["page"] = strconv.Itoa(page)
	params["limit"] = strconv.Itoa(pageSize)
	return params
}

// FilterState tracks the user's filter set and page cursor for one listing
// view. Any filter change resets the cursor to page 1 so a stale page number
// never outlives the result set it indexed.
type FilterState struct {
	filters domain.CourseFilters
	page    int
}

func NewFilterState() *FilterState {
	return &FilterState{page: 1}
}

func (s *FilterState) Filters() domain.CourseFilters { return s.filters }
func (s *FilterState) Page() int                     { return s.page }

// SetFilters replaces the filter set, resetting the page whenever anything
// actually changed.
func (s *FilterState) SetFilters(filters domain.CourseFilters) {
	if filters != s.filters {
		s.page = 1
	}
	s.filters = filters
}

func (s *FilterState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

func (s *FilterState) Clear() {
	s.filters = domain.CourseFilters{}
	s.page = 1
}

// PageWindow returns the page numbers a pagination control should render:
// first, last, and a bounded window around the current page. Large result
// sets never produce the full range.
func PageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	var pages []int
	for page := 1; page <= totalPages; page++ {
		if page == 1 || page == totalPages ||
			(page >= current-2 && page <= current+1) {
			pages = append(pages, page)
		}
	}
	return pages
}

// ListCourses fetches one page of the filtered catalog.
func (a *App) ListCourses(ctx context.Context, state *FilterState) (domain.CoursePage, error) {
	params := BuildQuery(state.Filters(), state.Page(), courseListPageSize)
	return a.api.ListCourses(ctx, params)
}

// FeaturedCourses fetches the short home-page listing.
func (a *App) FeaturedCourses(ctx context.Context) ([]domain.Course, error) {
	page, err := a.api.ListCourses(ctx, BuildQuery(domain.CourseFilters{}, 1, featuredPageSize))
	if err != nil {
		return nil, err
	}
	return page.Courses, nil
}

// CourseDetailView joins the course record with its reviews.
type CourseDetailView struct {
	Course  domain.Course
	Reviews []domain.Review
}

// CourseDetail loads the course and its reviews in parallel. A failure in
// either branch fails the join with that branch's specific error, but the
// parts that did arrive are returned for partial rendering.
func (a *App) CourseDetail(ctx context.Context, courseID string) (CourseDetailView, error) {
	var view CourseDetailView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		course, err := a.api.GetCourse(gctx, courseID)
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}
		view.Course = course
		return nil
	})
	g.Go(func() error {
		reviews, err := a.api.GetCourseReviews(gctx, courseID)
		if err != nil {
			return fmt.Errorf("load reviews: %w", err)
		}
		view.Reviews = reviews
		return nil
	})
	if err := g.Wait(); err != nil {
		return view, err
	}
	return view, nil
}

// CourseStudents loads a course plus its buyers in parallel, for the
// instructor's student roster view.
func (a *App) CourseStudents(ctx context.Context, courseID string) (domain.Course, []domain.User, error) {
	var (
		course domain.Course
		buyers []domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := a.api.GetCourse(gctx, courseID)
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}
		course = c
		return nil
	})
	g.Go(func() error {
		b, err := a.api.GetCourseBuyers(gctx, courseID)
		if err != nil {
			return fmt.Errorf("load buyers: %w", err)
		}
		buyers = b
		return nil
	})
	if err := g.Wait(); err != nil {
		return course, buyers, err
	}
	return course, buyers, nil
}
