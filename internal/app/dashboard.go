package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"coursehub/pkg/domain"
)

// InstructorStats are derived client-side from the instructor's own course
// records; no aggregate endpoint is involved.
type InstructorStats struct {
	TotalCourses  int
	TotalStudents int
	TotalRevenue  float64
	AverageRating float64
}

// EnrolledCourse pairs a purchased course with its purchase date.
type EnrolledCourse struct {
	Course      domain.Course
	PurchasedAt time.Time
}

// Dashboard is the per-role view model. Recommendations are a best-effort
// enrichment: RecommendationsErr being set means the section failed and the
// view should offer a retry, with everything else intact.
type Dashboard struct {
	Role domain.Role

	// Instructor fields.
	Courses []domain.Course
	Stats   InstructorStats

	// Student fields.
	Enrolled []EnrolledCourse

	Recommendations    string
	RecommendationsErr error
}

// LoadDashboard assembles the role-appropriate dashboard for the signed-in
// user. Enrichment failures never fail the whole view.
func (a *App) LoadDashboard(ctx context.Context) (Dashboard, error) {
	sess, ok := a.sessions.Current()
	if !ok {
		return Dashboard{}, ErrSessionRequired
	}
	switch sess.Role {
	case domain.RoleInstructor:
		return a.loadInstructorDashboard(ctx, sess)
	default:
		return a.loadStudentDashboard(ctx, sess)
	}
}

func (a *App) loadInstructorDashboard(ctx context.Context, sess domain.Session) (Dashboard, error) {
	courses, err := a.api.ListCoursesByInstructor(ctx, sess.UserID)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Role:    domain.RoleInstructor,
		Courses: courses,
		Stats:   aggregateStats(courses),
	}, nil
}

// aggregateStats folds per-course data into the headline numbers. A course
// with no reviews contributes rating 0; an instructor with no courses gets
// all zeros, never NaN.
func aggregateStats(courses []domain.Course) InstructorStats {
	stats := InstructorStats{TotalCourses: len(courses)}
	if len(courses) == 0 {
		return stats
	}
	var ratingSum float64
	for _, course := range courses {
		stats.TotalStudents += course.TotalStudents
		stats.TotalRevenue += course.Price * float64(course.TotalStudents)
		ratingSum += course.AverageRating
	}
	stats.AverageRating = ratingSum / float64(len(courses))
	return stats
}

func (a *App) loadStudentDashboard(ctx context.Context, sess domain.Session) (Dashboard, error) {
	orders, err := a.api.ListOrdersByUser(ctx, sess.UserID)
	if err != nil {
		return Dashboard{}, err
	}
	enrolled, err := a.enrolledFromOrders(ctx, orders)
	if err != nil {
		return Dashboard{}, err
	}
	dash := Dashboard{
		Role:     sess.Role,
		Enrolled: enrolled,
	}

	if a.assistant != nil {
		recs, err := a.assistant.Recommendations(ctx,
			"Programming, Web Development, Data Science", "Beginner", "Build a career in tech")
		if err != nil {
			a.log.Warn("ai recommendations unavailable", "error", err)
			dash.RecommendationsErr = err
		} else {
			dash.Recommendations = recs
		}
	} else {
		dash.RecommendationsErr = ErrAssistantUnavailable
	}
	return dash, nil
}

// enrolledFromOrders keeps paid orders only, newest purchase first. Orders
// arriving without an embedded course are backfilled with parallel course
// fetches so every paid purchase stays in the view.
func (a *App) enrolledFromOrders(ctx context.Context, orders []domain.Order) ([]EnrolledCourse, error) {
	var enrolled []EnrolledCourse
	missing := map[int]string{}
	for _, order := range orders {
		if order.Status != domain.OrderPaid {
			continue
		}
		if order.Course == nil && order.CourseID == "" {
			// Malformed record: nothing to render and nothing to fetch by.
			continue
		}
		entry := EnrolledCourse{PurchasedAt: order.CreatedAt}
		if order.Course != nil {
			entry.Course = *order.Course
		} else {
			missing[len(enrolled)] = order.CourseID
		}
		enrolled = append(enrolled, entry)
	}

	// The slice is fully built before the fetches start, so each goroutine
	// writes its own slot.
	g, gctx := errgroup.WithContext(ctx)
	for idx, courseID := range missing {
		g.Go(func() error {
			course, err := a.api.GetCourse(gctx, courseID)
			if err != nil {
				return fmt.Errorf("load course %s: %w", courseID, err)
			}
			enrolled[idx].Course = course
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(enrolled, func(i, j int) bool {
		return enrolled[i].PurchasedAt.After(enrolled[j].PurchasedAt)
	})
	return enrolled, nil
}

// RetryRecommendations re-runs just the enrichment section after a failure.
func (a *App) RetryRecommendations(ctx context.Context) (string, error) {
	if a.assistant == nil {
		return "", ErrAssistantUnavailable
	}
	return a.assistant.Recommendations(ctx,
		"Programming, Web Development, Data Science", "Beginner", "Build a career in tech")
}
