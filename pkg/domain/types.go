package domain

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
	OrderFailed  OrderStatus = "failed"
)

// Session is the authenticated identity plus the bearer credential the
// client holds for the current login.
type Session struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Token  string `json:"token"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Instructor is the subset of the owning user embedded on a course.
type Instructor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PDFFile references course material uploaded alongside a course.
type PDFFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	FilePath     string `json:"filePath"`
}

type Course struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	Category        string     `json:"category"`
	Level           Level      `json:"level"`
	Instructor      Instructor `json:"instructor"`
	YoutubeVideoURL string     `json:"youtubeVideoUrl,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	PDFFile         *PDFFile   `json:"pdfFile,omitempty"`
	AverageRating   float64    `json:"averageRating"`
	TotalStudents   int        `json:"totalStudents"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Order records a purchase attempt. Status moves pending -> paid or
// pending -> failed and is terminal after that. Some endpoints return the
// course embedded instead of a bare courseId.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	CourseID      string      `json:"courseId"`
	Course        *Course     `json:"course,omitempty"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	TransactionID string      `json:"transactionId,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CourseFilters carries user-editable catalog constraints. An empty field
// means unconstrained, not "match empty".
type CourseFilters struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Level    string `json:"level"`
	MinPrice string `json:"minPrice"`
	MaxPrice string `json:"maxPrice"`
}

// CoursePage is the normalized paginated course listing. Totals come from
// the server since filtering is server-side.
type CoursePage struct {
	Courses    []Course `json:"courses"`
	Page       int      `json:"currentPage"`
	TotalPages int      `json:"totalPages"`
	Total      int      `json:"total"`
}

type CourseAnalytics struct {
	CourseID      string  `json:"courseId"`
	TotalStudents int     `json:"totalStudents"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

type OrderStats struct {
	TotalOrders  int     `json:"totalOrders"`
	PaidOrders   int     `json:"paidOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type ReviewStats struct {
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

type ChatRole string

const (
	ChatUser      ChatRole = "user"
	ChatAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in the assistant transcript.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
