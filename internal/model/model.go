package model

import "time"

type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the resolved admin attached to an authenticated request.
// It is built once by the auth middleware and never mutated afterwards.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a Admin) Identity() Identity {
	return Identity{ID: a.ID, Email: a.Email, Name: a.Name}
}

type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	Featured  bool      `json:"featured"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Inquiry statuses. The set is closed; anything else is rejected before it
// reaches the store.
const (
	InquiryPending    = "pending"
	InquiryInProgress = "in-progress"
	InquiryCompleted  = "completed"
)

func ValidInquiryStatus(status string) bool {
	switch status {
	case InquiryPending, InquiryInProgress, InquiryCompleted:
		return true
	default:
		return false
	}
}

type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Service   string    `json:"service,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PageContent struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
