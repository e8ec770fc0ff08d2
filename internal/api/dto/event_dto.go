package dto

import (
	"time"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

// CreateEventRequest payload for admin event creation.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	CategoryID  string    `json:"category_id"`
}

// UpdateEventRequest payload for admin event edits; absent fields are
// left unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	ImageURL    *string    `json:"image_url"`
	Capacity    *int       `json:"capacity"`
	Price       *float64   `json:"price"`
	CategoryID  *string    `json:"category_id"`
}

// EventResponse is the public event shape.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	CategoryID  string    `json:"category_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEventResponse projects a domain event.
func NewEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		ImageURL:    event.ImageURL,
		Capacity:    event.Capacity,
		Price:       event.Price,
		CategoryID:  event.CategoryID,
		CreatedBy:   event.CreatedBy,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

// CategoryResponse is the public category shape.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCategoryResponse projects a domain category.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
