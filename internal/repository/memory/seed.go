package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

// Seed loads the demo data set used when the service runs without a
// database: one admin, one customer, the category catalog and a handful
// of upcoming events. Both demo accounts use the password "password123".
func Seed(store *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	store.mu.Lock()
	defer store.mu.Unlock()

	store.users = []domain.User{
		{ID: "u-admin", Name: "Admin User", Email: "admin@example.com", PasswordHash: string(hash), Role: domain.UserRoleAdmin, CreatedAt: now, UpdatedAt: now},
		{ID: "u-customer", Name: "Customer User", Email: "customer@example.com", PasswordHash: string(hash), Role: domain.UserRoleCustomer, CreatedAt: now, UpdatedAt: now},
	}

	store.categories = []domain.Category{
		{ID: "c-conference", Name: "Conference", Description: "Professional gatherings and conferences"},
		{ID: "c-workshop", Name: "Workshop", Description: "Hands-on learning experiences"},
		{ID: "c-social", Name: "Social", Description: "Networking and social events"},
		{ID: "c-concert", Name: "Concert", Description: "Music and entertainment events"},
		{ID: "c-festival", Name: "Festival", Description: "Cultural and celebratory events"},
		{ID: "c-exhibition", Name: "Exhibition", Description: "Art and product exhibitions"},
	}

	year := now.Year() + 1
	store.events = []domain.Event{
		{
			ID:          "e-tech-conference",
			Title:       "Tech Conference",
			Description: "The biggest tech conference of the year featuring the latest innovations and industry experts.",
			Date:        time.Date(year, time.June, 15, 9, 0, 0, 0, time.UTC),
			Location:    "Convention Center, New Delhi",
			ImageURL:    "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?q=80&w=1000",
			Capacity:    500,
			Price:       12999.99,
			CategoryID:  "c-conference",
			CreatedBy:   "u-admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "e-design-workshop",
			Title:       "Design Workshop",
			Description: "A hands-on workshop exploring the latest design trends and techniques with industry professionals.",
			Date:        time.Date(year, time.July, 10, 10, 0, 0, 0, time.UTC),
			Location:    "Design Hub, Mumbai",
			ImageURL:    "https://images.unsplash.com/photo-1531482615713-2afd69097998?q=80&w=1000",
			Capacity:    50,
			Price:       5999.99,
			CategoryID:  "c-workshop",
			CreatedBy:   "u-admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "e-networking-mixer",
			Title:       "Networking Mixer",
			Description: "Connect with professionals in your industry in this casual networking event with drinks and appetizers.",
			Date:        time.Date(year, time.August, 5, 18, 0, 0, 0, time.UTC),
			Location:    "Skyline Lounge, Bangalore",
			ImageURL:    "https://images.unsplash.com/photo-1511795409834-432f7b1e1760?q=80&w=1000",
			Capacity:    100,
			Price:       2999.99,
			CategoryID:  "c-social",
			CreatedBy:   "u-admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "e-music-festival",
			Title:       "Annual Music Festival",
			Description: "Three days of live music from top artists across multiple stages in a beautiful outdoor setting.",
			Date:        time.Date(year, time.September, 20, 12, 0, 0, 0, time.UTC),
			Location:    "Riverfront Park, Chennai",
			ImageURL:    "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?q=80&w=1000",
			Capacity:    2000,
			Price:       3999.99,
			CategoryID:  "c-concert",
			CreatedBy:   "u-admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "e-dance-festival",
			Title:       "Cultural Dance Festival",
			Description: "Traditional dance performances celebrating cultural heritage from across the country.",
			Date:        time.Date(year, time.October, 12, 17, 0, 0, 0, time.UTC),
			Location:    "Heritage Center, Jaipur",
			ImageURL:    "https://images.unsplash.com/photo-1504609773096-104ff2c73ba4?q=80&w=1000",
			Capacity:    800,
			Price:       1499.99,
			CategoryID:  "c-festival",
			CreatedBy:   "u-admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "e-startup-pitch",
			Title:       "Startup Pitch Competition",
			Description: "Innovative startups pitch their ideas to a panel of investors, with a chance to win funding.",
			Date:        time.Date(year, time.August, 25, 14, 0, 0, 0, time.UTC),
			Location:    "Innovation Hub, Hyderabad",
			ImageURL:    "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?q=80&w=1000",
			Capacity:    200,
			Price:       499.99,
			CategoryID:  "c-conference",
			CreatedBy:   "u-admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "e-photo-exhibition",
			Title:       "Photography Exhibition",
			Description: "Stunning photography from both established and emerging photographers from around the country.",
			Date:        time.Date(year, time.November, 5, 11, 0, 0, 0, time.UTC),
			Location:    "Art Gallery, Kolkata",
			ImageURL:    "https://images.unsplash.com/photo-1572953900290-2e5874fc0622?q=80&w=1000",
			Capacity:    300,
			Price:       799.99,
			CategoryID:  "c-exhibition",
			CreatedBy:   "u-admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	return nil
}
