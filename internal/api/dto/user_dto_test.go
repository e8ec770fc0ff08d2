package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventloop-labs/event-booking-service/internal/api/dto"
	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

func TestUserResponseCarriesNoPasswordMaterial(t *testing.T) {
	user := &domain.User{
		ID:           "u-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$verysecret",
		Role:         domain.UserRoleCustomer,
	}

	raw, err := json.Marshal(dto.NewUserResponse(user))
	require.NoError(t, err)

	payload := strings.ToLower(string(raw))
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "verysecret")
}

func TestBookingResponseRedactsJoinedUser(t *testing.T) {
	booking := &domain.Booking{
		ID:      "b-1",
		EventID: "e-1",
		UserID:  "u-1",
		Status:  domain.BookingStatusConfirmed,
	}
	user := &domain.User{
		ID:           "u-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$verysecret",
		Role:         domain.UserRoleCustomer,
	}

	raw, err := json.Marshal(dto.NewBookingResponse(booking).WithUser(user))
	require.NoError(t, err)

	payload := strings.ToLower(string(raw))
	assert.Contains(t, payload, `"user"`)
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "verysecret")
}

func TestBookingResponseOmitsMissingJoins(t *testing.T) {
	booking := &domain.Booking{ID: "b-1", EventID: "e-gone", UserID: "u-1"}

	resp := dto.NewBookingResponse(booking).WithEvent(nil).WithUser(nil)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), `"event"`)
	assert.NotContains(t, string(raw), `"user"`)
}
