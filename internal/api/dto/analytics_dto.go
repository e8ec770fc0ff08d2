package dto

import (
	"time"

	"github.com/eventloop-labs/event-booking-service/internal/service"
)

// TimelineBucketResponse is one analytics data point.
type TimelineBucketResponse struct {
	Label    string    `json:"label"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Events   int       `json:"events"`
	Bookings int       `json:"bookings"`
}

// NewTimelineResponse projects analytics buckets.
func NewTimelineResponse(buckets []service.TimelineBucket) []TimelineBucketResponse {
	result := make([]TimelineBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, TimelineBucketResponse{
			Label:    bucket.Label,
			Start:    bucket.Start,
			End:      bucket.End,
			Events:   bucket.Events,
			Bookings: bucket.Bookings,
		})
	}
	return result
}
