package service

import (
	"context"
	"strconv"
	"time"

	"github.com/eventloop-labs/event-booking-service/internal/repository"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

// Timeframe selects the analytics window.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// TimelineBucket is one point on the analytics timeline: how many events
// take place and how many bookings were made inside [Start, End).
type TimelineBucket struct {
	Label    string
	Start    time.Time
	End      time.Time
	Events   int
	Bookings int
}

// AnalyticsService aggregates events and bookings into time buckets for
// the admin dashboard.
type AnalyticsService struct {
	eventsRepo repository.EventRepository
	bookings   repository.BookingRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(eventsRepo repository.EventRepository, bookings repository.BookingRepository) *AnalyticsService {
	return &AnalyticsService{eventsRepo: eventsRepo, bookings: bookings}
}

// Timeline buckets the current week by day, the current month by day, or
// the current year by month, relative to now. Events are counted by
// their scheduled date, bookings by creation time; cancelled bookings
// still count as booking activity.
func (s *AnalyticsService) Timeline(ctx context.Context, timeframe Timeframe, now time.Time) ([]TimelineBucket, error) {
	buckets, err := makeBuckets(timeframe, now)
	if err != nil {
		return nil, err
	}

	events, err := s.eventsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range buckets {
		bucket := &buckets[i]
		for j := range events {
			if inBucket(events[j].Date, bucket) {
				bucket.Events++
			}
		}
		for j := range bookings {
			if inBucket(bookings[j].CreatedAt, bucket) {
				bucket.Bookings++
			}
		}
	}
	return buckets, nil
}

func makeBuckets(timeframe Timeframe, now time.Time) ([]TimelineBucket, error) {
	switch timeframe {
	case TimeframeWeek:
		start := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		buckets := make([]TimelineBucket, 0, 7)
		for i := 0; i < 7; i++ {
			dayStart := start.AddDate(0, 0, i)
			buckets = append(buckets, TimelineBucket{
				Label: dayStart.Format("Mon"),
				Start: dayStart,
				End:   dayStart.AddDate(0, 0, 1),
			})
		}
		return buckets, nil
	case TimeframeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		days := start.AddDate(0, 1, -1).Day()
		buckets := make([]TimelineBucket, 0, days)
		for i := 0; i < days; i++ {
			dayStart := start.AddDate(0, 0, i)
			buckets = append(buckets, TimelineBucket{
				Label: strconv.Itoa(dayStart.Day()),
				Start: dayStart,
				End:   dayStart.AddDate(0, 0, 1),
			})
		}
		return buckets, nil
	case TimeframeYear:
		buckets := make([]TimelineBucket, 0, 12)
		for month := time.January; month <= time.December; month++ {
			monthStart := time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
			buckets = append(buckets, TimelineBucket{
				Label: monthStart.Format("Jan"),
				Start: monthStart,
				End:   monthStart.AddDate(0, 1, 0),
			})
		}
		return buckets, nil
	default:
		return nil, apperrors.NewValidationError("timeframe must be week, month or year", map[string]any{"timeframe": string(timeframe)})
	}
}

func inBucket(t time.Time, bucket *TimelineBucket) bool {
	return !t.Before(bucket.Start) && t.Before(bucket.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
