package service

import (
	"fmt"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
)

// ReviewFilter selects which orders a review returns
type ReviewFilter int

const (
	FilterAll ReviewFilter = iota
	FilterReceived
	FilterPreparing
	FilterReady
	FilterDelivered
)

// DefaultReviewFilter is used when no status is given
const DefaultReviewFilter = "all"

// ParseReviewFilter maps a status query value to a filter.
// Anything outside the closed set returns ErrInvalidFilter.
func ParseReviewFilter(value string) (ReviewFilter, error) {
	switch value {
	case "all":
		return FilterAll, nil
	case string(models.StatusReceived):
		return FilterReceived, nil
	case string(models.StatusPreparing):
		return FilterPreparing, nil
	case string(models.StatusReady):
		return FilterReady, nil
	case string(models.StatusDelivered):
		return FilterDelivered, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFilter, value)
	}
}

// Matches reports whether an order passes the filter
func (f ReviewFilter) Matches(order models.Order) bool {
	switch f {
	case FilterAll:
		return true
	case FilterReceived:
		return order.Status == models.StatusReceived
	case FilterPreparing:
		return order.Status == models.StatusPreparing
	case FilterReady:
		return order.Status == models.StatusReady
	case FilterDelivered:
		return order.Status == models.StatusDelivered
	default:
		return false
	}
}

func (f ReviewFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterReceived:
		return string(models.StatusReceived)
	case FilterPreparing:
		return string(models.StatusPreparing)
	case FilterReady:
		return string(models.StatusReady)
	case FilterDelivered:
		return string(models.StatusDelivered)
	default:
		return fmt.Sprintf("ReviewFilter(%d)", int(f))
	}
}
