package dto

import (
	"errors"
	"time"

	"hotel/shared/constant"
	"hotel/shared/timezone"
)

var errInvertedWindow = errors.New("start must not be after end")

// ReportRequest is the optional reporting window from the query string.
type ReportRequest struct {
	Start string `json:"start" validate:"omitempty,dateonly"`
	End   string `json:"end"   validate:"omitempty,dateonly"`
}

// Bounds parses the window. An omitted bound is nil.
func (r *ReportRequest) Bounds() (start, end *time.Time, err error) {
	if start, err = parseOptional(r.Start); err != nil {
		return nil, nil, err
	}

	if end, err = parseOptional(r.End); err != nil {
		return nil, nil, err
	}

	if start != nil && end != nil && start.After(*end) {
		return nil, nil, errInvertedWindow
	}

	return start, end, nil
}

func parseOptional(value string) (*time.Time, error) {
	if value == constant.Empty {
		return nil, nil
	}

	t, err := timezone.ParseDate(value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

type OccupancyResponse struct {
	RoomID        string `json:"room_id"`
	Start         string `json:"start"`
	End           string `json:"end"`
	OccupancyRate int    `json:"occupancy_rate"`
}

// RevenueResponse carries the amount in minor units. Start and End are omitted when open.
type RevenueResponse struct {
	RoomID  string  `json:"room_id"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
	Revenue int64   `json:"revenue"`
}

func FormatBound(t *time.Time) *string {
	if t == nil {
		return nil
	}

	value := timezone.FormatDate(*t)

	return &value
}
