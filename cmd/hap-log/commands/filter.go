package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/hapbridge/hap-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output      string
	SessionID   string
	AccessoryID string
	TimeStart   string
	TimeEnd     string
	Layer       string
	Direction   string
	Category    string
}

// RunFilter filters the log file, writes matching events to opts.Output and
// returns how many were written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	view, err := NewViewFilter(opts.Layer, opts.Direction, opts.Category)
	if err != nil {
		return 0, err
	}
	filter := view.toFilter()
	filter.SessionID = opts.SessionID
	filter.AccessoryID = opts.AccessoryID

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return 0, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return 0, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}
	return count, nil
}
