package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/hapbridge/hap-go/pkg/host"
	"github.com/hapbridge/hap-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	AccessByOp        map[log.AccessOp]int
	Accessories       map[string]*AccessoryStats
	Sessions          map[string]struct{}
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// AccessoryStats holds statistics for a single accessory.
type AccessoryStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	State     string
	Services  []host.ServiceType
}

// Collect reads every event in path.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		AccessByOp:        make(map[log.AccessOp]int),
		Accessories:       make(map[string]*AccessoryStats),
		Sessions:          make(map[string]struct{}),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++
	if event.SessionID != "" {
		s.Sessions[event.SessionID] = struct{}{}
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Access != nil {
		s.AccessByOp[event.Access.Op]++
	}
	if event.Error != nil {
		s.Errors++
	}

	if event.AccessoryID == "" {
		return
	}
	acc, ok := s.Accessories[event.AccessoryID]
	if !ok {
		acc = &AccessoryStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Accessories[event.AccessoryID] = acc
	}
	acc.Events++
	if event.Timestamp.After(acc.LastSeen) {
		acc.LastSeen = event.Timestamp
	}
	if event.StateChange != nil && event.StateChange.Entity == log.StateEntityAccessory {
		acc.State = event.StateChange.NewState
	}
	if event.Service != nil {
		acc.Services = append(acc.Services, host.ServiceType(event.Service.ServiceType))
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== HAP Bridge Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions:     %d\n", len(stats.Sessions))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerHost, log.LayerCharacteristic, log.LayerAccessory} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryAccess, log.CategoryNotification, log.CategoryRegistration, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.AccessByOp) > 0 {
		fmt.Fprintln(w, "Characteristic Access:")
		for _, op := range []log.AccessOp{log.AccessRead, log.AccessWrite, log.AccessEnableEvents, log.AccessDisableEvents, log.AccessEmit} {
			if count := stats.AccessByOp[op]; count > 0 {
				fmt.Fprintf(w, "  %-16s %d\n", op.String()+":", count)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Accessories: %d\n", len(stats.Accessories))
	if len(stats.Accessories) > 0 {
		ids := make([]string, 0, len(stats.Accessories))
		for id := range stats.Accessories {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			return stats.Accessories[ids[i]].FirstSeen.Before(stats.Accessories[ids[j]].FirstSeen)
		})

		fmt.Fprintln(w)
		for _, id := range ids {
			a := stats.Accessories[id]
			duration := a.LastSeen.Sub(a.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", id, a.Events, duration)
			if a.State != "" {
				fmt.Fprintf(w, "           State: %s\n", a.State)
			}
			for _, svc := range a.Services {
				fmt.Fprintf(w, "           Service: %s\n", svc)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
