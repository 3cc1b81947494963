// Package commands implements the hap-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/hapbridge/hap-go/pkg/host"
	"github.com/hapbridge/hap-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
}

// NewViewFilter parses flag values. Empty strings match everything.
func NewViewFilter(layer, direction, category string) (ViewFilter, error) {
	var f ViewFilter
	if layer != "" {
		l, err := parseLayer(layer)
		if err != nil {
			return f, err
		}
		f.Layer = &l
	}
	if direction != "" {
		d, err := parseDirection(direction)
		if err != nil {
			return f, err
		}
		f.Direction = &d
	}
	if category != "" {
		c, err := parseCategory(category)
		if err != nil {
			return f, err
		}
		f.Category = &c
	}
	return f, nil
}

func (f ViewFilter) toFilter() log.Filter {
	return log.Filter{Layer: f.Layer, Direction: f.Direction, Category: f.Category}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] %-3s %s %s", ts, shortenID(event.SessionID),
		event.Direction.String(), event.Layer.String(), typeLabel(event))
	if event.AccessoryID != "" {
		fmt.Fprintf(w, " accessory=%s", event.AccessoryID)
	}
	fmt.Fprintln(w)

	switch {
	case event.Access != nil:
		formatAccessDetails(w, event.Access)
	case event.Service != nil:
		formatServiceDetails(w, event.Service)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

func typeLabel(event log.Event) string {
	switch {
	case event.Access != nil:
		return event.Access.Op.String()
	case event.Service != nil:
		return "Service"
	case event.StateChange != nil:
		return "State"
	case event.Error != nil:
		return "Error"
	case event.Category == log.CategoryRegistration:
		return "Registered"
	default:
		return "Unknown"
	}
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatAccessDetails(w io.Writer, a *log.AccessEvent) {
	fmt.Fprintf(w, "  Characteristic: %s\n", host.CharacteristicType(a.CharacteristicType))
	fmt.Fprintf(w, "  Payload: %#x", a.Payload)
	if a.Length != 0 {
		fmt.Fprintf(w, " (%d bytes)", a.Length)
	}
	fmt.Fprintln(w)
	if a.Value != nil {
		fmt.Fprintf(w, "  Value: %v\n", a.Value)
	}
}

func formatServiceDetails(w io.Writer, s *log.ServiceEvent) {
	fmt.Fprintf(w, "  Service: %s\n", host.ServiceType(s.ServiceType))
	form := "basic"
	if s.Extended {
		form = "extended"
	}
	fmt.Fprintf(w, "  Characteristics: %d (%s)\n", s.Characteristics, form)
	if s.ValidValueArrays > 0 {
		fmt.Fprintf(w, "  Valid-value arrays: %d\n", s.ValidValueArrays)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// parseLayer parses a layer string (case-insensitive).
func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "host":
		return log.LayerHost, nil
	case "characteristic":
		return log.LayerCharacteristic, nil
	case "accessory":
		return log.LayerAccessory, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be host, characteristic, or accessory)", s)
	}
}

// parseDirection parses a direction string (case-insensitive).
func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "access":
		return log.CategoryAccess, nil
	case "notification":
		return log.CategoryNotification, nil
	case "registration":
		return log.CategoryRegistration, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be access, notification, registration, state, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.toFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
