// Command hap-log is a tool for viewing and analyzing HAP bridge event logs.
//
// Event logs are written by a HostContext configured with an event logger,
// usually a log.FileLogger pointed at the event_log.path from the bridge
// configuration.
//
// Usage:
//
//	hap-log <command> [flags] <file.hlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSONL or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	hap-log view bridge.hlog
//
//	# View only host-boundary calls
//	hap-log view --layer host bridge.hlog
//
//	# View only calls made by the host
//	hap-log view --direction in bridge.hlog
//
//	# Export to CSV
//	hap-log export --format csv -o bridge.csv bridge.hlog
//
//	# Keep one accessory's events
//	hap-log filter --accessory AA:BB:CC:DD:EE:01 -o lamp.hlog bridge.hlog
//
//	# Show statistics
//	hap-log stats bridge.hlog
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hapbridge/hap-go/cmd/hap-log/commands"
)

type viewCmd struct {
	Layer     string `help:"Filter by layer (host, characteristic, accessory)."`
	Direction string `help:"Filter by direction (in, out)."`
	Category  string `help:"Filter by category (access, notification, registration, state, error)."`
	File      string `arg:"" type:"existingfile" help:"Event log file."`
}

func (c *viewCmd) Run() error {
	filter, err := commands.NewViewFilter(c.Layer, c.Direction, c.Category)
	if err != nil {
		return err
	}
	return commands.RunView(c.File, filter, os.Stdout)
}

type exportCmd struct {
	Format string `enum:"jsonl,csv" default:"jsonl" help:"Output format (jsonl, csv)."`
	Output string `short:"o" help:"Output file (default: stdout)."`
	File   string `arg:"" type:"existingfile" help:"Event log file."`
}

func (c *exportCmd) Run() error {
	return commands.RunExport(c.File, c.Format, c.Output)
}

type filterCmd struct {
	Output    string `short:"o" required:"" help:"Output file."`
	Session   string `help:"Filter by session ID."`
	Accessory string `help:"Filter by accessory ID."`
	TimeStart string `help:"Events at or after this time (RFC3339)."`
	TimeEnd   string `help:"Events before this time (RFC3339)."`
	Layer     string `help:"Filter by layer (host, characteristic, accessory)."`
	Direction string `help:"Filter by direction (in, out)."`
	Category  string `help:"Filter by category (access, notification, registration, state, error)."`
	File      string `arg:"" type:"existingfile" help:"Event log file."`
}

func (c *filterCmd) Run() error {
	n, err := commands.RunFilter(c.File, commands.FilterOptions{
		Output:      c.Output,
		SessionID:   c.Session,
		AccessoryID: c.Accessory,
		TimeStart:   c.TimeStart,
		TimeEnd:     c.TimeEnd,
		Layer:       c.Layer,
		Direction:   c.Direction,
		Category:    c.Category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Filtered %d events to %s\n", n, c.Output)
	return nil
}

type statsCmd struct {
	File string `arg:"" type:"existingfile" help:"Event log file."`
}

func (c *statsCmd) Run() error {
	return commands.RunStats(c.File, os.Stdout)
}

type cli struct {
	View   viewCmd   `cmd:"" help:"View log file in human-readable format."`
	Export exportCmd `cmd:"" help:"Export log file to JSONL or CSV format."`
	Filter filterCmd `cmd:"" help:"Filter log file and write to new file."`
	Stats  statsCmd  `cmd:"" help:"Show statistics about the log file."`
}

func parser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("hap-log"),
		kong.Description("HAP bridge event log analyzer."),
		kong.UsageOnError(),
	}, options...)
	return kong.New(c, options...)
}

func main() {
	var c cli
	k, err := parser(&c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx, err := k.Parse(os.Args[1:])
	k.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
