package simdrive

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/corposim/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "campaign_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the campaign driver.
func ShowHelp() {
	os.Stdout.WriteString(`Corposim Campaign Driver
========================

Plays a scripted multi-day campaign against a running corposim server:
starts a game, issues daily directives, runs recruitment rounds and
tops up energy when it runs low.

Usage:
  go run cmd/simdays/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -company string
        Company name for the new game (default "Campaign Corp")
  -days int
        Number of days to play (default 10)
  -recruit-every int
        Run the recruitment flow every N days, 0 disables (default 3)
  -candidates int
        Candidates to generate per recruitment round (default 3)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for day reports (default: campaign_reports_TIMESTAMP.json)
  -log string
        Log file for campaign output (default: campaign_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Play a campaign with default settings
  go run cmd/simdays/main.go

  # Longer campaign with weekly recruitment
  go run cmd/simdays/main.go -days 30 -recruit-every 7

  # Verbose run against a different host
  go run cmd/simdays/main.go -verbose -url http://localhost:8080
`)
}
