package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/corposim/internal/simdrive"
)

// Default configuration constants.
const (
	defaultDays         = 10
	defaultRecruitEvery = 3
	defaultCandidates   = 3
	defaultTimeout      = 30 * time.Second
	defaultRunTimeout   = 10 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		companyName  = flag.String("company", "Campaign Corp", "Company name for the new game")
		days         = flag.Int("days", defaultDays, "Number of days to play")
		recruitEvery = flag.Int("recruit-every", defaultRecruitEvery, "Run the recruitment flow every N days, 0 disables")
		candidates   = flag.Int("candidates", defaultCandidates, "Candidates to generate per recruitment round")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile   = flag.String("output", "", "Output file for day reports (default: campaign_reports_TIMESTAMP.json)")
		logFile      = flag.String("log", "", "Log file for campaign output (default: campaign_log_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		simdrive.ShowHelp()
		return
	}

	// Setup logging
	if err := simdrive.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create campaign configuration
	config := &simdrive.Config{
		BaseURL:      *baseURL,
		CompanyName:  *companyName,
		Days:         *days,
		RecruitEvery: *recruitEvery,
		Candidates:   *candidates,
		Timeout:      *timeout,
		OutputFile:   *outputFile,
		LogFile:      *logFile,
		Verbose:      *verbose,
	}

	// Run the campaign
	if err := simdrive.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Campaign failed: " + err.Error() + "\n")
		return
	}
}
