package simdrive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/corposim/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes a full scripted campaign against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting campaign",
		logger.String("baseURL", config.BaseURL),
		logger.String("company", config.CompanyName),
		logger.Int("days", config.Days),
		logger.Int("recruitEvery", config.RecruitEvery),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	state, err := startGame(ctx, client, config)
	if err != nil {
		return fmt.Errorf("game start failed: %w", err)
	}

	reports, err := playCampaign(ctx, client, config, state.GameID, stats)
	if err != nil {
		return fmt.Errorf("campaign failed: %w", err)
	}

	final, err := fetchState(ctx, client, config, state.GameID)
	if err != nil {
		return fmt.Errorf("final state retrieval failed: %w", err)
	}

	if err := saveReportsToFile(ctx, config, reports); err != nil {
		logger.Get().Warn(ctx, "failed to save reports to file", logger.Error(err))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats, final)

	logger.Get().Info(ctx, "campaign completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if _, err := readResponseBody(resp); err != nil {
		return fmt.Errorf("failed to read health response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// startGame creates the game session the campaign plays.
func startGame(ctx context.Context, client *HTTPClient, config *Config) (*gameState, error) {
	var state gameState
	body := map[string]string{"company_name": config.CompanyName}
	if err := client.postJSON(ctx, config.BaseURL+"/game/start", body, &state, StatusCreated); err != nil {
		return nil, err
	}

	logger.Get().Info(ctx, "game started",
		logger.String("gameID", state.GameID),
		logger.String("company", state.Company.Name),
		logger.Int("agents", len(state.Agents)),
		logger.Int("energy", state.EnergyTotal))
	return &state, nil
}

// playCampaign runs the day loop with the directive policy, interleaving
// recruitment rounds and energy purchases.
func playCampaign(ctx context.Context, client *HTTPClient, config *Config, gameID string, stats *Stats) ([]dayReport, error) {
	reports := make([]dayReport, 0, config.Days)

	for day := 1; day <= config.Days; day++ {
		select {
		case <-ctx.Done():
			return reports, fmt.Errorf("context cancelled during campaign: %w", ctx.Err())
		default:
		}

		state, err := fetchState(ctx, client, config, gameID)
		if err != nil {
			return reports, fmt.Errorf("state retrieval before day %d failed: %w", day, err)
		}

		if state.EnergyTotal < lowEnergyThreshold && state.Company.Cash >= energyBundleCash {
			if err := buyEnergy(ctx, client, config, gameID, stats); err != nil {
				logger.Get().Warn(ctx, "energy purchase skipped", logger.Error(err))
			}
		}

		directives := planDirectives(state.Agents)
		report, err := playDay(ctx, client, config, gameID, directives)
		if err != nil {
			return reports, fmt.Errorf("day %d failed: %w", day, err)
		}

		reports = append(reports, *report)
		stats.DaysPlayed++
		stats.DirectivesIssued += len(directives)
		stats.TotalRevenue += report.Results.Revenue
		stats.TotalCosts += report.Results.Costs
		stats.TotalNet += report.Results.Net

		if config.Verbose {
			logger.Get().Info(ctx, "day resolved",
				logger.Int("day", report.Day),
				logger.Int("directives", len(directives)),
				logger.Float64("revenue", report.Results.Revenue),
				logger.Float64("costs", report.Results.Costs),
				logger.Float64("net", report.Results.Net),
				logger.Int("energyUsed", report.EnergyUsed))
		}

		if config.RecruitEvery > 0 && day%config.RecruitEvery == 0 {
			if err := runRecruitmentRound(ctx, client, config, gameID, stats); err != nil {
				logger.Get().Warn(ctx, "recruitment round failed", logger.Int("day", day), logger.Error(err))
			}
		}
	}

	return reports, nil
}

// playDay submits the day's directives and returns the resolved report.
func playDay(ctx context.Context, client *HTTPClient, config *Config, gameID string, directives []directive) (*dayReport, error) {
	var report dayReport
	body := map[string]interface{}{
		"game_id": gameID,
		"actions": directives,
	}
	if err := client.postJSON(ctx, config.BaseURL+"/game/day", body, &report, StatusOK); err != nil {
		return nil, err
	}
	return &report, nil
}

// fetchState retrieves the current game state.
func fetchState(ctx context.Context, client *HTTPClient, config *Config, gameID string) (*gameState, error) {
	var state gameState
	if err := client.getJSON(ctx, config.BaseURL+"/game/state/"+gameID, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// buyEnergy purchases one bundle of energy units.
func buyEnergy(ctx context.Context, client *HTTPClient, config *Config, gameID string, stats *Stats) error {
	body := map[string]interface{}{
		"game_id": gameID,
		"units":   energyBundleUnits,
	}
	if err := client.postJSON(ctx, config.BaseURL+"/energy/buy", body, nil, StatusOK); err != nil {
		return err
	}
	stats.EnergyPurchases++
	logger.Get().Info(ctx, "energy purchased", logger.Int("units", energyBundleUnits))
	return nil
}

// runRecruitmentRound generates candidates, interviews the pick of the pool
// and hires it.
func runRecruitmentRound(ctx context.Context, client *HTTPClient, config *Config, gameID string, stats *Stats) error {
	pool, err := generateCandidates(ctx, client, config)
	if err != nil {
		return fmt.Errorf("candidate generation failed: %w", err)
	}
	stats.CandidatesSeen += len(pool)

	pick := pickCandidate(pool)
	if pick < 0 {
		return fmt.Errorf("empty candidate pool")
	}
	chosen := pool[pick]

	reply, err := interviewCandidate(ctx, client, config, chosen)
	if err != nil {
		return fmt.Errorf("interview failed: %w", err)
	}
	stats.InterviewsHeld++
	if config.Verbose {
		logger.Get().Info(ctx, "candidate interviewed",
			logger.String("candidate", chosen.Name),
			logger.String("reply", reply))
	}

	if err := hireCandidate(ctx, client, config, gameID, chosen); err != nil {
		return fmt.Errorf("hire failed: %w", err)
	}
	stats.AgentsHired++
	logger.Get().Info(ctx, "candidate hired", logger.String("candidate", chosen.Name))
	return nil
}

// generateCandidates requests a fresh candidate pool. The raw payload of each
// candidate is kept so hire requests resubmit it unchanged.
func generateCandidates(ctx context.Context, client *HTTPClient, config *Config) ([]candidate, error) {
	var raws []json.RawMessage
	body := map[string]int{"count": config.Candidates}
	if err := client.postJSON(ctx, config.BaseURL+"/recruitment/candidates", body, &raws, StatusOK); err != nil {
		return nil, err
	}

	pool := make([]candidate, 0, len(raws))
	for _, raw := range raws {
		var c candidate
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("failed to decode candidate: %w", err)
		}
		c.raw = raw
		pool = append(pool, c)
	}
	return pool, nil
}

// interviewCandidate asks the chosen candidate a single scripted question.
func interviewCandidate(ctx context.Context, client *HTTPClient, config *Config, chosen candidate) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	body := map[string]interface{}{
		"candidate": chosen.raw,
		"thread": []map[string]string{
			{"sender": "manager", "content": "Tell me about your experience."},
		},
	}
	if err := client.postJSON(ctx, config.BaseURL+"/recruitment/interview", body, &out, StatusOK); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// hireCandidate adds the chosen candidate to the roster.
func hireCandidate(ctx context.Context, client *HTTPClient, config *Config, gameID string, chosen candidate) error {
	var state gameState
	body := map[string]interface{}{
		"game_id":   gameID,
		"candidate": chosen.raw,
	}
	return client.postJSON(ctx, config.BaseURL+"/recruitment/hire", body, &state, StatusOK)
}

// saveReportsToFile writes the collected day reports to a JSON file.
func saveReportsToFile(ctx context.Context, config *Config, reports []dayReport) error {
	if len(reports) == 0 {
		return fmt.Errorf("no reports to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "campaign_reports_" + timestamp + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reports: %w", err)
	}
	if err := os.WriteFile(filename, data, logFilePermission); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	logger.Get().Info(ctx, "reports saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final campaign statistics.
func displayFinalStats(stats *Stats, final *gameState) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("daysPlayed", stats.DaysPlayed),
		logger.Int("directivesIssued", stats.DirectivesIssued),
		logger.Int("candidatesSeen", stats.CandidatesSeen),
		logger.Int("interviewsHeld", stats.InterviewsHeld),
		logger.Int("agentsHired", stats.AgentsHired),
		logger.Int("energyPurchases", stats.EnergyPurchases),
		logger.Float64("totalRevenue", stats.TotalRevenue),
		logger.Float64("totalCosts", stats.TotalCosts),
		logger.Float64("totalNet", stats.TotalNet),
		logger.Int("finalDay", final.Day),
		logger.Int("finalRoster", len(final.Agents)),
		logger.Float64("finalCash", final.Company.Cash),
		logger.String("duration", stats.Duration.String()))
}
