package app

import (
	"github.com/riskibarqy/sleeper-report/external/sleeper"
	"github.com/riskibarqy/sleeper-report/internal/config"
	"github.com/riskibarqy/sleeper-report/internal/platform/logging"
	"github.com/riskibarqy/sleeper-report/internal/usecase"
)

// NewReportService wires the Sleeper client into the report usecase.
func NewReportService(cfg config.Config, logger *logging.Logger) *usecase.ReportService {
	client := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL:      cfg.SleeperBaseURL,
		Sport:        cfg.SleeperSport,
		Timeout:      cfg.SleeperTimeout,
		MaxBodyBytes: cfg.SleeperMaxBodyBytes,
		UserAgent:    cfg.SleeperUserAgent,
		Logger:       logger,
	})

	return usecase.NewReportService(client, logger, cfg.NameWidth)
}
