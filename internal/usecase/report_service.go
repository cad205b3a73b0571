package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sleeper-report/internal/domain/league"
	"github.com/riskibarqy/sleeper-report/internal/domain/lineup"
	"github.com/riskibarqy/sleeper-report/internal/domain/player"
	"github.com/riskibarqy/sleeper-report/internal/domain/roster"
	"github.com/riskibarqy/sleeper-report/internal/domain/trending"
	"github.com/riskibarqy/sleeper-report/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// PlayerDataProvider is the read side of the fantasy data provider.
type PlayerDataProvider interface {
	FetchState(ctx context.Context) (league.State, error)
	FetchPlayers(ctx context.Context) (player.Directory, error)
	FetchTrending(ctx context.Context, direction trending.Direction, lookbackHours, limit int) ([]trending.Entry, error)
}

// ReportInput is one run's parameters. Any non-empty team is accepted; a code
// no player carries yields empty sections, not an error.
type ReportInput struct {
	Team          string `validate:"required"`
	LookbackHours int    `validate:"gt=0"`
	TrendingLimit int    `validate:"gt=0,lte=200"`
}

// Report is everything one run prints. Empty sections are valid results.
type Report struct {
	Team          string         `json:"team"`
	State         league.State   `json:"state"`
	Season        int            `json:"season"`
	LookbackHours int            `json:"lookback_hours"`
	Roster        []roster.Row   `json:"roster"`
	TrendingAdds  []trending.Row `json:"trending_adds"`
	TrendingDrops []trending.Row `json:"trending_drops"`
	Lineup        lineup.Lineup  `json:"lineup"`
	GeneratedAt   time.Time      `json:"generated_at"`
}

type ReportService struct {
	provider  PlayerDataProvider
	validator *validator.Validate
	logger    *logging.Logger
	nameWidth int
	now       func() time.Time
}

func NewReportService(provider PlayerDataProvider, logger *logging.Logger, nameWidth int) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{
		provider:  provider,
		validator: validator.New(),
		logger:    logger,
		nameWidth: nameWidth,
		now:       time.Now,
	}
}

func (s *ReportService) Generate(ctx context.Context, input ReportInput) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Generate")
	defer span.End()

	input.Team = strings.ToUpper(strings.TrimSpace(input.Team))
	if err := s.validator.StructCtx(ctx, input); err != nil {
		return Report{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	state, err := s.provider.FetchState(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("fetch league state: %w", err)
	}
	players, err := s.provider.FetchPlayers(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("fetch players: %w", err)
	}
	adds, err := s.provider.FetchTrending(ctx, trending.DirectionAdd, input.LookbackHours, input.TrendingLimit)
	if err != nil {
		return Report{}, fmt.Errorf("fetch trending adds: %w", err)
	}
	drops, err := s.provider.FetchTrending(ctx, trending.DirectionDrop, input.LookbackHours, input.TrendingLimit)
	if err != nil {
		return Report{}, fmt.Errorf("fetch trending drops: %w", err)
	}

	now := s.now().UTC()
	normalizer := player.NewNormalizer(now, s.nameWidth)
	report := Report{
		Team:          input.Team,
		State:         state,
		Season:        normalizer.Season,
		LookbackHours: input.LookbackHours,
		GeneratedAt:   now,
	}

	// Sections read the same snapshot and write disjoint fields.
	var wg conc.WaitGroup
	wg.Go(func() {
		report.Roster = roster.ForTeam(players, input.Team, normalizer)
	})
	wg.Go(func() {
		report.TrendingAdds = trending.WithTeam(players, adds, input.Team, normalizer)
	})
	wg.Go(func() {
		report.TrendingDrops = trending.WithTeam(players, drops, input.Team, normalizer)
	})
	wg.Go(func() {
		report.Lineup = lineup.Build(roster.Players(players, input.Team), normalizer)
	})
	wg.Wait()

	s.logger.InfoContext(ctx, "report generated",
		"team", report.Team,
		"players", len(players),
		"roster_rows", len(report.Roster),
		"trending_adds", len(report.TrendingAdds),
		"trending_drops", len(report.TrendingDrops),
		"lineup_slots", len(report.Lineup),
	)

	return report, nil
}
