package cmd

import (
	"fmt"

	quoteslib "github.com/amdox/moodtrack/internal/adapters/quotes"
	csvrepo "github.com/amdox/moodtrack/internal/adapters/repo/csv"
	checkinrender "github.com/amdox/moodtrack/internal/adapters/render/checkin"
	reportrender "github.com/amdox/moodtrack/internal/adapters/render/report"
	"github.com/amdox/moodtrack/internal/application"
	"github.com/amdox/moodtrack/internal/domain"
	"github.com/amdox/moodtrack/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	history         ports.HistoryRepository
	quotes          ports.QuoteLibrary
	recommender     domain.Recommender
	clock           ports.Clock
	reports         *application.ReportService
	checkinRenderer func(application.SessionResult, checkinrender.RenderOptions) (string, error)
	reportRenderer  func(application.TeamReport) (string, error)
}

func wireApp() (*app, error) {
	repo, err := csvrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire history repository: %w", err)
	}

	library, err := quoteslib.NewLibrary(nil)
	if err != nil {
		return nil, fmt.Errorf("wire quote library: %w", err)
	}

	return &app{
		history:         repo,
		quotes:          library,
		recommender:     domain.TrainRecommender(),
		clock:           ports.SystemClock{},
		reports:         application.NewReportService(repo),
		checkinRenderer: checkinrender.Render,
		reportRenderer:  reportrender.Render,
	}, nil
}

func (a *app) sessionService(source ports.MoodSource) *application.SessionService {
	return application.NewSessionService(a.history, source, a.quotes, a.recommender, a.clock)
}
