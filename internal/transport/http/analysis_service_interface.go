package http

import (
	"context"
	"time"

	"lottoscope/internal/services"
	"lottoscope/pkg/contracts/domain"
)

// AnalysisServiceInterface defines the engine surface the handlers need.
// Kept as an interface so handler tests can substitute a stub service.
type AnalysisServiceInterface interface {
	AnalyzeFiles(ctx context.Context, inputs []services.FileInput, profile domain.Profile) (*domain.AnalysisResult, error)
	Reanalyze(history []domain.Draw, profile domain.Profile, from, to time.Time) (*domain.AnalysisResult, error)
	Suggest(stats *domain.Statistics, profile domain.Profile) (domain.Suggestions, error)
}
