package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"lottoscope/internal/analytics"
	"lottoscope/internal/dataprocessing"
	"lottoscope/internal/infrastructure"
	"lottoscope/pkg/contracts/domain"
)

// defaultParseConcurrency bounds the per-file parse workers. Files are
// independent, so the pipeline is embarrassingly parallel up to the merge.
const defaultParseConcurrency = 4

// FileInput is one raw source file handed to the engine: the name is used
// for error attribution only, the bytes are everything else.
type FileInput struct {
	Name string
	Data []byte
}

// AnalysisService orchestrates the ingestion and analysis pipeline: parallel
// per-file parsing, deterministic consolidation, aggregation and suggestion
// generation.
type AnalysisService struct {
	logger      *slog.Logger
	validate    *validator.Validate
	concurrency int

	// randSource overrides the suggestion randomness in tests; nil means
	// time-seeded per invocation.
	randSource func() rand.Source
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		logger:      logger.With(slog.String("component", "analysis_service")),
		validate:    validator.New(),
		concurrency: defaultParseConcurrency,
	}
}

// AnalyzeFiles runs the full pipeline over a batch of files.
//
// Each file runs its read/locate/extract pipeline independently; a failure
// in one file is recorded in its FileReport and does not stop the others.
// Batches are merged in input order, so when two files disagree about a
// contest the later file wins deterministically. The batch as a whole fails
// only when the profile is invalid or no file yields a single valid draw.
func (s *AnalysisService) AnalyzeFiles(ctx context.Context, inputs []FileInput, profile domain.Profile) (*domain.AnalysisResult, error) {
	if len(inputs) == 0 {
		return nil, ErrNoFiles
	}
	if err := s.validateProfile(profile); err != nil {
		return nil, err
	}

	start := time.Now()
	batches := make([][]domain.Draw, len(inputs))
	reports := make([]domain.FileReport, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			draws, err := s.parseFile(input, profile)
			if err != nil {
				s.logger.WarnContext(ctx, "file failed",
					slog.String("file", input.Name),
					slog.String("error", err.Error()))
				infrastructure.FilesParsed.WithLabelValues("error").Inc()
				reports[i] = domain.FileReport{File: input.Name, Error: err.Error()}
				return nil
			}
			infrastructure.FilesParsed.WithLabelValues("ok").Inc()
			infrastructure.DrawsExtracted.Add(float64(len(draws)))
			batches[i] = draws
			reports[i] = domain.FileReport{File: input.Name, Draws: len(draws)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	history, err := dataprocessing.Consolidate(batches, profile)
	if err != nil {
		return nil, err
	}

	stats := analytics.Aggregate(history, profile)
	suggestions := s.generate(stats, profile)

	infrastructure.AnalysesTotal.Inc()
	infrastructure.AnalysisDuration.Observe(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "analysis completed",
		slog.Int("files", len(inputs)),
		slog.Int("draws", len(history)),
		slog.Duration("duration", time.Since(start)))

	return &domain.AnalysisResult{
		ID:          uuid.New().String(),
		Profile:     profile,
		History:     history,
		Statistics:  stats,
		Suggestions: &suggestions,
		Files:       reports,
	}, nil
}

// parseFile runs one file through the read/locate/extract pipeline. The
// returned error already names the file (the processing errors carry it).
func (s *AnalysisService) parseFile(input FileInput, profile domain.Profile) ([]domain.Draw, error) {
	grid, err := dataprocessing.ReadGrid(input.Name, input.Data)
	if err != nil {
		return nil, err
	}
	cols, err := dataprocessing.LocateHeader(input.Name, grid, profile)
	if err != nil {
		return nil, err
	}
	return dataprocessing.ExtractDraws(input.Name, grid, cols, profile), nil
}

// Reanalyze recomputes statistics over a date-filtered slice of an already
// consolidated history, without touching the raw files. The zero time on
// either bound leaves that side open.
func (s *AnalysisService) Reanalyze(history []domain.Draw, profile domain.Profile, from, to time.Time) (*domain.AnalysisResult, error) {
	if err := s.validateProfile(profile); err != nil {
		return nil, err
	}

	var filtered []domain.Draw
	for _, draw := range history {
		if !from.IsZero() && draw.Date.Before(from) {
			continue
		}
		if !to.IsZero() && draw.Date.After(to) {
			continue
		}
		filtered = append(filtered, draw)
	}
	if len(filtered) == 0 {
		return nil, ErrEmptyRange
	}

	stats := analytics.Aggregate(filtered, profile)
	suggestions := s.generate(stats, profile)
	return &domain.AnalysisResult{
		ID:          uuid.New().String(),
		Profile:     profile,
		History:     filtered,
		Statistics:  stats,
		Suggestions: &suggestions,
	}, nil
}

// Suggest regenerates a fresh suggestion set from existing statistics. Every
// call gets its own generator, so concurrent requests never share a rand
// state and repeated calls yield new picks.
func (s *AnalysisService) Suggest(stats *domain.Statistics, profile domain.Profile) (domain.Suggestions, error) {
	if stats == nil || len(stats.Frequency) == 0 {
		return domain.Suggestions{}, ErrNoStatistics
	}
	if err := s.validateProfile(profile); err != nil {
		return domain.Suggestions{}, err
	}
	return s.generate(stats, profile), nil
}

// generate assumes the profile was already validated.
func (s *AnalysisService) generate(stats *domain.Statistics, profile domain.Profile) domain.Suggestions {
	var src rand.Source
	if s.randSource != nil {
		src = s.randSource()
	}
	return analytics.NewSuggestionGenerator(src).Generate(stats.Frequency, profile)
}

func (s *AnalysisService) validateProfile(profile domain.Profile) error {
	if err := s.validate.Struct(profile); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}
