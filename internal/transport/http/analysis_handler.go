package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "lottoscope/internal/errors"
	"lottoscope/internal/services"
	"lottoscope/pkg/contracts/domain"
)

// multipartMemoryLimit is how much of a parsed upload stays in memory before
// spilling to temp files; the request size cap is enforced separately.
const multipartMemoryLimit = 10 << 20

// AnalysisHandler handles analysis HTTP requests.
type AnalysisHandler struct {
	service        AnalysisServiceInterface
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	defaultProfile domain.Profile
	maxUploadBytes int64
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(service AnalysisServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, defaultProfile domain.Profile, maxUploadBytes int64) *AnalysisHandler {
	return &AnalysisHandler{
		service:        service,
		logger:         logger.With(slog.String("component", "analysis_handler")),
		errorHandler:   errorHandler,
		defaultProfile: defaultProfile,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the analysis routes.
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.Analyze)
	r.Post("/reanalyze", h.Reanalyze)
	r.Post("/suggestions", h.Suggestions)

	return r
}

// Analyze handles POST /api/analysis: a multipart upload of one or more
// result files plus optional profile override fields. Per-file failures are
// reported inside the result payload; only batch-level failures become HTTP
// errors.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	profile, err := h.profileFromForm(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	var inputs []services.FileInput
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			file, err := header.Open()
			if err != nil {
				h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
				return
			}
			inputs = append(inputs, services.FileInput{Name: header.Filename, Data: data})
		}
	}

	result, err := h.service.AnalyzeFiles(r.Context(), inputs, profile)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// ReanalyzeRequest carries an already consolidated history back for a
// date-filtered second pass, without re-uploading files.
type ReanalyzeRequest struct {
	Profile domain.Profile `json:"profile"`
	History []domain.Draw  `json:"history"`
	From    string         `json:"from,omitempty"`
	To      string         `json:"to,omitempty"`
}

// Bind implements render.Binder.
func (req *ReanalyzeRequest) Bind(r *http.Request) error {
	return nil
}

// Reanalyze handles POST /api/analysis/reanalyze.
func (h *AnalysisHandler) Reanalyze(w http.ResponseWriter, r *http.Request) {
	req := &ReanalyzeRequest{}
	if err := render.Bind(r, req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	from, err := parseDateParam(req.From)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("from", "expected YYYY-MM-DD"))
		return
	}
	to, err := parseDateParam(req.To)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("to", "expected YYYY-MM-DD"))
		return
	}

	result, err := h.service.Reanalyze(req.History, req.Profile, from, to)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

// SuggestionsRequest asks for a fresh suggestion set over known statistics.
type SuggestionsRequest struct {
	Profile    domain.Profile     `json:"profile"`
	Statistics *domain.Statistics `json:"statistics"`
}

// Bind implements render.Binder.
func (req *SuggestionsRequest) Bind(r *http.Request) error {
	return nil
}

// Suggestions handles POST /api/analysis/suggestions. The generator is
// stateless, so every call yields a new random pick over the same table.
func (h *AnalysisHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	req := &SuggestionsRequest{}
	if err := render.Bind(r, req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	if req.Statistics == nil || len(req.Statistics.Frequency) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("statistics", "frequency table is required"))
		return
	}

	suggestions, err := h.service.Suggest(req.Statistics, req.Profile)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, suggestions)
}

// profileFromForm builds the effective profile: the configured default with
// any per-request form overrides applied.
func (h *AnalysisHandler) profileFromForm(r *http.Request) (domain.Profile, error) {
	profile := h.defaultProfile

	fields := map[string]*int{
		"total_numbers": &profile.TotalNumbers,
		"draw_size":     &profile.DrawSize,
		"bet_size":      &profile.BetSize,
		"hot_count":     &profile.HotCount,
		"cold_count":    &profile.ColdCount,
	}
	for name, target := range fields {
		raw := r.FormValue(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Profile{}, apierrors.ErrValidation(name, "expected an integer")
		}
		*target = value
	}
	if name := r.FormValue("profile_name"); name != "" {
		profile.Name = name
	}
	return profile, nil
}

func parseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
