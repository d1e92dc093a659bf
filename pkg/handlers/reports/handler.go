package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/de-tools/travel-atlas/pkg/adapters"
	"github.com/de-tools/travel-atlas/pkg/models/api"
	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/de-tools/travel-atlas/pkg/services/overview"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	defaultTimeRange = "30"
	defaultCategory  = string(domain.CategoryOverview)
)

var validate = validator.New()

type overviewParams struct {
	TimeRange string `validate:"oneof=7 30 90 365"`
	Category  string `validate:"oneof=overview users bookings revenue content productivity"`
	AdminID   string
}

func (p overviewParams) echo() *api.RequestParams {
	return &api.RequestParams{
		TimeRange: p.TimeRange,
		Category:  p.Category,
		AdminID:   p.AdminID,
	}
}

type Handler struct {
	overview overview.Service
}

func NewHandler(svc overview.Service) *Handler {
	return &Handler{overview: svc}
}

func (h *Handler) GetBusinessOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	params := parseParams(r)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().
				Interface("panic", rec).
				Str("time_range", params.TimeRange).
				Str("category", params.Category).
				Msg("business overview panicked")
			writeJSON(w, r, http.StatusInternalServerError, api.Response{
				Message: fmt.Sprintf("unexpected error: %v", rec),
				Params:  params.echo(),
			})
		}
	}()

	if err := validate.Struct(params); err != nil {
		logger.Warn().
			Err(err).
			Str("time_range", params.TimeRange).
			Str("category", params.Category).
			Msg("invalid report parameters")
		writeJSON(w, r, http.StatusBadRequest, api.Response{Message: validationMessage(err)})
		return
	}

	// oneof guarantees both conversions succeed
	windowDays, _ := strconv.Atoi(params.TimeRange)
	requested, _ := domain.ParseCategory(params.Category)

	logger.Info().
		Str("admin_id", params.AdminID).
		Int("window_days", windowDays).
		Str("category", string(requested)).
		Msg("business report requested")

	served, implemented := requested.Resolve()
	res := api.Response{}
	if !implemented {
		logger.Warn().
			Str("requested_category", string(requested)).
			Str("served_category", string(served)).
			Msg("category not implemented, serving fallback")
		res.RequestedCategory = string(requested)
		res.ServedCategory = string(served)
		res.Notice = fmt.Sprintf("category %q is not available yet; the %s report is returned instead", requested, served)
	}

	report, err := h.overview.GetBusinessOverview(ctx, windowDays)
	if err != nil {
		if errors.Is(err, overview.ErrAggregationFailed) {
			writeJSON(w, r, http.StatusInternalServerError, api.Response{Message: overview.FailureMessage})
			return
		}
		logger.Error().Err(err).Msg("unexpected business overview failure")
		writeJSON(w, r, http.StatusInternalServerError, api.Response{
			Message: err.Error(),
			Params:  params.echo(),
		})
		return
	}

	data := adapters.MapReportDomainToApi(*report)
	res.Success = true
	res.Data = &data
	writeJSON(w, r, http.StatusOK, res)
}

func parseParams(r *http.Request) overviewParams {
	q := r.URL.Query()
	p := overviewParams{
		TimeRange: strings.TrimSpace(q.Get("time_range")),
		Category:  strings.ToLower(strings.TrimSpace(q.Get("category"))),
		AdminID:   q.Get("admin_id"),
	}
	if p.TimeRange == "" {
		p.TimeRange = defaultTimeRange
	}
	if p.Category == "" {
		p.Category = defaultCategory
	}
	return p
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := "time_range"
		if fe.Field() == "Category" {
			field = "category"
		}
		msgs = append(msgs, fmt.Sprintf("invalid %s %q: must be one of %s", field, fe.Value(), fe.Param()))
	}
	return strings.Join(msgs, "; ")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body api.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Int("status", status).
			Msg("failed to encode report response")
	}
}
