// Package server serves the calculator page and its JSON API.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/loan-calculator/internal/calculator"
	"github.com/iwvelando/loan-calculator/internal/showcase"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/format"
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/iwvelando/loan-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

//go:embed templates/*
var templateFiles embed.FS

// Options tunes the handler returned by NewHandler.
type Options struct {
	MaxRequestSize int64
	Version        string
	Defaults       loans.Parameters
	Now            func() time.Time
}

type handler struct {
	logger         *zap.Logger
	metrics        *Metrics
	maxRequestSize int64
	version        string
	defaults       loans.Parameters
	now            func() time.Time
	page           *template.Template
}

// NewHandler constructs the HTTP handler that serves the web UI and calculator API.
func NewHandler(logger *zap.Logger, metrics *Metrics, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	if opts.MaxRequestSize <= 0 {
		opts.MaxRequestSize = constants.DefaultMaxRequestSizeBytes
	}
	if opts.Defaults == (loans.Parameters{}) {
		opts.Defaults = loans.DefaultParameters()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	page, err := template.New("index.html").Funcs(template.FuncMap{
		"currency": format.Currency,
		"percent":  format.Percent,
		"months":   monthRange,
	}).ParseFS(templateFiles, "templates/index.html")
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded templates: %v", err))
	}

	h := &handler{
		logger:         logger,
		metrics:        metrics,
		maxRequestSize: opts.MaxRequestSize,
		version:        trimmedVersion,
		defaults:       opts.Defaults,
		now:            opts.Now,
		page:           page,
	}

	mux := http.NewServeMux()

	// Calculator page
	mux.Handle("/", metrics.Instrument("index", http.HandlerFunc(h.handleIndex)))

	// Calculator API, recomputed on every control change
	mux.Handle("/api/calculate", metrics.Instrument("calculate", http.HandlerFunc(h.handleCalculate)))

	// Services section content
	mux.Handle("/api/services", metrics.Instrument("services", http.HandlerFunc(h.handleServices)))
	mux.Handle("/api/services/", metrics.Instrument("service", http.HandlerFunc(h.handleService)))

	// Version endpoint for UI metadata
	mux.Handle("/api/version", metrics.Instrument("version", http.HandlerFunc(h.handleVersion)))

	mux.HandleFunc("/healthz", h.handleHealth)
	mux.Handle("/metrics", metrics.Handler())

	return requestIDMiddleware(loggingMiddleware(logger, corsMiddleware(mux)))
}

type calculateRequest struct {
	Amount   interface{} `json:"amount"`
	Rate     *float64    `json:"rate"`
	Duration *int        `json:"duration"`
	Model    string      `json:"model"`
	Schedule bool        `json:"schedule"`
}

type calculateResponse struct {
	Parameters loans.Parameters    `json:"parameters"`
	Result     loans.Result        `json:"result"`
	Formatted  formattedResult     `json:"formatted"`
	Schedule   []loans.Installment `json:"schedule,omitempty"`
}

type formattedResult struct {
	Principal      string `json:"principal"`
	InterestRate   string `json:"interestRate"`
	MonthlyPayment string `json:"monthlyPayment"`
	TotalPayment   string `json:"totalPayment"`
	TotalInterest  string `json:"totalInterest"`
}

type indexPage struct {
	Parameters loans.Parameters
	Result     loans.Result
	Models     []loans.InterestModel
	Showcase   showcase.Showcase
	Version    string
	Limits     controlLimits
}

type controlLimits struct {
	MinAmount   float64
	MaxAmount   float64
	AmountStep  float64
	MinRate     float64
	MaxRate     float64
	RateStep    float64
	MinDuration int
	MaxDuration int
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	session := calculator.NewSession(h.logger, h.defaults)
	data := indexPage{
		Parameters: session.Parameters(),
		Result:     session.Result(),
		Models:     loans.KnownInterestModels,
		Showcase:   showcase.Catalog(h.now()),
		Version:    h.version,
		Limits: controlLimits{
			MinAmount:   constants.MinLoanAmount,
			MaxAmount:   constants.MaxLoanAmount,
			AmountStep:  constants.LoanAmountStep,
			MinRate:     constants.MinInterestRate,
			MaxRate:     constants.MaxInterestRate,
			RateStep:    constants.InterestRateStep,
			MinDuration: constants.MinDurationMonths,
			MaxDuration: constants.MaxDurationMonths,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error("failed to render calculator page",
			zap.String("op", "server.handleIndex"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	var req calculateRequest
	switch r.Method {
	case http.MethodGet:
		parsed, err := parseQuery(r.URL.Query())
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		req = parsed
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
				return
			}
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
			return
		}
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var model loans.InterestModel
	if req.Model != "" {
		parsed, err := loans.ParseInterestModel(req.Model)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		model = parsed
	}

	session := calculator.NewSession(h.logger, h.defaults)
	unsubscribe := session.Subscribe(func(params loans.Parameters, _ loans.Result) {
		h.metrics.ObserveCalculation(params.Model)
	})
	defer unsubscribe()

	session.Update(func(p *loans.Parameters) {
		switch amount := req.Amount.(type) {
		case nil:
		case float64:
			p.Principal = amount
		case string:
			p.Principal = loans.NormalizePrincipal(amount)
		default:
			p.Principal = constants.DefaultLoanAmount
		}
		if req.Rate != nil {
			p.AnnualRatePercent = *req.Rate
		}
		if req.Duration != nil {
			p.DurationMonths = *req.Duration
		}
		if model != "" {
			p.Model = model
		}
	})

	params := session.Parameters()
	result := session.Result()
	if !mathutil.IsFinite(result.MonthlyPayment) || !mathutil.IsFinite(result.TotalPayment) {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("rate %g is too large to produce a payment", params.AnnualRatePercent), op)
		return
	}

	response := calculateResponse{
		Parameters: params,
		Result:     result,
		Formatted: formattedResult{
			Principal:      format.Currency(result.Principal),
			InterestRate:   format.Percent(params.AnnualRatePercent),
			MonthlyPayment: format.Currency(result.MonthlyPayment),
			TotalPayment:   format.Currency(result.TotalPayment),
			TotalInterest:  format.Currency(result.TotalInterest),
		},
	}
	if req.Schedule {
		response.Schedule = loans.NewScheduleGenerator(h.logger).GenerateSchedule(params)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func parseQuery(query url.Values) (calculateRequest, error) {
	var req calculateRequest

	if query.Has("amount") {
		req.Amount = query.Get("amount")
	}
	if raw := strings.TrimSpace(query.Get("rate")); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || !mathutil.IsFinite(rate) {
			return req, fmt.Errorf("invalid rate %q", raw)
		}
		req.Rate = &rate
	}
	if raw := strings.TrimSpace(query.Get("duration")); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid duration %q", raw)
		}
		req.Duration = &months
	}
	req.Model = query.Get("model")
	req.Schedule = coerceBool(query.Get("schedule"))

	return req, nil
}

func (h *handler) handleServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, showcase.Catalog(h.now()))
}

func (h *handler) handleService(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/services/")
	service, ok := showcase.FindService(slug)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("unknown service %q", slug)})
		return
	}

	h.writeJSON(w, http.StatusOK, service)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func monthRange(from, to int) []int {
	months := make([]int, 0, to-from+1)
	for m := from; m <= to; m++ {
		months = append(months, m)
	}
	return months
}

func coerceBool(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	parsed, err := strconv.ParseBool(trimmed)
	return err == nil && parsed
}
