package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/idcheck/pkg/clientip"
	"github.com/dmitrymomot/idcheck/pkg/httpserver"
	"github.com/dmitrymomot/idcheck/pkg/i18n"
	"github.com/dmitrymomot/idcheck/pkg/logger"
	"github.com/dmitrymomot/idcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/idcheck/pkg/ruleset"
	"github.com/dmitrymomot/idcheck/pkg/validator"
)

const defaultMaxBodySize = 1 << 20

// Handler exposes a rule set over HTTP.
type Handler struct {
	rules       *ruleset.Set
	log         *slog.Logger
	maxBodySize int64
	checks      []httpserver.Check
	translator  *i18n.Translator
	limiter     *ratelimiter.Bucket
	ipHeaders   []string
	router      chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for request and validation logs.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBodySize limits request bodies to n bytes.
func WithMaxBodySize(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodySize: size must be > 0")
	}
	return func(h *Handler) { h.maxBodySize = n }
}

// WithTranslator localises outcome messages into the request language
// negotiated by i18n.Middleware.
func WithTranslator(t *i18n.Translator) Option {
	return func(h *Handler) { h.translator = t }
}

// WithRateLimit throttles the validation endpoints per client address.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(h *Handler) { h.limiter = b }
}

// WithClientIPHeaders sets the proxy headers trusted to carry the client
// address. A single empty string trusts RemoteAddr only.
func WithClientIPHeaders(headers ...string) Option {
	return func(h *Handler) { h.ipHeaders = headers }
}

// WithReadinessChecks adds checks to the /health endpoint.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

// New returns a Handler serving rules.
func New(rules *ruleset.Set, opts ...Option) *Handler {
	h := &Handler{
		rules:       rules,
		log:         slog.New(slog.DiscardHandler),
		maxBodySize: defaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.checks = append([]httpserver.Check{{Name: "ruleset", Fn: h.rulesetLoaded}}, h.checks...)
	h.router = h.routes()
	return h
}

// Router returns the chi router, ready to be mounted:
//
//	GET  /health
//	GET  /rules
//	POST /rules/{name}/validate
//	POST /validate
func (h *Handler) Router() chi.Router { return h.router }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID, clientip.Middleware(h.ipHeaders...), middleware.Recoverer, h.logRequests)
	if h.translator != nil {
		r.Use(i18n.Middleware(h.translator))
	}

	r.Get("/health", httpserver.HealthCheckHandler(h.log, h.checks...))
	r.Get("/rules", h.listRules)

	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimiter.Middleware(h.limiter, clientKey,
				ratelimiter.WithDeniedHandler(h.rateLimited),
				ratelimiter.WithErrorHandler(h.fail),
			))
		}
		r.Post("/rules/{name}/validate", h.validateRule)
		r.Post("/validate", h.validateFields)
	})

	return r
}

type ruleInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *Handler) listRules(w http.ResponseWriter, _ *http.Request) {
	rules := h.rules.Rules()
	out := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		out = append(out, ruleInfo{Name: rule.Name, Type: rule.Type})
	}
	writeData(w, out, map[string]any{"total": len(out)})
}

func (h *Handler) validateRule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rule, err := h.rules.Get(name)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var body map[string]any
	if err := h.decode(w, r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	raw, ok := body["value"]
	if !ok {
		h.fail(w, r, fmt.Errorf("%w: missing \"value\"", ErrMalformedBody))
		return
	}

	outcome := rule.Validator.Validate(validator.ValueOf(raw))
	h.log.DebugContext(r.Context(), "value validated",
		logger.Rule(rule.Name),
		logger.RuleType(rule.Type),
		logger.Kind(outcome.Kind),
	)
	writeData(w, outcomeResponse(outcome, h.translate(r)), nil)
}

type fieldRequest struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value any    `json:"value"`
}

type batchRequest struct {
	Fields []fieldRequest `json:"fields"`
}

// validateFields checks several values at once. Every rule is resolved before
// anything is validated; failures are reported per field with status 422.
func (h *Handler) validateFields(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if len(req.Fields) == 0 {
		h.fail(w, r, fmt.Errorf("%w: no fields", ErrMalformedBody))
		return
	}

	checks := make([]validator.Rule, 0, len(req.Fields))
	for i, f := range req.Fields {
		if f.Field == "" {
			h.fail(w, r, fmt.Errorf("%w: fields[%d] has no name", ErrMalformedBody, i))
			return
		}
		rule, err := h.rules.Get(f.Rule)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		checks = append(checks, validator.Check(f.Field, rule.Validator, validator.ValueOf(f.Value)))
	}

	if err := validator.Apply(checks...); err != nil {
		h.fail(w, r, err)
		return
	}
	writeData(w, OutcomeResponse{Valid: true}, nil)
}

// decode reads a single JSON document into v. Numbers are kept as json.Number
// so integers survive without float rounding.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errors.Join(ErrBodyTooLarge, err)
		}
		return errors.Join(ErrMalformedBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON document", ErrMalformedBody)
	}
	return nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorStatus(err, h.translate(r))
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	if status == http.StatusUnprocessableEntity {
		level = slog.LevelDebug
	}
	h.log.Log(r.Context(), level, "request failed",
		slog.Int("status", status),
		slog.String("code", detail.Code),
		logger.Error(err),
	)
	writeJSON(w, status, Envelope{Error: detail})
}

func clientKey(r *http.Request) string {
	return clientip.GetIPFromContext(r.Context())
}

func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request, res ratelimiter.Result) {
	h.fail(w, r, fmt.Errorf("%w: retry after %s", ErrRateLimited, res.RetryAfter.Round(time.Second)))
}

func (h *Handler) translate(r *http.Request) translateFunc {
	if h.translator == nil {
		return untranslated
	}
	lang := i18n.GetLocale(r.Context())
	return func(key, def string, vars map[string]any) string {
		return h.translator.Td(lang, key, def, vars)
	}
}

func (h *Handler) rulesetLoaded(context.Context) error {
	if h.rules == nil || len(h.rules.Names()) == 0 {
		return errors.New("no rules loaded")
	}
	return nil
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}
