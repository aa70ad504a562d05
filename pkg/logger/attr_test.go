package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcheck/pkg/logger"
	"github.com/dmitrymomot/idcheck/pkg/validator"
)

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestRuleAttrs(t *testing.T) {
	assert.Equal(t, slog.String("rule", "vin_strict"), logger.Rule("vin_strict"))
	assert.Equal(t, slog.String("rule_type", "vin"), logger.RuleType("vin"))
	assert.Equal(t, slog.String("component", "httpapi"), logger.Component("httpapi"))

	kind := logger.Kind(validator.KindVINInvalidCn)
	assert.Equal(t, "kind", kind.Key)
	assert.Equal(t, "vinInvalidCn", kind.Value.String())
	assert.True(t, logger.Kind(validator.Valid().Kind).Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(1500 * time.Microsecond)
	assert.Equal(t, "duration_ms", attr.Key)
	assert.InDelta(t, 1.5, attr.Value.Float64(), 0.0001)
}
