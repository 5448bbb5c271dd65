package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type tracedProduct struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&tracedProduct{}))
	return db
}

func findAttr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := DefaultDBTracingConfig()

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, RegisterDBTracing(db, DefaultDBTracingConfig(), zap.NewNop()))
	assert.Nil(t, db.Callback().Create().Get("otel_timing:after_create"))
}

func TestRegisterDBTracing_Enabled(t *testing.T) {
	db := setupTestDB(t)
	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	cfg.DBSystem = "sqlite"

	require.NoError(t, RegisterDBTracing(db, cfg, zap.NewNop()))
	assert.NotNil(t, db.Callback().Create().Get("otel_timing:after_create"))
	assert.NotNil(t, db.Callback().Raw().Get("otel_timing:before_raw"))
}

func TestSpanAnnotator(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	db := setupTestDB(t)
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:before", markQueryStart))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:after", spanAnnotator(0)))

	ctx, span := tp.Tracer("test").Start(context.Background(), "insert")
	require.NoError(t, db.WithContext(ctx).Create(&tracedProduct{Name: "Sugar 1kg"}).Error)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := spans[0].Attributes()

	rows, ok := findAttr(attrs, "db.rows_affected")
	require.True(t, ok)
	assert.Equal(t, int64(1), rows.AsInt64())

	slow, ok := findAttr(attrs, "db.slow_query")
	require.True(t, ok, "zero threshold marks every query as slow")
	assert.True(t, slow.AsBool())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestSpanAnnotator_RecordsErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	db := setupTestDB(t)
	require.NoError(t, db.Callback().Raw().After("gorm:raw").Register("test:after", spanAnnotator(time.Hour)))

	ctx, span := tp.Tracer("test").Start(context.Background(), "broken")
	err := db.WithContext(ctx).Exec("INSERT INTO missing_table VALUES (1)").Error
	require.Error(t, err)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	_, slow := findAttr(spans[0].Attributes(), "db.slow_query")
	assert.False(t, slow)
}
