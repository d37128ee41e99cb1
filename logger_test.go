package hypergo

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypergo/model"
)

func TestLoggerFields(t *testing.T) {
	t.Run("GenerateCompleted", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.WithDimension(3).LogGenerate(context.Background(), 10, nil)

		out := buf.String()
		assert.Contains(t, out, `"msg":"generate completed"`)
		assert.Contains(t, out, `"dimension":3`)
		assert.Contains(t, out, `"count":10`)
	})

	t.Run("GenerateFailed", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.WithDimension(2).WithCount(5).LogGenerate(context.Background(), 5, errors.New("boom"))

		out := buf.String()
		assert.Contains(t, out, `"msg":"generate failed"`)
		assert.Contains(t, out, `"dimension":2`)
		assert.Contains(t, out, `"error":"boom"`)
	})

	t.Run("Noop", func(t *testing.T) {
		NoopLogger().WithDimension(4).WithCount(1).LogGenerate(context.Background(), 1, nil)
	})
}

func TestProviderLogsGenerate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := New(WithLogger(logger))

	graph := &model.Graph{Nodes: []model.Vector{{0.1, 0.2}, {0.3, 0.4}}}
	_, err := p.GenerateEmbeddings(context.Background(), graph)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"generate completed"`)
	assert.Contains(t, out, `"dimension":2`)
	assert.Contains(t, out, `"count":2`)
}
