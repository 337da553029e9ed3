package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/gw-twitter/internal/logger"
)

func TestLogQuery_SingleLineWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	logQuery("SELECT id\n\t\tFROM users\n\t\tWHERE id = $1", []any{"u1"}, nil, errors.New("boom"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "query", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "SELECT id FROM users WHERE id = $1", fields["query"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields, "args")
}
