package world

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"slay/resource"
)

func testTable(t *testing.T) *resource.Table {
	t.Helper()
	table, err := resource.LoadEmbedded()
	require.NoError(t, err)
	return table
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// commit adds an entity straight away, outside any queue.
func commit(t *testing.T, s *Store, p *Physics, intent *Entity, placement Placement) (Handle, *Entity) {
	t.Helper()
	h, err := Commit(s, p, intent)
	require.NoError(t, err)
	Finalize(s, p, h, placement)
	return h, intent
}
