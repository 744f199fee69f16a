package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jrhy/bst"
)

func TestZapReceivesTreeTracing(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tree := bst.NewOrdered[int, string](&bst.Options[string]{
		Logger: NewZap(zap.New(core)),
		Debug:  true,
	})
	tree.Put(2, "two")
	tree.Put(1, "one")
	tree.Put(3, "three")
	tree.Delete(2)

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	require.Equal(t, "inserting", entries[0].Message)
	require.Equal(t, int64(2), entries[0].ContextMap()["key"])
	require.Equal(t, "deleting", entries[3].Message)
	require.Equal(t, "replacing key with predecessor", entries[4].Message)
	require.Equal(t, int64(1), entries[4].ContextMap()["predecessor"])
}

func TestZapLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core))
	l.Info("i", "a", 1)
	l.Warn("w")
	l.Error("e", "b", "x")
	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	require.Equal(t, "x", entries[2].ContextMap()["b"])
}
