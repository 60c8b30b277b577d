package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockAcquireRelease(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".lockDir")
	lock, err := db.Acquire(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, lock.Release())

	// Re-acquiring after release succeeds immediately.
	lock2, err := db.Acquire(context.Background(), dir)
	require.NoError(t, err)
	assert.NoError(t, lock2.Release())
}

func TestLockBusyTimesOut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".lockDir")
	holder, err := db.Acquire(context.Background(), dir)
	require.NoError(t, err)
	defer holder.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = db.Acquire(ctx, dir)
	assert.Error(t, err)
}
