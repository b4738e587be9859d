package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

func TestMemoryLogger_RecordsInOrder(t *testing.T) {
	logger := NewMemoryLogger()
	logger.Log(zocbuild.SeverityWarning, "first")
	logger.Log(zocbuild.SeverityError, "second")

	logs := logger.Diagnostics()
	require.Len(t, logs, 2)
	assert.Equal(t, zocbuild.Diagnostic{Severity: zocbuild.SeverityWarning, Message: "first"}, logs[0])
	assert.Equal(t, zocbuild.Diagnostic{Severity: zocbuild.SeverityError, Message: "second"}, logs[1])

	assert.Equal(t, 1, logger.Count(zocbuild.SeverityWarning))
	assert.Equal(t, 0, logger.Count(zocbuild.SeverityInfo))

	logs[0].Message = "mutated"
	assert.Equal(t, "first", logger.Diagnostics()[0].Message, "Diagnostics must return a copy")

	logger.Reset()
	assert.Empty(t, logger.Diagnostics())
}

func TestMemoryLogger_ConcurrentSafety(t *testing.T) {
	logger := NewMemoryLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Log(zocbuild.SeverityWarning, "w")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, logger.Count(zocbuild.SeverityWarning))
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Log(zocbuild.SeverityError, "discarded")
		}()
	}

	// Should complete without panic
	wg.Wait()
}

func TestTee_FansOut(t *testing.T) {
	a, b := NewMemoryLogger(), NewMemoryLogger()
	tee := Tee{a, NewNullLogger(), b}

	tee.Log(zocbuild.SeverityWarning, "both")

	assert.Len(t, a.Diagnostics(), 1)
	assert.Len(t, b.Diagnostics(), 1)
}
