package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/rollout-api/pkg/timeutil"
)

func TestFormatDate_ConvierteABrasilia(t *testing.T) {
	// 01:00 UTC del 2 de marzo es todavía 1 de marzo en Brasilia (UTC-3).
	utc := time.Date(2025, 3, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/03/2025", timeutil.FormatDate(utc))
}

func TestFormatDateTime(t *testing.T) {
	utc := time.Date(2025, 3, 10, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, "10/03/2025 11:30:45", timeutil.FormatDateTime(utc))
}

func TestFileTimestamp_SinCaracteresInvalidos(t *testing.T) {
	utc := time.Date(2025, 3, 10, 14, 30, 45, 0, time.UTC)
	out := timeutil.FileTimestamp(utc)
	assert.Equal(t, "2025-03-10T11-30-45", out)
	assert.NotContains(t, out, ":")
}
