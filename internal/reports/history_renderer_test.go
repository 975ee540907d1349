package reports

import (
	"bytes"
	"testing"
	"time"

	"log-baseline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRenderer_Render(t *testing.T) {
	t.Parallel()

	records := []models.HistoryRecord{
		{
			RunID:       "01JB000000000000000000000B",
			Environment: "prod",
			MetricName:  "los_504",
			Category:    models.DayBusiness,
			Total:       120,
			DayCount:    10,
			Average:     12,
			RecordedAt:  time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC),
		},
		{
			RunID:       "01JA000000000000000000000A",
			Environment: "prod",
			MetricName:  "los_504",
			Category:    models.DayWeekend,
			Total:       9,
			DayCount:    4,
			Average:     2,
			RecordedAt:  time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewHistoryRenderer().Render(&buf, records))

	out := buf.String()
	for _, want := range []string{"recorded", "average", "2026-10-19 15:00", "01JB000000000000000000000B", "business", "weekend", "120"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("01JB")), bytes.Index(buf.Bytes(), []byte("01JA")))
}

func TestHistoryRenderer_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewHistoryRenderer().Render(&buf, nil))
	assert.Equal(t, "no history recorded\n", buf.String())
}
