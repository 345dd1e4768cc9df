package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestLatestMetricSnapshot(t *testing.T) {
	t1 := time.Date(2025, time.December, 5, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, time.December, 20, 10, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, time.January, 8, 10, 0, 0, 0, time.UTC)

	snapshots := []*MetricSnapshot{
		{PostID: "p1", ObservedAt: t1, Reach: int64Ptr(100)},
		{PostID: "p1", ObservedAt: t2, Reach: int64Ptr(180)},
		{PostID: "p1", ObservedAt: t3, Reach: int64Ptr(250)},
	}

	tests := []struct {
		name     string
		asOf     time.Time
		expected *MetricSnapshot
	}{
		{
			name:     "Corte no fim do mês ignora observações posteriores",
			asOf:     time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: snapshots[1],
		},
		{
			name:     "Corte posterior a todas as observações pega a última",
			asOf:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected: snapshots[2],
		},
		{
			name:     "Corte exatamente na observação a inclui",
			asOf:     t1,
			expected: snapshots[0],
		},
		{
			name:     "Corte anterior a qualquer observação resolve nil",
			asOf:     time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LatestMetricSnapshot(snapshots, tt.asOf)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPostTotalsAdd(t *testing.T) {
	totals := &PostTotals{}

	totals.Add(&MetricSnapshot{
		Reach:     int64Ptr(100),
		Reactions: int64Ptr(10),
		Comments:  int64Ptr(2),
	})

	// Post sem snapshot até o corte conta como post com métricas zero
	totals.Add(nil)

	assert.Equal(t, 2, totals.Posts)
	assert.Equal(t, int64(100), totals.Reach)
	assert.Equal(t, int64(10), totals.Reactions)
	assert.Equal(t, int64(2), totals.Comments)
	assert.Equal(t, int64(0), totals.Impressions)
}

func TestAvailabilityFor(t *testing.T) {
	fb := AvailabilityFor(PlatformFacebook)
	assert.True(t, fb["shares"])
	assert.False(t, fb["saves"])

	ig := AvailabilityFor(PlatformInstagram)
	assert.True(t, ig["saves"])
	assert.False(t, ig["shares"])

	assert.Empty(t, AvailabilityFor(Platform("tiktok")))
}
