package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAccountGrowth(t *testing.T) {
	day := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    *FollowerSnapshot
		end      *FollowerSnapshot
		expected *AccountGrowth
	}{
		{
			name:  "Conta com histórico nos dois limites",
			start: &FollowerSnapshot{AccountID: "acc-1", FollowerCount: 1000, SnapshotDate: day.AddDate(0, -1, 0)},
			end:   &FollowerSnapshot{AccountID: "acc-1", FollowerCount: 1050, SnapshotDate: day},
			expected: &AccountGrowth{
				AccountID:      "acc-1",
				Platform:       PlatformFacebook,
				StartFollowers: 1000,
				EndFollowers:   1050,
				NetChange:      50,
				PercentChange:  5.0,
				HasPrevData:    true,
			},
		},
		{
			name:  "Conta nova sem histórico anterior - variação zero com flag desligada",
			start: nil,
			end:   &FollowerSnapshot{AccountID: "acc-1", FollowerCount: 300, SnapshotDate: day},
			expected: &AccountGrowth{
				AccountID:      "acc-1",
				Platform:       PlatformFacebook,
				StartFollowers: 300,
				EndFollowers:   300,
				NetChange:      0,
				PercentChange:  0,
				HasPrevData:    false,
			},
		},
		{
			name:  "Valor anterior zero é dado válido",
			start: &FollowerSnapshot{AccountID: "acc-1", FollowerCount: 0, SnapshotDate: day.AddDate(0, -1, 0)},
			end:   &FollowerSnapshot{AccountID: "acc-1", FollowerCount: 40, SnapshotDate: day},
			expected: &AccountGrowth{
				AccountID:      "acc-1",
				Platform:       PlatformFacebook,
				StartFollowers: 0,
				EndFollowers:   40,
				NetChange:      40,
				PercentChange:  0,
				HasPrevData:    true,
			},
		},
		{
			name:  "Conta sem nenhuma observação",
			start: nil,
			end:   nil,
			expected: &AccountGrowth{
				AccountID:   "acc-1",
				Platform:    PlatformFacebook,
				HasPrevData: false,
			},
		},
		{
			name:  "Perda de seguidores produz variação negativa",
			start: &FollowerSnapshot{AccountID: "acc-1", FollowerCount: 200, SnapshotDate: day.AddDate(0, -1, 0)},
			end:   &FollowerSnapshot{AccountID: "acc-1", FollowerCount: 150, SnapshotDate: day},
			expected: &AccountGrowth{
				AccountID:      "acc-1",
				Platform:       PlatformFacebook,
				StartFollowers: 200,
				EndFollowers:   150,
				NetChange:      -50,
				PercentChange:  -25.0,
				HasPrevData:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateAccountGrowth("acc-1", PlatformFacebook, tt.start, tt.end)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCombineGrowth(t *testing.T) {
	items := []*AccountGrowth{
		{StartFollowers: 1000, EndFollowers: 1100, NetChange: 100, HasPrevData: true},
		{StartFollowers: 500, EndFollowers: 450, NetChange: -50, HasPrevData: true},
		{StartFollowers: 200, EndFollowers: 200, NetChange: 0, HasPrevData: false},
		nil,
	}

	totals := CombineGrowth(items)

	assert.Equal(t, int64(1700), totals.StartFollowers)
	assert.Equal(t, int64(1750), totals.EndFollowers)
	assert.Equal(t, int64(50), totals.NetChange)
	assert.Equal(t, 2.94, totals.PercentChange)
	// Cobertura parcial ainda conta como histórico disponível
	assert.True(t, totals.HasPrevData)
}

func TestCombineGrowthVazio(t *testing.T) {
	totals := CombineGrowth(nil)

	assert.Equal(t, int64(0), totals.NetChange)
	assert.Equal(t, 0.0, totals.PercentChange)
	assert.False(t, totals.HasPrevData)
}
