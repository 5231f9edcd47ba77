package service

import (
	"testing"

	"licensing-subscription-panel/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBillingBreakdown(t *testing.T) {
	lines := BillingBreakdown()
	assert.Len(t, lines, 6)
	assert.Equal(t, "Base Subscription", lines[0].Service)
	assert.Equal(t, float64(1200), lines[0].Cost)

	var total float64
	for _, l := range lines {
		total += l.Cost
		assert.NotEmpty(t, l.Usage)
	}
	assert.Equal(t, float64(2600), total)
}

func TestUsageTrend(t *testing.T) {
	points := UsageTrend()

	// 2024-07-01 至 2024-09-22 共 84 天
	assert.Len(t, points, 84)

	// 首日为周一：基线 200，无衰减
	assert.Equal(t, "2024-07-01", points[0].Date)
	assert.Equal(t, 200, points[0].CreditsUsed)
	assert.Equal(t, 200, points[0].Cumulative)

	// 2024-07-06 为周六：int(275 * 0.6 * (1 + 0.3*5/84)) = 167
	assert.Equal(t, "2024-07-06", points[5].Date)
	assert.Equal(t, 167, points[5].CreditsUsed)

	// 累计值单调不减
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].Cumulative, points[i-1].Cumulative)
		assert.Equal(t, points[i-1].Cumulative+points[i].CreditsUsed, points[i].Cumulative)
	}

	// 序列完全确定
	assert.Equal(t, points, UsageTrend())
}

func TestUsagePercentAndAlert(t *testing.T) {
	tests := []struct {
		name      string
		used      int
		wantPct   float64
		wantAlert string
	}{
		{name: "default", used: 8500, wantPct: 85, wantAlert: "high"},
		{name: "critical", used: 9500, wantPct: 95, wantAlert: "critical"},
		{name: "quiet", used: 5000, wantPct: 50, wantAlert: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := model.NewLicensingState()
			state.UsedCredits = tt.used

			assert.InDelta(t, tt.wantPct, UsagePercent(state), 0.001)
			assert.Equal(t, tt.wantAlert, UsageAlert(state))
		})
	}
}
