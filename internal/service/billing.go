package service

import (
	"time"

	"licensing-subscription-panel/internal/model"
)

// 用量趋势的固定采样区间与基线参数，全部为演示数据
const (
	trendStart  = "2024-07-01"
	trendEnd    = "2024-09-22"
	trendBase   = 200
	nextBill    = "Oct 1, 2024"
	paymentCard = "•••• 4567"
)

// BillingBreakdown 月度费用构成，固定演示数据
func BillingBreakdown() []model.BillingLine {
	return []model.BillingLine{
		{Service: "Base Subscription", Cost: 1200, Usage: "100%"},
		{Service: "Processing Credits", Cost: 850, Usage: "85%"},
		{Service: "Premium Support", Cost: 300, Usage: "100%"},
		{Service: "API Calls", Cost: 75, Usage: "45%"},
		{Service: "Storage", Cost: 25, Usage: "12%"},
		{Service: "Additional Users", Cost: 150, Usage: "60%"},
	}
}

// UsageTrend 生成确定性的每日用量序列：
// 基线 200 + (i%30)*15，周末系数 0.6，季节系数 1 + 0.3*i/n
func UsageTrend() []model.DailyUsagePoint {
	start, _ := time.Parse("2006-01-02", trendStart)
	end, _ := time.Parse("2006-01-02", trendEnd)

	days := int(end.Sub(start).Hours()/24) + 1
	points := make([]model.DailyUsagePoint, 0, days)

	cumulative := 0
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		base := float64(trendBase + (i%30)*15)
		weekend := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend = 0.6
		}
		seasonal := 1 + 0.3*float64(i)/float64(days)

		usage := int(base * weekend * seasonal)
		cumulative += usage

		points = append(points, model.DailyUsagePoint{
			Date:        date.Format("2006-01-02"),
			CreditsUsed: usage,
			Cumulative:  cumulative,
		})
	}

	return points
}

// UsagePercent 本月额度使用百分比
func UsagePercent(state *model.LicensingState) float64 {
	if state.MonthlyCredits == 0 {
		return 0
	}
	return float64(state.UsedCredits) / float64(state.MonthlyCredits) * 100
}

// UsageAlert 按使用率给出告警级别：>90 critical，>75 high，否则为空
func UsageAlert(state *model.LicensingState) string {
	pct := UsagePercent(state)
	switch {
	case pct > 90:
		return "critical"
	case pct > 75:
		return "high"
	}
	return ""
}
