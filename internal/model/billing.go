package model

// BillingLine 月度账单中的一项费用
type BillingLine struct {
	Service string  `json:"service"`
	Cost    float64 `json:"cost"`
	Usage   string  `json:"usage"`
}

// DailyUsagePoint 每日用量趋势中的一个点
type DailyUsagePoint struct {
	Date        string `json:"date"` // YYYY-MM-DD
	CreditsUsed int    `json:"credits_used"`
	Cumulative  int    `json:"cumulative"`
}
