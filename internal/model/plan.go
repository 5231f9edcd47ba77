package model

// Plan 订阅套餐
type Plan struct {
	Name           string  `json:"name"`
	MonthlyPrice   float64 `json:"monthly_price"`
	MonthlyCredits int     `json:"monthly_credits"`
	MaxUsers       int     `json:"max_users"` // UnlimitedUsers 为 true 时忽略
	UnlimitedUsers bool    `json:"unlimited_users"`
	Features       string  `json:"features"`
}

// PlanCatalog 固定的套餐目录，顺序即展示顺序
var PlanCatalog = []Plan{
	{
		Name:           "Starter",
		MonthlyPrice:   500,
		MonthlyCredits: 2500,
		MaxUsers:       5,
		Features:       "Basic migration tools, email support",
	},
	{
		Name:           "Professional",
		MonthlyPrice:   1200,
		MonthlyCredits: 6000,
		MaxUsers:       15,
		Features:       "Advanced analytics, priority support, API access",
	},
	{
		Name:           "Enterprise",
		MonthlyPrice:   2450,
		MonthlyCredits: 10000,
		MaxUsers:       25,
		Features:       "All features, 24/7 support, custom integrations",
	},
	{
		Name:           "Enterprise Plus",
		MonthlyPrice:   4500,
		MonthlyCredits: 25000,
		UnlimitedUsers: true,
		Features:       "White label, on-premise, dedicated support",
	},
}

// FindPlan 按名称查找套餐
func FindPlan(name string) (Plan, bool) {
	for _, p := range PlanCatalog {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}
