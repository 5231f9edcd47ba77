package model

// LicensingState 当前会话的许可与订阅模拟数据
// 每个会话在首次访问时以默认值创建，随会话销毁，不落盘
type LicensingState struct {
	LicenseType      string   `json:"license_type"`
	LicenseValid     bool     `json:"license_valid"`
	LicenseExpiry    string   `json:"license_expiry"` // ISO 日期，格式 YYYY-MM-DD
	Organization     string   `json:"organization"`
	MaxUsers         int      `json:"max_users"`
	CurrentUsers     int      `json:"current_users"`
	MonthlyCredits   int      `json:"monthly_credits"`
	UsedCredits      int      `json:"used_credits"`
	SubscriptionTier string   `json:"subscription_tier"`
	MonthlyCost      float64  `json:"monthly_cost"`
	AutoRenewal      bool     `json:"auto_renewal"`
	FeaturesEnabled  []string `json:"features_enabled"`
}

// NewLicensingState 返回带演示默认值的许可状态
func NewLicensingState() *LicensingState {
	return &LicensingState{
		LicenseType:      "Enterprise",
		LicenseValid:     true,
		LicenseExpiry:    "2025-12-31",
		Organization:     "Global Corp Inc.",
		MaxUsers:         25,
		CurrentUsers:     15,
		MonthlyCredits:   10000,
		UsedCredits:      8500,
		SubscriptionTier: "Enterprise Plus",
		MonthlyCost:      2450.00,
		AutoRenewal:      true,
		FeaturesEnabled: []string{
			"Foundation Data Processing",
			"Employee Data Management",
			"Payroll Data Processing",
			"Advanced Analytics",
			"Custom Reports",
			"API Access",
			"Priority Support",
			"Audit Trail",
			"Encrypted Packaging",
			"Multi-tenant Support",
		},
	}
}

// HasFeature 判断功能是否包含在当前许可中
func (s *LicensingState) HasFeature(name string) bool {
	for _, f := range s.FeaturesEnabled {
		if f == name {
			return true
		}
	}
	return false
}

// FeatureCategory 功能目录中的一个分组
type FeatureCategory struct {
	Category string   `json:"category"`
	Features []string `json:"features"`
}

// FeatureCatalog 固定的功能分类目录
var FeatureCatalog = []FeatureCategory{
	{
		Category: "Core Processing",
		Features: []string{
			"Foundation Data Processing",
			"Employee Data Management",
			"Payroll Data Processing",
		},
	},
	{
		Category: "Advanced Analytics",
		Features: []string{
			"Advanced Analytics",
			"Custom Reports",
			"API Access",
		},
	},
	{
		Category: "Enterprise Features",
		Features: []string{
			"Priority Support",
			"Audit Trail",
			"Encrypted Packaging",
			"Multi-tenant Support",
		},
	},
}
