package model

// LicensingStatus 许可子系统的聚合状态
type LicensingStatus struct {
	Available        bool   `json:"available"`
	LicenseValid     bool   `json:"license_valid"`
	SubscriptionTier string `json:"subscription_tier"`
	CreditsRemaining int    `json:"credits_remaining"`
	UsersActive      int    `json:"users_active"`
}

// SystemStatus 单个子系统的在线状态
type SystemStatus struct {
	Available bool `json:"available"`
}
