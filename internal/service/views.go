package service

import (
	"fmt"
	"time"

	"licensing-subscription-panel/internal/model"
	"licensing-subscription-panel/internal/page"
)

// 各页面的视图负载，对应原面板的五个页面

// MainView 主页：子系统状态总览与告警
type MainView struct {
	Page      string                        `json:"page"`
	Systems   map[string]model.SystemStatus `json:"systems"`
	Licensing model.LicensingStatus         `json:"licensing"`
	Warnings  []string                      `json:"warnings"`
}

// FeatureFlag 功能及其是否包含在当前许可中
type FeatureFlag struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// FeatureGroup 按分类分组的功能清单
type FeatureGroup struct {
	Category string        `json:"category"`
	Features []FeatureFlag `json:"features"`
}

// LicenseDetailsView 许可详情页
type LicenseDetailsView struct {
	Page           string         `json:"page"`
	LicenseType    string         `json:"license_type"`
	Organization   string         `json:"organization"`
	ValidUntil     string         `json:"valid_until"`
	MaxUsers       int            `json:"max_users"`
	MonthlyCredits int            `json:"monthly_credits"`
	DaysRemaining  int            `json:"days_remaining"`
	Health         string         `json:"health"` // ok / expiring / expired
	Features       []FeatureGroup `json:"features"`
}

// BillingView 账单与用量页
type BillingView struct {
	Page         string                  `json:"page"`
	MonthlyTotal float64                 `json:"monthly_total"`
	NextBillDate string                  `json:"next_bill_date"`
	Payment      string                  `json:"payment_method"`
	UsagePercent float64                 `json:"usage_percent"`
	UsageAlert   string                  `json:"usage_alert,omitempty"`
	Breakdown    []model.BillingLine     `json:"breakdown"`
	Trend        []model.DailyUsagePoint `json:"trend"`
}

// PackagingView 打包页：按默认全选模块给出的估算
type PackagingView struct {
	Page            string `json:"page"`
	EstimatedSizeMB int    `json:"estimated_size_mb"`
	Components      int    `json:"components"`
	SecurityLevel   string `json:"security_level"`
}

// PlanEntry 套餐目录中的一项，附当前套餐标记
type PlanEntry struct {
	model.Plan
	Current bool `json:"current"`
}

// ConfigurationView 订阅配置页
type ConfigurationView struct {
	Page        string      `json:"page"`
	Plans       []PlanEntry `json:"plans"`
	AutoRenewal bool        `json:"auto_renewal"`
}

// UnavailableView 许可模块不可用时详情页的降级负载
type UnavailableView struct {
	Page            string   `json:"page"`
	Error           string   `json:"error"`
	Troubleshooting []string `json:"troubleshooting"`
}

// DiagnosticView 未声明页面状态的诊断负载，替代原实现的静默不渲染
type DiagnosticView struct {
	Page       string `json:"page"`
	Error      string `json:"error"`
	Diagnostic string `json:"diagnostic"`
}

// viewBuilders 页面到渲染例程的完备分发表，覆盖全部已声明页面
var viewBuilders = map[page.Page]func(state *model.LicensingState, sys LicensingSystem) interface{}{
	page.PageMain:           buildMainView,
	page.PageLicenseDetails: buildLicenseDetailsView,
	page.PageBilling:        buildBillingView,
	page.PagePackaging:      buildPackagingView,
	page.PageConfiguration:  buildConfigurationView,
}

// RenderPage 渲染指定页面；未声明的页面返回诊断负载而不是空输出
func RenderPage(p page.Page, state *model.LicensingState, sys LicensingSystem) interface{} {
	build, ok := viewBuilders[p]
	if !ok {
		return DiagnosticView{
			Page:       string(p),
			Error:      "未声明的页面状态",
			Diagnostic: fmt.Sprintf("页面 %q 没有对应的渲染例程，已声明页面: main, license_details, billing, packaging, configuration", p),
		}
	}

	// 许可模块不可用时，详情页统一降级为排障提示，main 仍正常渲染
	if p.IsDetail() && !SafeStatus(sys, state).Available {
		return unavailableView(p)
	}

	return build(state, sys)
}

// RenderCurrent 渲染路由器指向的当前页面
func RenderCurrent(r *page.Router, state *model.LicensingState, sys LicensingSystem) interface{} {
	return RenderPage(r.Current(), state, sys)
}

func buildMainView(state *model.LicensingState, sys LicensingSystem) interface{} {
	status := SafeStatus(sys, state)

	var warnings []string
	if status.Available {
		if !status.LicenseValid {
			warnings = append(warnings, "许可已过期或无效，请联系支持")
		} else if status.CreditsRemaining < 500 {
			warnings = append(warnings, "处理额度不足，请考虑升级套餐")
		}
	}

	return MainView{
		Page:      string(page.PageMain),
		Systems:   CheckAllSystems(sys, state),
		Licensing: status,
		Warnings:  warnings,
	}
}

func buildLicenseDetailsView(state *model.LicensingState, _ LicensingSystem) interface{} {
	days := daysRemaining(state.LicenseExpiry)

	health := "expired"
	switch {
	case days > 30:
		health = "ok"
	case days > 0:
		health = "expiring"
	}

	groups := make([]FeatureGroup, 0, len(model.FeatureCatalog))
	for _, cat := range model.FeatureCatalog {
		flags := make([]FeatureFlag, 0, len(cat.Features))
		for _, f := range cat.Features {
			flags = append(flags, FeatureFlag{Name: f, Included: state.HasFeature(f)})
		}
		groups = append(groups, FeatureGroup{Category: cat.Category, Features: flags})
	}

	return LicenseDetailsView{
		Page:           string(page.PageLicenseDetails),
		LicenseType:    state.LicenseType,
		Organization:   state.Organization,
		ValidUntil:     state.LicenseExpiry,
		MaxUsers:       state.MaxUsers,
		MonthlyCredits: state.MonthlyCredits,
		DaysRemaining:  days,
		Health:         health,
		Features:       groups,
	}
}

func buildBillingView(state *model.LicensingState, _ LicensingSystem) interface{} {
	return BillingView{
		Page:         string(page.PageBilling),
		MonthlyTotal: state.MonthlyCost,
		NextBillDate: nextBill,
		Payment:      paymentCard,
		UsagePercent: UsagePercent(state),
		UsageAlert:   UsageAlert(state),
		Breakdown:    BillingBreakdown(),
		Trend:        UsageTrend(),
	}
}

func buildPackagingView(_ *model.LicensingState, _ LicensingSystem) interface{} {
	allModules := model.ModuleFlags{Foundation: true, Employee: true, Payroll: true}
	return PackagingView{
		Page:            string(page.PagePackaging),
		EstimatedSizeMB: EstimateSizeMB(allModules),
		Components:      ComponentCount(allModules),
		SecurityLevel:   "High",
	}
}

func buildConfigurationView(state *model.LicensingState, _ LicensingSystem) interface{} {
	plans := make([]PlanEntry, 0, len(model.PlanCatalog))
	for _, p := range model.PlanCatalog {
		plans = append(plans, PlanEntry{Plan: p, Current: p.Name == state.SubscriptionTier})
	}

	return ConfigurationView{
		Page:        string(page.PageConfiguration),
		Plans:       plans,
		AutoRenewal: state.AutoRenewal,
	}
}

func unavailableView(p page.Page) UnavailableView {
	return UnavailableView{
		Page:  string(p),
		Error: "许可模块不可用",
		Troubleshooting: []string{
			"确认许可模块已随服务一同部署",
			"检查依赖组件是否全部安装",
			"核对启动配置中的许可模块开关",
		},
	}
}

// daysRemaining 距许可到期的天数，到期日格式错误时视为已过期
func daysRemaining(expiry string) int {
	until, err := time.Parse("2006-01-02", expiry)
	if err != nil {
		return 0
	}
	return int(until.Sub(now()).Hours() / 24)
}
