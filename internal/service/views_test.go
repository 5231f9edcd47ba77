package service

import (
	"testing"

	"licensing-subscription-panel/internal/model"
	"licensing-subscription-panel/internal/page"

	"github.com/stretchr/testify/assert"
)

// 所有已声明页面都必须产出非空且页面专属的视图
func TestRenderPageTotality(t *testing.T) {
	freezeClock(t)

	state := model.NewLicensingState()
	sys := SelectLicensingSystem(true)

	pages := append([]page.Page{page.PageMain}, page.DetailPages...)
	for _, p := range pages {
		t.Run(string(p), func(t *testing.T) {
			view := RenderPage(p, state, sys)
			assert.NotNil(t, view)
			assert.IsNotType(t, DiagnosticView{}, view)
		})
	}
}

// 未声明的页面返回诊断负载，而不是静默不渲染
func TestRenderPageUnknown(t *testing.T) {
	state := model.NewLicensingState()
	sys := SelectLicensingSystem(true)

	view := RenderPage(page.Page("bogus"), state, sys)
	diag, ok := view.(DiagnosticView)
	assert.True(t, ok)
	assert.Equal(t, "bogus", diag.Page)
	assert.NotEmpty(t, diag.Error)
	assert.NotEmpty(t, diag.Diagnostic)
}

func TestRenderMainView(t *testing.T) {
	state := model.NewLicensingState()

	view := RenderPage(page.PageMain, state, SelectLicensingSystem(true))
	main, ok := view.(MainView)
	assert.True(t, ok)
	assert.True(t, main.Licensing.Available)
	assert.Empty(t, main.Warnings)
	assert.Len(t, main.Systems, 4)
}

func TestRenderMainViewWarnings(t *testing.T) {
	t.Run("low_credits", func(t *testing.T) {
		state := model.NewLicensingState()
		state.UsedCredits = 9800 // 剩余 200 < 500

		main := RenderPage(page.PageMain, state, SelectLicensingSystem(true)).(MainView)
		assert.Len(t, main.Warnings, 1)
	})

	t.Run("invalid_license", func(t *testing.T) {
		state := model.NewLicensingState()
		state.LicenseValid = false

		main := RenderPage(page.PageMain, state, SelectLicensingSystem(true)).(MainView)
		assert.Len(t, main.Warnings, 1)
	})
}

func TestRenderLicenseDetails(t *testing.T) {
	freezeClock(t) // 2024-09-22，距 2025-12-31 远超 30 天

	state := model.NewLicensingState()
	view := RenderPage(page.PageLicenseDetails, state, SelectLicensingSystem(true))

	details, ok := view.(LicenseDetailsView)
	assert.True(t, ok)
	assert.Equal(t, "ok", details.Health)
	assert.Greater(t, details.DaysRemaining, 30)
	assert.Len(t, details.Features, 3)

	// 默认许可包含目录中的全部功能
	for _, group := range details.Features {
		for _, f := range group.Features {
			assert.True(t, f.Included, f.Name)
		}
	}
}

func TestRenderConfigurationView(t *testing.T) {
	state := model.NewLicensingState()
	view := RenderPage(page.PageConfiguration, state, SelectLicensingSystem(true))

	cfg, ok := view.(ConfigurationView)
	assert.True(t, ok)
	assert.Len(t, cfg.Plans, 4)
	assert.True(t, cfg.AutoRenewal)

	current := 0
	for _, p := range cfg.Plans {
		if p.Current {
			current++
			assert.Equal(t, "Enterprise Plus", p.Name)
		}
	}
	assert.Equal(t, 1, current)
}

// 许可模块不可用时：main 正常渲染并标记不可用，详情页降级为排障提示
func TestRenderDegraded(t *testing.T) {
	state := model.NewLicensingState()
	down := SelectLicensingSystem(false)

	main, ok := RenderPage(page.PageMain, state, down).(MainView)
	assert.True(t, ok)
	assert.False(t, main.Licensing.Available)
	assert.False(t, main.Systems["licensing"].Available)
	assert.True(t, main.Systems["foundation"].Available)

	for _, p := range page.DetailPages {
		view := RenderPage(p, state, down)
		degraded, ok := view.(UnavailableView)
		assert.True(t, ok, string(p))
		assert.NotEmpty(t, degraded.Troubleshooting)
	}
}

func TestRenderCurrentFollowsRouter(t *testing.T) {
	state := model.NewLicensingState()
	sys := SelectLicensingSystem(true)
	r := page.NewRouter()

	_, isMain := RenderCurrent(r, state, sys).(MainView)
	assert.True(t, isMain)

	assert.NoError(t, r.Navigate(page.PageBilling))
	_, isBilling := RenderCurrent(r, state, sys).(BillingView)
	assert.True(t, isBilling)
}
