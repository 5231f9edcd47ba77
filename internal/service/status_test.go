package service

import (
	"testing"

	"licensing-subscription-panel/internal/model"

	"github.com/stretchr/testify/assert"
)

// 相同状态下重复调用的结果必须完全一致
func TestStatusIsPure(t *testing.T) {
	state := model.NewLicensingState()

	first := Status(state)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Status(state))
	}
}

func TestStatusCreditsRemaining(t *testing.T) {
	tests := []struct {
		name    string
		monthly int
		used    int
		want    int
	}{
		{name: "normal", monthly: 10000, used: 8500, want: 1500},
		{name: "exhausted", monthly: 10000, used: 10000, want: 0},
		// 超额使用不做截断，结果为负数
		{name: "overdrawn", monthly: 10000, used: 10500, want: -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := model.NewLicensingState()
			state.MonthlyCredits = tt.monthly
			state.UsedCredits = tt.used

			got := Status(state)
			assert.Equal(t, tt.want, got.CreditsRemaining)
			assert.True(t, got.Available)
		})
	}
}

func TestStatusFields(t *testing.T) {
	state := model.NewLicensingState()
	got := Status(state)

	assert.True(t, got.LicenseValid)
	assert.Equal(t, "Enterprise Plus", got.SubscriptionTier)
	assert.Equal(t, 15, got.UsersActive)
	assert.Equal(t, 1500, got.CreditsRemaining)
}

func TestSelectLicensingSystem(t *testing.T) {
	state := model.NewLicensingState()

	live := SelectLicensingSystem(true)
	assert.True(t, live.Status(state).Available)

	down := SelectLicensingSystem(false)
	assert.False(t, down.Status(state).Available)
}

type panickingSystem struct{}

func (panickingSystem) Status(_ *model.LicensingState) model.LicensingStatus {
	panic("boom")
}

// 状态计算中的 panic 必须降级为不可用，而不是向上传播
func TestSafeStatusRecovers(t *testing.T) {
	state := model.NewLicensingState()

	got := SafeStatus(panickingSystem{}, state)
	assert.False(t, got.Available)
}

func TestCheckAllSystems(t *testing.T) {
	state := model.NewLicensingState()

	systems := CheckAllSystems(SelectLicensingSystem(true), state)
	assert.Len(t, systems, 4)
	for _, name := range []string{"foundation", "employee", "payroll", "licensing"} {
		assert.True(t, systems[name].Available, name)
	}

	degraded := CheckAllSystems(SelectLicensingSystem(false), state)
	assert.True(t, degraded["foundation"].Available)
	assert.False(t, degraded["licensing"].Available)
}
