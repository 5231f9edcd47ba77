package service

import (
	"log"

	"licensing-subscription-panel/internal/model"
)

// Status 许可状态聚合，纯函数
// credits_remaining 不做下限截断，超额使用时为负数
func Status(state *model.LicensingState) model.LicensingStatus {
	return model.LicensingStatus{
		Available:        true,
		LicenseValid:     state.LicenseValid,
		SubscriptionTier: state.SubscriptionTier,
		CreditsRemaining: state.MonthlyCredits - state.UsedCredits,
		UsersActive:      state.CurrentUsers,
	}
}

// LicensingSystem 许可子系统接口
// 启动时选择真实实现或不可用实现，替代运行期的存在性探测
type LicensingSystem interface {
	Status(state *model.LicensingState) model.LicensingStatus
}

type liveLicensingSystem struct{}

func (liveLicensingSystem) Status(state *model.LicensingState) model.LicensingStatus {
	return Status(state)
}

type unavailableLicensingSystem struct{}

func (unavailableLicensingSystem) Status(_ *model.LicensingState) model.LicensingStatus {
	return model.LicensingStatus{Available: false}
}

// SelectLicensingSystem 按启动配置选择实现
func SelectLicensingSystem(available bool) LicensingSystem {
	if available {
		return liveLicensingSystem{}
	}
	return unavailableLicensingSystem{}
}

// SafeStatus 计算许可状态，任何 panic 都降级为不可用而不是传播
func SafeStatus(sys LicensingSystem, state *model.LicensingState) (status model.LicensingStatus) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("许可状态计算失败，降级为不可用: %v", r)
			status = model.LicensingStatus{Available: false}
		}
	}()
	return sys.Status(state)
}

// CheckAllSystems 汇总各子系统在线状态
// foundation/employee/payroll 在演示环境中固定在线
func CheckAllSystems(sys LicensingSystem, state *model.LicensingState) map[string]model.SystemStatus {
	return map[string]model.SystemStatus{
		"foundation": {Available: true},
		"employee":   {Available: true},
		"payroll":    {Available: true},
		"licensing":  {Available: SafeStatus(sys, state).Available},
	}
}
