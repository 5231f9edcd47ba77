package service

import (
	"encoding/json"
	"testing"
	"time"

	"licensing-subscription-panel/internal/model"

	"github.com/stretchr/testify/assert"
)

// 固定时钟，测试结束后自动恢复
func freezeClock(t *testing.T) {
	t.Helper()
	frozen := time.Date(2024, 9, 22, 10, 30, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return frozen }
	t.Cleanup(func() { now = orig })
}

// 时钟冻结时，相同输入必须产生字节级一致的负载
func TestGeneratePackageDeterministic(t *testing.T) {
	freezeClock(t)

	state := model.NewLicensingState()
	flags := model.ModuleFlags{Foundation: true, Employee: true, Payroll: false}

	first, err := json.MarshalIndent(GeneratePackage("SAP_Migration_Suite_v2.1", flags, state), "", "  ")
	assert.NoError(t, err)
	second, err := json.MarshalIndent(GeneratePackage("SAP_Migration_Suite_v2.1", flags, state), "", "  ")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePackageContents(t *testing.T) {
	freezeClock(t)

	state := model.NewLicensingState()
	flags := model.ModuleFlags{Foundation: true, Employee: true, Payroll: false}

	got := GeneratePackage("demo_pkg", flags, state)

	assert.Equal(t, "demo_pkg", got.PackageName)
	assert.Equal(t, "2.1.0", got.Version)
	assert.Equal(t, "2024-09-22T10:30:00Z", got.GeneratedAt)

	// 模块开关原样进入包描述
	assert.True(t, got.Components.Foundation)
	assert.True(t, got.Components.Employee)
	assert.False(t, got.Components.Payroll)

	// 安全块为固定占位值
	assert.True(t, got.Security.Encrypted)
	assert.Equal(t, "SHA256:abc123...", got.Security.Signature)
	assert.Equal(t, "AES-256", got.Security.EncryptionLevel)

	// 许可摘要来自会话状态
	assert.Equal(t, "Enterprise", got.License.Type)
	assert.Equal(t, "2025-12-31", got.License.ValidUntil)
	assert.Equal(t, "Global Corp Inc.", got.License.Organization)
}

func TestGenerateManifest(t *testing.T) {
	freezeClock(t)

	state := model.NewLicensingState()
	got := GenerateManifest("demo_pkg", state)

	assert.Equal(t, "demo_pkg", got.PackageInfo.Name)
	assert.Equal(t, "2.1.0", got.PackageInfo.Version)
	assert.Equal(t, "Enterprise", got.PackageInfo.LicenseType)
	assert.Equal(t, state.FeaturesEnabled, got.Features)
	assert.Equal(t, "sha256:demo_checksum_value", got.Checksum)
	assert.NotEmpty(t, got.SystemRequirements.Dependencies)
}

func TestEstimateSizeMB(t *testing.T) {
	tests := []struct {
		name  string
		flags model.ModuleFlags
		want  int
	}{
		{name: "none", flags: model.ModuleFlags{}, want: 50},
		{name: "foundation_only", flags: model.ModuleFlags{Foundation: true}, want: 75},
		// foundation + employee，payroll 不计入
		{name: "foundation_employee", flags: model.ModuleFlags{Foundation: true, Employee: true}, want: 105},
		{name: "all", flags: model.ModuleFlags{Foundation: true, Employee: true, Payroll: true}, want: 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateSizeMB(tt.flags))
		})
	}
}

func TestComponentCount(t *testing.T) {
	assert.Equal(t, 0, ComponentCount(model.ModuleFlags{}))
	assert.Equal(t, 2, ComponentCount(model.ModuleFlags{Foundation: true, Employee: true}))
	assert.Equal(t, 3, ComponentCount(model.ModuleFlags{Foundation: true, Employee: true, Payroll: true}))
}

// 校验清单恒为六项固定检查，顺序稳定且结果非空
func TestValidatePackageChecklist(t *testing.T) {
	state := model.NewLicensingState()

	wantNames := []string{
		"Digital Signature",
		"Encryption",
		"Dependencies",
		"License",
		"Checksum",
		"Module Integrity",
	}

	checks := ValidatePackage(state)
	assert.Len(t, checks, 6)
	for i, check := range checks {
		assert.Equal(t, wantNames[i], check.Name)
		assert.NotEmpty(t, check.Result)
	}

	// 重复调用顺序与内容不变
	assert.Equal(t, checks, ValidatePackage(state))
}
