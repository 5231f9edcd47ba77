package service

import (
	"fmt"
	"time"

	"licensing-subscription-panel/internal/model"
)

// 测试中可替换的时钟
var now = time.Now

const (
	packageVersion = "2.1.0"

	// 包体积估算常量（MB），仅用于展示，并非实际测量
	baseSizeMB       = 50
	foundationSizeMB = 25
	employeeSizeMB   = 30
	payrollSizeMB    = 20

	// 固定占位的安全字段，未对任何字节流做真实计算
	demoSignature       = "SHA256:abc123..."
	demoEncryptionLevel = "AES-256"
	demoChecksum        = "sha256:demo_checksum_value"
)

// GeneratePackage 生成演示包的内容描述
// 除时间戳外对相同输入完全确定；安全块为固定占位值
func GeneratePackage(name string, flags model.ModuleFlags, state *model.LicensingState) model.PackageContents {
	return model.PackageContents{
		PackageName: name,
		Version:     packageVersion,
		GeneratedAt: now().Format(time.RFC3339),
		Components:  flags,
		Security: model.SecurityBlock{
			Encrypted:       true,
			Signature:       demoSignature,
			EncryptionLevel: demoEncryptionLevel,
		},
		License: model.LicenseSnapshot{
			Type:         state.LicenseType,
			ValidUntil:   state.LicenseExpiry,
			Organization: state.Organization,
		},
	}
}

// GenerateManifest 生成包清单，环境要求为固定展示值
func GenerateManifest(name string, state *model.LicensingState) model.PackageManifest {
	return model.PackageManifest{
		PackageInfo: model.PackageInfo{
			Name:        name,
			Version:     packageVersion,
			BuildDate:   now().Format(time.RFC3339),
			LicenseType: state.LicenseType,
		},
		SystemRequirements: model.SystemRequirements{
			Runtime:      "go1.23+",
			Memory:       "4GB RAM minimum",
			Storage:      "500MB available space",
			Dependencies: []string{"fiber/v2>=2.52.0", "gorm>=1.25.0", "sqlite>=1.11.0"},
		},
		Features: state.FeaturesEnabled,
		Checksum: demoChecksum,
	}
}

// EstimateSizeMB 估算包体积：基础体积加上被选中模块的固定体积
func EstimateSizeMB(flags model.ModuleFlags) int {
	total := baseSizeMB
	if flags.Foundation {
		total += foundationSizeMB
	}
	if flags.Employee {
		total += employeeSizeMB
	}
	if flags.Payroll {
		total += payrollSizeMB
	}
	return total
}

// ComponentCount 被选中的模块数量
func ComponentCount(flags model.ModuleFlags) int {
	count := 0
	for _, on := range []bool{flags.Foundation, flags.Employee, flags.Payroll} {
		if on {
			count++
		}
	}
	return count
}

// ValidatePackage 包完整性校验清单
// 显式的恒通过桩：六项检查全部返回固定的成功结果，
// 没有任何真实的签名、摘要或依赖验证发生
func ValidatePackage(state *model.LicensingState) []model.ValidationCheck {
	return []model.ValidationCheck{
		{Name: "Digital Signature", Result: "Valid"},
		{Name: "Encryption", Result: demoEncryptionLevel + " confirmed"},
		{Name: "Dependencies", Result: "All satisfied"},
		{Name: "License", Result: fmt.Sprintf("Valid until %s", state.LicenseExpiry)},
		{Name: "Checksum", Result: "Verified"},
		{Name: "Module Integrity", Result: "All modules intact"},
	}
}
