package model

// ModuleFlags 打包时的模块选择
type ModuleFlags struct {
	Foundation bool `json:"foundation_module"`
	Employee   bool `json:"employee_module"`
	Payroll    bool `json:"payroll_module"`
}

// SecurityBlock 包描述中的安全信息
// 注意：签名与加密级别为固定占位值，并非对包内容实际计算所得
type SecurityBlock struct {
	Encrypted       bool   `json:"encrypted"`
	Signature       string `json:"signature"`
	EncryptionLevel string `json:"encryption_level"`
}

// LicenseSnapshot 生成时刻的许可摘要
type LicenseSnapshot struct {
	Type         string `json:"type"`
	ValidUntil   string `json:"valid_until"`
	Organization string `json:"organization"`
}

// PackageContents 演示包的内容描述，生成后不可变，仅用于序列化下载
type PackageContents struct {
	PackageName string          `json:"package_name"`
	Version     string          `json:"version"`
	GeneratedAt string          `json:"generated_at"`
	Components  ModuleFlags     `json:"components"`
	Security    SecurityBlock   `json:"security"`
	License     LicenseSnapshot `json:"license"`
}

// PackageInfo 清单头部的包标识
type PackageInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	LicenseType string `json:"license_type"`
}

// SystemRequirements 清单中的运行环境要求，全部为固定展示值
type SystemRequirements struct {
	Runtime      string   `json:"runtime"`
	Memory       string   `json:"memory"`
	Storage      string   `json:"storage"`
	Dependencies []string `json:"dependencies"`
}

// PackageManifest 包清单，生成后不可变
type PackageManifest struct {
	PackageInfo        PackageInfo        `json:"package_info"`
	SystemRequirements SystemRequirements `json:"system_requirements"`
	Features           []string           `json:"features"`
	Checksum           string             `json:"checksum"`
}

// ValidationCheck 校验清单中的一项检查结果
type ValidationCheck struct {
	Name   string `json:"name"`
	Result string `json:"result"`
}
