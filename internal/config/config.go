package config

import (
	"os"
	"strconv"
	"time"
)

// Config 启动配置，全部来自环境变量并带演示默认值
type Config struct {
	ListenAddr string

	// 许可模块开关，关闭后相关页面渲染降级提示
	LicensingAvailable bool

	// 打包/校验前的模拟延迟，0 表示关闭
	SimulatedLatency time.Duration

	// Google Sheet 导出
	SheetSyncEnabled bool
	CredentialPath   string
	SpreadsheetID    string
	SheetName        string

	JWTSecret string
}

func Load() Config {
	return Config{
		ListenAddr:         getenv("LISTEN_ADDR", ":8080"),
		LicensingAvailable: getbool("LICENSING_AVAILABLE", true),
		SimulatedLatency:   time.Duration(getint("SIMULATED_LATENCY_MS", 0)) * time.Millisecond,
		SheetSyncEnabled:   getbool("SHEET_SYNC_ENABLED", false),
		CredentialPath:     getenv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		SpreadsheetID:      getenv("SPREADSHEET_ID", ""),
		SheetName:          getenv("SHEET_NAME", "licenses"),
		JWTSecret:          getenv("JWT_SECRET", ""),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
