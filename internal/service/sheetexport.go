package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"licensing-subscription-panel/internal/model"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Exporter 许可快照的外部导出器
// 启动时在真实实现与空实现之间二选一，调用方不做运行期探测
type Exporter interface {
	Enabled() bool
	ExportSnapshot(packageName string, state *model.LicensingState) error
}

// NullExporter 关闭导出时的空实现
type NullExporter struct{}

func (NullExporter) Enabled() bool { return false }

func (NullExporter) ExportSnapshot(string, *model.LicensingState) error { return nil }

// SheetExporter 将许可快照追加到 Google Sheet
type SheetExporter struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewExporter 按配置构建导出器，未启用时返回空实现
func NewExporter(enable bool, credentialPath, spreadsheetID, sheetName string) (Exporter, error) {
	if !enable {
		return NullExporter{}, nil
	}

	ctx := context.Background()

	// 读取服务账号凭证
	b, err := os.ReadFile(credentialPath)
	if err != nil {
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("无法加载凭证: %v", err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, err
	}

	return &SheetExporter{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func (e *SheetExporter) Enabled() bool { return true }

// ExportSnapshot 追加一行许可快照，失败只记录日志，由调用方决定是否忽略
func (e *SheetExporter) ExportSnapshot(packageName string, state *model.LicensingState) error {
	if e == nil {
		return nil
	}

	values := [][]interface{}{{
		packageName,
		state.LicenseType,
		state.LicenseExpiry,
		state.Organization,
		state.SubscriptionTier,
		state.MonthlyCredits - state.UsedCredits,
		time.Now().Format(time.RFC3339),
	}}

	_, err := e.service.Spreadsheets.Values.Append(
		e.spreadsheetID,
		e.sheetName+"!A2:G",
		&sheets.ValueRange{Values: values},
	).ValueInputOption("USER_ENTERED").Do()

	if err != nil {
		log.Printf("同步许可快照到Google Sheet失败: %v", err)
		return fmt.Errorf("同步许可快照到Google Sheet失败: %v", err)
	}

	log.Printf("成功同步包 %s 的许可快照到Google Sheet", packageName)
	return nil
}
