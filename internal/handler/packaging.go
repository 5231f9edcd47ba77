package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"licensing-subscription-panel/internal/model"
	"licensing-subscription-panel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// 默认包名，与演示面板的预填值一致
const defaultPackageName = "SAP_Migration_Suite_v2.1"

// PackageInput 打包请求
// 加密与部署相关字段仅用于展示，不会进入清单内容，只随审计记录保存
type PackageInput struct {
	PackageName       string `json:"package_name"`
	IncludeFoundation bool   `json:"include_foundation"`
	IncludeEmployee   bool   `json:"include_employee"`
	IncludePayroll    bool   `json:"include_payroll"`
	EncryptPackage    bool   `json:"encrypt_package"`
	DigitalSignature  bool   `json:"digital_signature"`
	AuditTrail        bool   `json:"audit_trail"`
	EncryptionLevel   string `json:"encryption_level"`
	DeploymentTarget  string `json:"deployment_target"`
}

// HandleGeneratePackage 生成演示包内容描述并作为附件下发
func HandleGeneratePackage(c *fiber.Ctx) error {
	input := new(PackageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}
	if input.PackageName == "" {
		input.PackageName = defaultPackageName
	}

	// 模拟打包耗时，仅影响演示体验
	if simulatedLatency > 0 {
		time.Sleep(simulatedLatency)
	}

	sess := currentSession(c)
	flags := model.ModuleFlags{
		Foundation: input.IncludeFoundation,
		Employee:   input.IncludeEmployee,
		Payroll:    input.IncludePayroll,
	}

	contents := service.GeneratePackage(input.PackageName, flags, sess.State)

	payload, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "序列化包描述失败",
		})
	}

	if err := service.LogOperation(optionalUserID(c), sess.ID, "generate_package", input.PackageName, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "写入审计记录失败",
		})
	}

	if exporter.Enabled() {
		go exporter.ExportSnapshot(input.PackageName, sess.State)
	}

	return sendManifestFile(c, input.PackageName, payload)
}

// HandleGenerateManifest 生成包清单并作为附件下发
func HandleGenerateManifest(c *fiber.Ctx) error {
	type ManifestInput struct {
		PackageName string `json:"package_name"`
	}

	input := new(ManifestInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}
	if input.PackageName == "" {
		input.PackageName = defaultPackageName
	}

	sess := currentSession(c)
	manifest := service.GenerateManifest(input.PackageName, sess.State)

	payload, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "序列化清单失败",
		})
	}

	if err := service.LogOperation(optionalUserID(c), sess.ID, "generate_manifest", input.PackageName, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "写入审计记录失败",
		})
	}

	if exporter.Enabled() {
		go exporter.ExportSnapshot(input.PackageName, sess.State)
	}

	return sendManifestFile(c, input.PackageName, payload)
}

// HandleValidatePackage 运行固定的六项校验清单（恒通过的演示桩）
func HandleValidatePackage(c *fiber.Ctx) error {
	if simulatedLatency > 0 {
		time.Sleep(simulatedLatency)
	}

	sess := currentSession(c)
	checks := service.ValidatePackage(sess.State)

	if err := service.LogOperation(optionalUserID(c), sess.ID, "validate_package", "", checks); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "写入审计记录失败",
		})
	}

	return c.JSON(fiber.Map{
		"checks": checks,
	})
}

// 下发 JSON 附件，文件名与原面板的下载命名保持一致
func sendManifestFile(c *fiber.Ctx, packageName string, payload []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_manifest.json"`, packageName))
	return c.Send(payload)
}

// 已认证请求取令牌中的用户ID，匿名演示会话记为 0
func optionalUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
