package model

import "time"

// OperationLog 操作审计记录（打包、清单生成、配置变更等）
type OperationLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id"` // 0 表示未登录的演示会话
	SessionID string    `json:"session_id" gorm:"index"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
