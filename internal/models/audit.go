package models

import (
	"time"
)

// AuditLog represents a system audit entry
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     *string   `gorm:"size:255" json:"actor"` // display name, null when anonymous
	Action    string    `gorm:"size:50;not null" json:"action"` // CREATE, UPDATE, ACTIVATE, DEACTIVATE
	Entity    string    `gorm:"size:50;not null" json:"entity"` // FinancialHistory, AssociatedFile, AssociatedHistory
	EntityID  uint      `json:"entity_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action constants
const (
	AuditActionCreate     = "CREATE"
	AuditActionUpdate     = "UPDATE"
	AuditActionActivate   = "ACTIVATE"
	AuditActionDeactivate = "DEACTIVATE"
)
