package models

import (
	"time"
)

// Record is implemented by every auditable record entity.
type Record interface {
	GetID() uint
	IsActive() bool
	SetActive(active bool)
	StampCreated(actor Actor)
	StampUpdated(actor Actor)
}

// RecordPtr constrains a pointer to an entity struct satisfying Record.
// Repositories and services use it to instantiate entities generically.
type RecordPtr[M any] interface {
	*M
	Record
}

// RecordFields is the column set shared by all record entities. The
// surrogate ID is assigned by the store on create and never changes;
// Active is only mutated through the activation toggle.
type RecordFields struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Document  string    `gorm:"type:text;not null" json:"document"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedBy *string   `json:"created_by"`
	UpdatedBy *string   `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *RecordFields) GetID() uint {
	return r.ID
}

func (r *RecordFields) IsActive() bool {
	return r.Active
}

func (r *RecordFields) SetActive(active bool) {
	r.Active = active
}

// StampCreated records the creating actor once. Anonymous creations
// leave created_by absent.
func (r *RecordFields) StampCreated(actor Actor) {
	if name, ok := actor.Name(); ok {
		r.CreatedBy = &name
	}
}

// StampUpdated records the updating actor, overwriting with an explicit
// null when no session is present.
func (r *RecordFields) StampUpdated(actor Actor) {
	if name, ok := actor.Name(); ok {
		r.UpdatedBy = &name
		return
	}
	r.UpdatedBy = nil
}

// FinancialHistory is a record attached to a member's financial account
type FinancialHistory struct {
	RecordFields
	FinancialID uint `gorm:"not null;index" json:"financial_id"`
}

// TableName specifies the table name for FinancialHistory
func (FinancialHistory) TableName() string {
	return "financial_histories"
}

// AssociatedFile is a file record attached to a member ("associado")
type AssociatedFile struct {
	RecordFields
	AssociateID uint `gorm:"not null;index" json:"associate_id"`
}

// TableName specifies the table name for AssociatedFile
func (AssociatedFile) TableName() string {
	return "associated_files"
}

// AssociatedHistory is a history entry attached to a member
type AssociatedHistory struct {
	RecordFields
	HistoryID uint `gorm:"not null;index" json:"history_id"`
}

// TableName specifies the table name for AssociatedHistory
func (AssociatedHistory) TableName() string {
	return "associated_histories"
}
