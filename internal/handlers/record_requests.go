package handlers

import (
	"errors"
	"time"

	"github.com/rmacedo/registros-api/internal/models"
)

var errFormat = errors.New("formato de exportação inválido")

// Request structs carry the only fields a client may set on a record:
// the entity's foreign key and the free-text document.

type FinancialHistoryRequest struct {
	FinancialID uint   `json:"financial_id" binding:"required"`
	Document    string `json:"document" binding:"required"`
}

func (r *FinancialHistoryRequest) Apply(rec *models.FinancialHistory) {
	rec.FinancialID = r.FinancialID
	rec.Document = r.Document
}

type AssociatedFileRequest struct {
	AssociateID uint   `json:"associate_id" binding:"required"`
	Document    string `json:"document" binding:"required"`
}

func (r *AssociatedFileRequest) Apply(rec *models.AssociatedFile) {
	rec.AssociateID = r.AssociateID
	rec.Document = r.Document
}

type AssociatedHistoryRequest struct {
	HistoryID uint   `json:"history_id" binding:"required"`
	Document  string `json:"document" binding:"required"`
}

func (r *AssociatedHistoryRequest) Apply(rec *models.AssociatedHistory) {
	rec.HistoryID = r.HistoryID
	rec.Document = r.Document
}

// Export row mappings, one per entity. The row builders only differ in
// the foreign key column.

func recordHeaders(foreignKey string) []string {
	return []string{"id", foreignKey, "document", "active", "created_by", "updated_by", "created_at", "updated_at"}
}

func recordRow(foreignKey uint, fields models.RecordFields) []interface{} {
	return []interface{}{
		fields.ID,
		foreignKey,
		fields.Document,
		fields.Active,
		deref(fields.CreatedBy),
		deref(fields.UpdatedBy),
		fields.CreatedAt.Format(time.RFC3339),
		fields.UpdatedAt.Format(time.RFC3339),
	}
}

func financialHistoryRow(rec models.FinancialHistory) []interface{} {
	return recordRow(rec.FinancialID, rec.RecordFields)
}

func associatedFileRow(rec models.AssociatedFile) []interface{} {
	return recordRow(rec.AssociateID, rec.RecordFields)
}

func associatedHistoryRow(rec models.AssociatedHistory) []interface{} {
	return recordRow(rec.HistoryID, rec.RecordFields)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
