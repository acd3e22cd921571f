package handlers

import (
	"github.com/rmacedo/registros-api/internal/jobs"
	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health            *HealthHandler
	Auth              *AuthHandler
	Audit             *AuditHandler
	FinancialHistory  *RecordHandler[models.FinancialHistory, *models.FinancialHistory]
	AssociatedFile    *RecordHandler[models.AssociatedFile, *models.AssociatedFile]
	AssociatedHistory *RecordHandler[models.AssociatedHistory, *models.AssociatedHistory]
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, worker *jobs.Worker) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(worker),
		Auth:   NewAuthHandler(svcs.Auth),
		Audit:  NewAuditHandler(svcs.Audit),
		FinancialHistory: NewRecordHandler(
			svcs.FinancialHistories,
			svcs.Export,
			bindRecordRequest[FinancialHistoryRequest, *models.FinancialHistory]("financial_history"),
			recordHeaders("financial_id"),
			financialHistoryRow,
		),
		AssociatedFile: NewRecordHandler(
			svcs.AssociatedFiles,
			svcs.Export,
			bindRecordRequest[AssociatedFileRequest, *models.AssociatedFile]("associated_file"),
			recordHeaders("associate_id"),
			associatedFileRow,
		),
		AssociatedHistory: NewRecordHandler(
			svcs.AssociatedHistories,
			svcs.Export,
			bindRecordRequest[AssociatedHistoryRequest, *models.AssociatedHistory]("associated_history"),
			recordHeaders("history_id"),
			associatedHistoryRow,
		),
	}
}
