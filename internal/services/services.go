package services

import (
	"github.com/rmacedo/registros-api/internal/config"
	"github.com/rmacedo/registros-api/internal/jobs"
	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Auth                *AuthService
	Audit               *AuditService
	Export              *ExportService
	FinancialHistories  *RecordService[models.FinancialHistory, *models.FinancialHistory]
	AssociatedFiles     *RecordService[models.AssociatedFile, *models.AssociatedFile]
	AssociatedHistories *RecordService[models.AssociatedHistory, *models.AssociatedHistory]
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, cfg *config.Config) *Services {
	auditSvc := NewAuditService(repos.AuditLogs, worker)

	return &Services{
		Auth:                NewAuthService(repos.User, cfg),
		Audit:               auditSvc,
		Export:              NewExportService(),
		FinancialHistories:  NewRecordService(repos.FinancialHistories, auditSvc, "FinancialHistory"),
		AssociatedFiles:     NewRecordService(repos.AssociatedFiles, auditSvc, "AssociatedFile"),
		AssociatedHistories: NewRecordService(repos.AssociatedHistories, auditSvc, "AssociatedHistory"),
	}
}
