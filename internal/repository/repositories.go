package repository

import (
	"github.com/rmacedo/registros-api/internal/models"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User                UserRepository
	AuditLogs           AuditRepository
	FinancialHistories  RecordRepository[models.FinancialHistory, *models.FinancialHistory]
	AssociatedFiles     RecordRepository[models.AssociatedFile, *models.AssociatedFile]
	AssociatedHistories RecordRepository[models.AssociatedHistory, *models.AssociatedHistory]
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:                NewUserRepository(db),
		AuditLogs:           NewAuditRepository(db),
		FinancialHistories:  NewRecordRepository[models.FinancialHistory](db),
		AssociatedFiles:     NewRecordRepository[models.AssociatedFile](db),
		AssociatedHistories: NewRecordRepository[models.AssociatedHistory](db),
	}
}
