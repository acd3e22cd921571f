package services

import (
	"context"
	"time"

	"github.com/rmacedo/registros-api/internal/jobs"
	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/repository"
	"github.com/rmacedo/registros-api/pkg/logger"
)

// AuditService journals record mutations. Writes go through the
// background worker when one is configured, so journaling never adds
// latency to the request that triggered it.
type AuditService struct {
	repo   repository.AuditRepository
	worker *jobs.Worker
}

func NewAuditService(repo repository.AuditRepository, worker *jobs.Worker) *AuditService {
	return &AuditService{repo: repo, worker: worker}
}

// Record journals a mutation. Audit failures are logged but never fail
// the request that triggered them.
func (s *AuditService) Record(ctx context.Context, actor models.Actor, action, entity string, entityID uint) {
	entry := &models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if name, ok := actor.Name(); ok {
		entry.Actor = &name
	}

	if s.worker != nil {
		s.worker.Enqueue(func(jobCtx context.Context) error {
			return s.repo.Create(jobCtx, entry)
		})
		return
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to write audit entry", "entity", entity, "action", action, "error", err)
	}
}

// List retrieves audit entries, newest first
func (s *AuditService) List(ctx context.Context, limit, offset int) ([]models.AuditLog, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

// PurgeOlderThan deletes audit entries older than the retention window.
func (s *AuditService) PurgeOlderThan(ctx context.Context, retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	purged, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		logger.Info("Purged audit entries", "count", purged, "cutoff", cutoff)
	}
	return nil
}
