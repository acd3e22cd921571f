package services

import (
	"context"
	"testing"
	"time"

	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/repository"
	"github.com/stretchr/testify/assert"
)

type mockAuditRepo struct {
	repository.AuditRepository
	entries         []*models.AuditLog
	mockDeleteOlder func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockAuditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.mockDeleteOlder(ctx, cutoff)
}

func TestAuditService_Record_NamedActor(t *testing.T) {
	mockRepo := &mockAuditRepo{}
	service := NewAuditService(mockRepo, nil)

	service.Record(context.Background(), models.NamedActor("Ana"), models.AuditActionCreate, "FinancialHistory", 7)

	if assert.Len(t, mockRepo.entries, 1) {
		entry := mockRepo.entries[0]
		assert.Equal(t, models.AuditActionCreate, entry.Action)
		assert.Equal(t, "FinancialHistory", entry.Entity)
		assert.Equal(t, uint(7), entry.EntityID)
		if assert.NotNil(t, entry.Actor) {
			assert.Equal(t, "Ana", *entry.Actor)
		}
	}
}

func TestAuditService_Record_AnonymousActorIsNull(t *testing.T) {
	mockRepo := &mockAuditRepo{}
	service := NewAuditService(mockRepo, nil)

	service.Record(context.Background(), models.Anonymous(), models.AuditActionUpdate, "AssociatedFile", 3)

	if assert.Len(t, mockRepo.entries, 1) {
		assert.Nil(t, mockRepo.entries[0].Actor)
	}
}

func TestAuditService_PurgeOlderThan_Cutoff(t *testing.T) {
	mockRepo := &mockAuditRepo{}
	service := NewAuditService(mockRepo, nil)

	var captured time.Time
	mockRepo.mockDeleteOlder = func(ctx context.Context, cutoff time.Time) (int64, error) {
		captured = cutoff
		return 0, nil
	}

	retention := 90 * 24 * time.Hour
	err := service.PurgeOlderThan(context.Background(), retention)

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(-retention), captured, time.Second)
}
