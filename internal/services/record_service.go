package services

import (
	"context"
	"errors"

	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/repository"
	"github.com/rmacedo/registros-api/internal/statemachine"
	"gorm.io/gorm"
)

// RecordService implements the record contract shared by all three
// entities: create, update, activation toggle, list-all, list-active
// and get-by-id. One generic implementation replaces the per-entity
// copies; only the entity label differs.
type RecordService[M any, PM models.RecordPtr[M]] struct {
	repo   repository.RecordRepository[M, PM]
	audit  *AuditService
	entity string
}

// NewRecordService creates a record service for one entity. audit may
// be nil, in which case mutations are not journaled.
func NewRecordService[M any, PM models.RecordPtr[M]](repo repository.RecordRepository[M, PM], audit *AuditService, entity string) *RecordService[M, PM] {
	return &RecordService[M, PM]{repo: repo, audit: audit, entity: entity}
}

// Create persists a new record stamped with the creating actor. The
// store assigns the identifier and records always start active.
func (s *RecordService[M, PM]) Create(ctx context.Context, rec PM, actor models.Actor) error {
	rec.SetActive(true)
	rec.StampCreated(actor)
	if err := s.repo.Create(ctx, rec); err != nil {
		return err
	}
	s.journal(ctx, actor, models.AuditActionCreate, rec.GetID())
	return nil
}

// Update replaces the client-settable fields wholesale via mutate and
// stamps the updating actor. Active and created_by are untouched. The
// lookup happens before mutate runs, so a missing record fails with
// NotFound even when the request body is invalid.
func (s *RecordService[M, PM]) Update(ctx context.Context, id uint, actor models.Actor, mutate func(PM) error) (PM, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if err := mutate(rec); err != nil {
		return nil, err
	}
	rec.StampUpdated(actor)
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.journal(ctx, actor, models.AuditActionUpdate, rec.GetID())
	return rec, nil
}

// ToggleActive flips the activation flag through the state machine and
// stamps the updating actor.
func (s *RecordService[M, PM]) ToggleActive(ctx context.Context, id uint, actor models.Actor) (PM, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	machine := statemachine.NewActivationFSM(rec)
	if err := machine.Toggle(ctx); err != nil {
		return nil, err
	}

	rec.StampUpdated(actor)
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	action := models.AuditActionDeactivate
	if rec.IsActive() {
		action = models.AuditActionActivate
	}
	s.journal(ctx, actor, action, rec.GetID())
	return rec, nil
}

// ListAll returns every record. An empty result set is a domain
// failure, not an empty 200.
func (s *RecordService[M, PM]) ListAll(ctx context.Context) ([]M, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}
	return recs, nil
}

// ListActive returns records with active = true, with the same
// empty-result policy as ListAll.
func (s *RecordService[M, PM]) ListActive(ctx context.Context) ([]M, error) {
	recs, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}
	return recs, nil
}

// FindByID looks a record up by its identifier.
func (s *RecordService[M, PM]) FindByID(ctx context.Context, id uint) (PM, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return rec, nil
}

// Entity returns the entity label used for audit entries and exports.
func (s *RecordService[M, PM]) Entity() string {
	return s.entity
}

func (s *RecordService[M, PM]) journal(ctx context.Context, actor models.Actor, action string, id uint) {
	if s.audit != nil {
		s.audit.Record(ctx, actor, action, s.entity, id)
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
