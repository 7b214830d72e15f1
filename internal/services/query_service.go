package services

import (
	"errors"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
	"gorm.io/gorm"
)

type QueryRecordRepository interface {
	List() ([]models.Record, error)
	ReassignOwner(recordIDs []string, ownerID *string) (int64, error)
}

type QueryDNCRepository interface {
	PhoneSet() (map[string]struct{}, error)
}

type QueryUserRepository interface {
	FindByID(userID string) (models.User, error)
}

// QueryService is the repo-backed face of the visibility engine.
type QueryService struct {
	records  QueryRecordRepository
	dnc      QueryDNCRepository
	users    QueryUserRepository
	location *time.Location
}

func NewQueryService(records QueryRecordRepository, dnc QueryDNCRepository, users QueryUserRepository, location *time.Location) *QueryService {
	if location == nil {
		location = time.Local
	}
	return &QueryService{records: records, dnc: dnc, users: users, location: location}
}

func (service *QueryService) loadRecordsAndDNC() ([]models.Record, map[string]struct{}, error) {
	records, err := service.records.List()
	if err != nil {
		return nil, nil, err
	}
	dncSet, err := service.dnc.PhoneSet()
	if err != nil {
		return nil, nil, err
	}
	return records, dncSet, nil
}

func (service *QueryService) VisibleRecords(viewer models.User, state QueryState) ([]models.Record, error) {
	records, dncSet, err := service.loadRecordsAndDNC()
	if err != nil {
		return nil, err
	}
	return VisibleRecords(viewer, records, dncSet, state, service.location), nil
}

func (service *QueryService) DueReminders(viewer models.User, state QueryState, now time.Time) ([]models.Record, error) {
	records, dncSet, err := service.loadRecordsAndDNC()
	if err != nil {
		return nil, err
	}
	return DueReminders(viewer, records, dncSet, state, now, service.location), nil
}

// DuplicatePhones runs over the entire live set, never the filtered view.
func (service *QueryService) DuplicatePhones() (map[string]struct{}, error) {
	records, err := service.records.List()
	if err != nil {
		return nil, err
	}
	return DuplicatePhones(records), nil
}

func (service *QueryService) DNCPhones() (map[string]struct{}, error) {
	return service.dnc.PhoneSet()
}

// BulkReassign repoints every currently-visible record (after role, DNC,
// search, stage and owner filtering) at the target user, or clears the
// assignment when targetOwnerID is nil. The confirmation carries the
// affected count so the caller can show it before committing.
func (service *QueryService) BulkReassign(actor models.User, state QueryState, targetOwnerID *string, confirmed bool) (int64, error) {
	if !CanBulkReassign(&actor) {
		return 0, ErrPermissionDenied
	}

	if targetOwnerID != nil {
		target, err := service.users.FindByID(*targetOwnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, &ValidationError{Message: "target user not found"}
			}
			return 0, err
		}
		if !target.Active {
			return 0, &ValidationError{Message: "target user is inactive"}
		}
	}

	visible, err := service.VisibleRecords(actor, state)
	if err != nil {
		return 0, err
	}
	if len(visible) == 0 {
		return 0, nil
	}

	if !confirmed {
		return 0, &ConfirmationRequiredError{Action: ActionBulkReassign, Affected: len(visible)}
	}

	recordIDs := make([]string, 0, len(visible))
	for _, record := range visible {
		recordIDs = append(recordIDs, record.ID)
	}
	return service.records.ReassignOwner(recordIDs, targetOwnerID)
}
