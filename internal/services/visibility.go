package services

import (
	"sort"
	"strings"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

type SortKey string

const (
	SortByNextCall SortKey = "nextcall"
	SortByCED      SortKey = "ced"
)

const (
	OwnerFilterAll        = "All"
	OwnerFilterUnassigned = "Unassigned"
	StageFilterAll        = "All"
)

// QueryState is the collaborator-owned filter/sort state the engine applies.
type QueryState struct {
	Search      string
	Stage       string
	OwnerFilter string
	HideDNC     bool
	SortKey     SortKey
	Descending  bool
}

func DefaultQueryState() QueryState {
	return QueryState{
		Stage:       StageFilterAll,
		OwnerFilter: OwnerFilterAll,
		HideDNC:     true,
		SortKey:     SortByNextCall,
	}
}

// NextSortState applies the header-click rule: selecting a new key resets to
// ascending, re-selecting the current key flips direction.
func NextSortState(current QueryState, selected SortKey) QueryState {
	if current.SortKey != selected {
		current.SortKey = selected
		current.Descending = false
		return current
	}
	current.Descending = !current.Descending
	return current
}

// VisibleRecords produces the role-scoped, DNC-suppressed, searched,
// stage-filtered and sorted list a viewer may see. Agents see only records
// they own; unowned records are invisible to them. Admins see everything,
// optionally narrowed by an explicit owner filter (including "Unassigned").
func VisibleRecords(viewer models.User, records []models.Record, dncSet map[string]struct{}, state QueryState, location *time.Location) []models.Record {
	query := strings.ToLower(strings.TrimSpace(state.Search))

	visible := make([]models.Record, 0, len(records))
	for _, record := range records {
		if !recordVisibleToViewer(viewer, record, state.OwnerFilter) {
			continue
		}
		if state.HideDNC {
			if _, listed := dncSet[NormalizePhone(record.Phone)]; listed {
				continue
			}
		}
		if query != "" && !recordMatchesSearch(record, query) {
			continue
		}
		if state.Stage != "" && state.Stage != StageFilterAll && record.Stage != state.Stage {
			continue
		}
		visible = append(visible, record)
	}

	sortRecords(visible, state.SortKey, state.Descending, location)
	return visible
}

func recordVisibleToViewer(viewer models.User, record models.Record, ownerFilter string) bool {
	if !IsAdminUser(&viewer) {
		return record.OwnerID != nil && *record.OwnerID == viewer.ID
	}
	switch ownerFilter {
	case "", OwnerFilterAll:
		return true
	case OwnerFilterUnassigned:
		return record.OwnerID == nil
	default:
		return record.OwnerID != nil && *record.OwnerID == ownerFilter
	}
}

func recordMatchesSearch(record models.Record, loweredQuery string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		record.Company,
		record.Contact,
		record.Phone,
		record.Email,
		record.Supplier,
		record.MPANCore,
		record.MPRN,
	}, " "))
	return strings.Contains(haystack, loweredQuery)
}

// sortRecords orders by the chosen key's instant. Records without a parsable
// instant always sort last, in both directions.
func sortRecords(records []models.Record, key SortKey, descending bool, location *time.Location) {
	sort.SliceStable(records, func(left int, right int) bool {
		leftInstant, leftOK := recordSortInstant(records[left], key, location)
		rightInstant, rightOK := recordSortInstant(records[right], key, location)

		if leftOK != rightOK {
			return leftOK
		}
		if !leftOK {
			return false
		}
		if descending {
			return rightInstant.Before(leftInstant)
		}
		return leftInstant.Before(rightInstant)
	})
}

func recordSortInstant(record models.Record, key SortKey, location *time.Location) (time.Time, bool) {
	if key == SortByCED {
		return CombineCallInstant(record.CED, "", location)
	}
	return CombineCallInstant(record.NextCallDate, record.NextCallTime, location)
}
