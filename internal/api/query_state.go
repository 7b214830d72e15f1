package api

import (
	"strings"

	"github.com/Iceton3000/cardinal-crm/internal/services"
	"github.com/gofiber/fiber/v2"
)

// parseQueryState reads the filter/sort query parameters, falling back to the
// defaults: all stages, all owners, DNC hidden, next call ascending. A
// toggleSort param applies the header-click rule on top of the submitted
// state, so clients echo their current sort and name the clicked column.
func parseQueryState(c *fiber.Ctx) services.QueryState {
	state := services.DefaultQueryState()

	state.Search = strings.TrimSpace(c.Query("search"))
	if stage := strings.TrimSpace(c.Query("stage")); stage != "" {
		state.Stage = stage
	}
	if owner := strings.TrimSpace(c.Query("owner")); owner != "" {
		state.OwnerFilter = owner
	}
	if hideDNC := c.Query("hideDnc"); hideDNC != "" {
		state.HideDNC = hideDNC != "false" && hideDNC != "0"
	}
	if sortKey := services.SortKey(strings.ToLower(c.Query("sort"))); sortKey == services.SortByCED {
		state.SortKey = sortKey
	}
	if desc := c.Query("desc"); desc == "true" || desc == "1" {
		state.Descending = true
	}
	switch toggled := services.SortKey(strings.ToLower(c.Query("toggleSort"))); toggled {
	case services.SortByNextCall, services.SortByCED:
		state = services.NextSortState(state, toggled)
	}

	return state
}
