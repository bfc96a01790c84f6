package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
)

// FormatUnits renders an inventory list with the sales status of each unit
// when one is known.
func FormatUnits(units []*domain.Unit, sales map[string]*domain.SalesStatus) string {
	headers := []string{"BUILDING", "UNIT", "PLAN", "SQFT", "ADDRESS", "STATUS"}
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		status := Dim("--")
		if st, ok := sales[u.UnitNumber]; ok {
			status = StatusPill(st.StatusLabel, st.StatusColor)
		}
		rows = append(rows, []string{
			u.BuildingID,
			Bold(u.UnitNumber),
			OrDash(u.PlanType),
			formatNumber(u.PlanSF),
			OrDash(u.Address),
			status,
		})
	}
	return RenderTable(headers, rows)
}

func formatNumber(v *float64) string {
	if v == nil {
		return Dim("--")
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func FormatHolidays(items []domain.Holiday) string {
	headers := []string{"DATE", "NAME", "SCOPE"}
	rows := make([][]string, 0, len(items))
	for _, h := range items {
		scope := h.ProjectID
		if scope == "" {
			scope = Dim("all projects")
		}
		rows = append(rows, []string{h.Date, OrDash(h.Name), scope})
	}
	return RenderTable(headers, rows)
}

func FormatSalesStatuses(items []*domain.SalesStatus) string {
	headers := []string{"UNIT", "BUILDING", "STATUS", "DATE"}
	rows := make([][]string, 0, len(items))
	for _, st := range items {
		rows = append(rows, []string{
			Bold(st.ContractUnitNumber),
			OrDash(st.BuildingID),
			StatusPill(st.StatusLabel, st.StatusColor),
			OrDash(st.StatusDate),
		})
	}
	return RenderTable(headers, rows)
}

func FormatResolution(r contract.ProjectResolution) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s → %s\n", r.Input, Bold(r.Canonical)))
	for i, c := range r.Candidates {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, c))
	}
	return b.String()
}

func FormatImportSummary(s *contract.ImportSummary) string {
	return fmt.Sprintf("Imported %d units, %d holidays, %d sales statuses.", s.Units, s.Holidays, s.Sales)
}
