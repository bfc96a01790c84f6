package formatter

import (
	"fmt"
	"strings"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/schedule"
)

// FormatRows renders resolved milestone rows. GAP is the number of business
// days since the previous dated row.
func FormatRows(rows []domain.ResolvedRow, holidays domain.HolidaySet) string {
	headers := []string{"CODE", "MILESTONE", "DATE", "GAP", "NOTE"}
	out := make([][]string, 0, len(rows))

	prev := ""
	for _, r := range rows {
		date := OrDash(r.Computed)
		gap := ""
		note := ""

		switch {
		case !r.Active:
			date = Dim("off")
			note = Dim("needs " + r.Conditional)
		case r.Stage && r.StageComplete:
			note = StyleGreen.Render("✔ complete")
		case r.Stage:
			note = StyleYellow.Render("pending")
		case r.Manual:
			note = Dim("manual")
		}

		if r.Active && r.Computed != "" {
			if prev != "" {
				if n, ok := schedule.BusinessDaysBetween(prev, r.Computed, holidays); ok {
					gap = fmt.Sprintf("+%d", n)
					if n < 0 {
						gap = StyleRed.Render(fmt.Sprintf("%d", n))
					}
				}
			}
			prev = r.Computed
		}

		out = append(out, []string{Dim(r.Code), r.Label, date, gap, note})
	}
	return RenderTable(headers, out)
}

// FormatProjection renders a building projection and, when present, the
// requested unit.
func FormatProjection(p *contract.ProjectionResponse) string {
	holidays := domain.NewHolidaySet(p.Holidays...)

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s / %s", p.ProjectID, p.BuildingID)))
	b.WriteString("\n")
	if p.ResolvedProjectID != "" && p.ResolvedProjectID != p.ProjectID {
		b.WriteString(Dim("stored as " + p.ResolvedProjectID))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Anchor: %s   Template: %s\n", OrDash(p.Building.Anchor), p.BuildingTemplate))
	if p.Building.PreKickoff {
		b.WriteString(StyleYellow.Render("Pre-kickoff: dates are hidden until kickoff"))
		b.WriteString("\n")
	}
	if p.Building.ProjectedCOE != "" {
		b.WriteString(fmt.Sprintf("Projected COE: %s\n", p.Building.ProjectedCOE))
	}
	b.WriteString("\n")
	b.WriteString(FormatRows(p.BuildingRows, holidays))

	if p.Unit != nil {
		b.WriteString("\n")
		b.WriteString(Header("Unit " + p.UnitNumber))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Anchor: %s   Template: %s\n\n", OrDash(p.Unit.Anchor), p.UnitTemplate))
		b.WriteString(FormatRows(p.UnitRows, holidays))
	}
	return b.String()
}
