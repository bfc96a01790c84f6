package formatter

import (
	"fmt"
	"strings"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
)

func FormatTimeline(resp *contract.TimelineResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Timeline %s / %s", resp.ProjectID, resp.BuildingID)))
	b.WriteString("\n")

	if len(resp.Units) > 0 {
		headers := []string{"UNIT", "PLAN", "ANCHOR", "STATUS"}
		rows := make([][]string, 0, len(resp.Units))
		for _, u := range resp.Units {
			anchor, _ := u.Milestones["anchor"].(string)
			status := Dim("--")
			if u.SalesStatus != nil {
				status = StatusPill(u.SalesStatus.StatusLabel, u.SalesStatus.StatusColor)
			}
			rows = append(rows, []string{Bold(u.UnitNumber), OrDash(u.PlanType), OrDash(anchor), status})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	if len(resp.Events) > 0 {
		headers := []string{"DATE", "SCOPE", "MILESTONE"}
		rows := make([][]string, 0, len(resp.Events))
		for _, ev := range resp.Events {
			scope := "building"
			if ev.Scope == domain.ScopeUnit {
				scope = "unit " + ev.UnitNumber
			}
			rows = append(rows, []string{ev.Date, scope, ev.Label})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	sync := resp.SalesSync
	b.WriteString(Dim(fmt.Sprintf("records scanned: %d, units matched: %d", sync.RecordsScanned, sync.UnitsMatched)))
	b.WriteString("\n")
	for _, w := range sync.Warnings {
		b.WriteString(StyleYellow.Render("! " + w))
		b.WriteString("\n")
	}
	return b.String()
}
