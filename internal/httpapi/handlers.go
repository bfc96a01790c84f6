package httpapi

import (
	"net/http"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
)

func (a *api) missingParameters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "Missing required parameters"})
}

// listUnits returns the project's inventory. building_id narrows it to one
// building of the exact project.
func (a *api) listUnits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	projectID := q.Get("project_id")
	if projectID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "project_id is required"})
		return
	}

	if buildingID := q.Get("building_id"); buildingID != "" {
		units, err := a.svc.Units.ListByBuilding(r.Context(), projectID, buildingID)
		if err != nil {
			writeError(a.logger, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, contract.UnitsResponse{Items: units})
		return
	}

	listing, err := a.svc.Units.ListByProject(r.Context(), projectID)
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.UnitsResponse{Items: listing.Units})
}

func (a *api) buildingRecords(w http.ResponseWriter, r *http.Request) {
	records, err := a.svc.Milestones.BuildingRecords(r.Context(), r.PathValue("project"), r.PathValue("building"))
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.RecordsResponse{Items: records})
}

// getUnit returns the stored unit record, or {} when there is none.
func (a *api) getUnit(w http.ResponseWriter, r *http.Request) {
	view, err := a.svc.Milestones.GetUnit(r.Context(), r.PathValue("project"), r.PathValue("building"), r.PathValue("unit"))
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	if view.Record == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, view.Record)
}

func (a *api) saveBuilding(w http.ResponseWriter, r *http.Request) {
	var req contract.SaveBuildingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	if err := a.svc.Milestones.SaveBuilding(r.Context(), req); err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.SaveResponse{Success: true})
}

type stageBody struct {
	Complete bool    `json:"complete"`
	Date     *string `json:"date"`
}

func (a *api) updateStage(w http.ResponseWriter, r *http.Request) {
	var body stageBody
	if err := decodeBody(r, &body); err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	view, err := a.svc.Milestones.UpdateStage(r.Context(), contract.UpdateStageRequest{
		ProjectID:  r.PathValue("project"),
		BuildingID: r.PathValue("building"),
		StageKey:   r.PathValue("stage"),
		Complete:   body.Complete,
		Date:       body.Date,
	})
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (a *api) saveUnit(w http.ResponseWriter, r *http.Request) {
	var req contract.SaveUnitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	if err := a.svc.Milestones.SaveUnit(r.Context(), req); err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.SaveResponse{Success: true})
}

func (a *api) timeline(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := a.svc.Timeline.Timeline(r.Context(), contract.TimelineRequest{
		ProjectID:     q.Get("project_id"),
		BuildingID:    q.Get("building_id"),
		IncludeUnits:  queryFlag(r, "include_units"),
		IncludeEvents: queryFlag(r, "include_events"),
	})
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) saveSalesStatus(w http.ResponseWriter, r *http.Request) {
	var req contract.SalesStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	item, err := a.svc.Sales.Save(r.Context(), req)
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.SalesStatusResponse{Success: true, Item: *item})
}

func (a *api) listSalesStatus(w http.ResponseWriter, r *http.Request) {
	items, err := a.svc.Sales.ListByProject(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.SalesStatusList{Items: items})
}

func (a *api) listHolidays(w http.ResponseWriter, r *http.Request) {
	items, err := a.svc.Holidays.List(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	if items == nil {
		items = []domain.Holiday{}
	}
	writeJSON(w, http.StatusOK, contract.HolidaysResponse{Items: items})
}

func (a *api) projection(w http.ResponseWriter, r *http.Request) {
	resp, err := a.svc.Milestones.Projection(r.Context(), contract.ProjectionRequest{
		ProjectID:  r.PathValue("project"),
		BuildingID: r.PathValue("building"),
		UnitNumber: r.URL.Query().Get("unit"),
	})
	if err != nil {
		writeError(a.logger, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
