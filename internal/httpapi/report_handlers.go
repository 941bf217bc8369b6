package httpapi

import (
	"errors"
	"net/http"

	"resqline.org/internal/audit"
	"resqline.org/internal/report"
)

type createReportRequest struct {
	Type         string              `json:"type"`
	Severity     string              `json:"severity"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	Pincode      string              `json:"pincode"`
	Location     *report.Coordinates `json:"location"`
	ContactName  string              `json:"contactName"`
	ContactPhone string              `json:"contactPhone"`
	ContactEmail string              `json:"contactEmail"`
	Anonymous    looseBool           `json:"anonymous"`
}

func (a *API) handleReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.createReport(w, r)
	case http.MethodGet:
		a.listReports(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) createReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := a.reports.Create(r.Context(), report.CreateParams{
		Type:         req.Type,
		Severity:     req.Severity,
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		Location:     req.Location,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Anonymous:    bool(req.Anonymous),
	})
	if err != nil {
		switch {
		case errors.Is(err, report.ErrMissingField):
			writeError(w, r, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, report.ErrInvalidValue):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, "Server error creating report")
		}
		return
	}

	_ = audit.LogEvent(r.Context(), "report.create", map[string]any{
		"report_id": rep.ID,
		"type":      rep.Type,
		"severity":  rep.Severity,
		"city":      rep.City,
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"report":  rep,
	})
}

func (a *API) listReports(w http.ResponseWriter, r *http.Request) {
	reports, err := a.reports.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Server error fetching reports")
		return
	}
	if reports == nil {
		reports = []report.Report{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reports": reports,
	})
}
