package httpapi

import (
	"fmt"
	"net/http"
	"testing"
)

func reportBody() map[string]any {
	return map[string]any{
		"type":         "flood",
		"severity":     "high",
		"title":        "River overflow near bridge",
		"description":  "Water level rising fast on the east bank",
		"address":      "12 Riverside Rd",
		"city":         "Pune",
		"state":        "MH",
		"contactPhone": "9990001111",
	}
}

func TestCreateReport(t *testing.T) {
	api := newTestAPI(t)

	body := reportBody()
	body["pincode"] = "411001"
	body["location"] = map[string]any{"lat": 18.52, "lng": 73.86}
	body["contactName"] = "Asha"
	body["contactEmail"] = "asha@example.com"

	resp := api.post("/api/reports", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	payload := decode[map[string]any](t, resp)
	if payload["success"] != true {
		t.Fatalf("expected success=true, got %v", payload["success"])
	}
	rep, ok := payload["report"].(map[string]any)
	if !ok {
		t.Fatalf("expected report object, got %v", payload["report"])
	}
	if rep["id"] == "" {
		t.Fatal("expected assigned id")
	}
	if rep["status"] != "Active" {
		t.Fatalf("expected status Active, got %v", rep["status"])
	}
	if rep["createdAt"] == "" || rep["updatedAt"] == "" {
		t.Fatal("expected timestamps")
	}
	loc, ok := rep["location"].(map[string]any)
	if !ok || loc["lat"] != 18.52 {
		t.Fatalf("unexpected location: %v", rep["location"])
	}
}

func TestCreateReportMissingContactPhone(t *testing.T) {
	api := newTestAPI(t)

	body := reportBody()
	delete(body, "contactPhone")
	resp := api.post("/api/reports", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	payload := decode[map[string]any](t, resp)
	if payload["message"] != "Missing required fields" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
}

func TestCreateReportInvalidSeverity(t *testing.T) {
	api := newTestAPI(t)

	body := reportBody()
	body["severity"] = "extreme"
	resp := api.post("/api/reports", body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestReportAnonymousCoercedToBoolean(t *testing.T) {
	api := newTestAPI(t)

	body := reportBody()
	body["anonymous"] = "yes"
	resp := api.post("/api/reports", body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	list := api.get("/api/reports")
	payload := decode[map[string]any](t, list)
	reports, ok := payload["reports"].([]any)
	if !ok || len(reports) != 1 {
		t.Fatalf("expected one report, got %v", payload["reports"])
	}
	rep := reports[0].(map[string]any)
	anonymous, isBool := rep["anonymous"].(bool)
	if !isBool {
		t.Fatalf("anonymous is not a boolean: %T", rep["anonymous"])
	}
	if !anonymous {
		t.Fatal("expected truthy input to coerce to true")
	}
}

func TestListReportsCapAndOrder(t *testing.T) {
	api := newTestAPI(t)

	for i := 0; i < 101; i++ {
		body := reportBody()
		body["title"] = fmt.Sprintf("report %03d", i)
		resp := api.post("/api/reports", body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %d failed: %d", i, resp.StatusCode)
		}
	}

	resp := api.get("/api/reports")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	payload := decode[map[string]any](t, resp)
	reports, ok := payload["reports"].([]any)
	if !ok {
		t.Fatalf("expected reports array, got %v", payload["reports"])
	}
	if len(reports) != 100 {
		t.Fatalf("expected exactly 100 reports, got %d", len(reports))
	}
	first := reports[0].(map[string]any)
	last := reports[99].(map[string]any)
	if first["title"] != "report 100" {
		t.Fatalf("expected newest first, got %v", first["title"])
	}
	if last["title"] != "report 001" {
		t.Fatalf("expected oldest surviving report last, got %v", last["title"])
	}
}

func TestListReportsEmpty(t *testing.T) {
	api := newTestAPI(t)

	resp := api.get("/api/reports")
	payload := decode[map[string]any](t, resp)
	reports, ok := payload["reports"].([]any)
	if !ok {
		t.Fatalf("expected empty array, got %v", payload["reports"])
	}
	if len(reports) != 0 {
		t.Fatalf("expected no reports, got %d", len(reports))
	}
}
