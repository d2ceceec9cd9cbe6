package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brandtracker-api/internal/alert"
	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type fakeAlertUC struct {
	alert.UseCase

	lastInput alert.ListInput
	alerts    []model.Alert
	markErr   error
}

func (f *fakeAlertUC) List(_ context.Context, ip alert.ListInput) ([]model.Alert, error) {
	f.lastInput = ip
	return f.alerts, nil
}

func (f *fakeAlertUC) MarkRead(_ context.Context, id string) (model.Alert, error) {
	if f.markErr != nil {
		return model.Alert{}, f.markErr
	}
	return model.Alert{ID: id, IsRead: true}, nil
}

func testRouter(uc alert.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal})
	New(logger, uc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestListParsesFilters(t *testing.T) {
	uc := &fakeAlertUC{alerts: []model.Alert{{ID: "a1", Type: model.AlertSpike}}}
	r := testRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?brandId=b1&isRead=false", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if uc.lastInput.BrandID != "b1" {
		t.Errorf("brandId = %q, want b1", uc.lastInput.BrandID)
	}
	if uc.lastInput.IsRead == nil || *uc.lastInput.IsRead {
		t.Errorf("isRead = %v, want pointer to false", uc.lastInput.IsRead)
	}

	var body struct {
		Success bool          `json:"success"`
		Data    []model.Alert `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Success || len(body.Data) != 1 {
		t.Errorf("body = %+v, want success with one alert", body)
	}
}

func TestListRejectsBadIsRead(t *testing.T) {
	r := testRouter(&fakeAlertUC{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?isRead=maybe", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestMarkReadUnknownAlert(t *testing.T) {
	r := testRouter(&fakeAlertUC{markErr: alert.ErrAlertNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/alerts/a9/read", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Success || body.Error == "" {
		t.Errorf("body = %+v, want failure envelope with error", body)
	}
}

func TestMarkReadFlagsAlert(t *testing.T) {
	r := testRouter(&fakeAlertUC{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/alerts/a1/read", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Data model.Alert `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Data.IsRead {
		t.Error("returned alert not flagged as read")
	}
}
