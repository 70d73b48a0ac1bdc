package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/pkg/enums"
)

func TestAdminOrderCreateWithStatusOverride(t *testing.T) {
	svc := &stubOrdersService{}
	handler := AdminOrderCreate(svc, nil)
	userID := uuid.New()

	body := `{
		"userId": "` + userID.String() + `",
		"vehicleId": "` + uuid.NewString() + `",
		"startDate": "2025-07-10",
		"endDate": "2025-07-13",
		"depositAmount": 1050000,
		"paymentMethod": "BANK_TRANSFER_MANUAL",
		"pickupLocation": "Kantor Jakarta",
		"returnLocation": "Kantor Jakarta",
		"status": "PAID"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/orders", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.created == nil {
		t.Fatal("expected service create call")
	}
	if svc.created.UserID != userID {
		t.Fatalf("expected order for %s got %s", userID, svc.created.UserID)
	}
	if svc.created.Status == nil || *svc.created.Status != enums.OrderStatusPaid {
		t.Fatalf("expected explicit PAID status got %v", svc.created.Status)
	}
}

func TestAdminOrderCreateRejectsUnknownStatus(t *testing.T) {
	handler := AdminOrderCreate(&stubOrdersService{}, nil)

	body := `{
		"userId": "` + uuid.NewString() + `",
		"vehicleId": "` + uuid.NewString() + `",
		"startDate": "2025-07-10",
		"endDate": "2025-07-13",
		"paymentMethod": "BANK_TRANSFER_MANUAL",
		"pickupLocation": "Kantor Jakarta",
		"returnLocation": "Kantor Jakarta",
		"status": "SHIPPED"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/orders", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminOrderUpdatePartial(t *testing.T) {
	svc := &stubOrdersService{}
	router := chi.NewRouter()
	router.Put("/admin/orders/{id}", AdminOrderUpdate(svc, nil))

	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/"+orderID.String(), bytes.NewReader([]byte(`{"status":"APPROVED"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.updated == nil {
		t.Fatal("expected service update call")
	}
	if svc.updated.Status == nil || *svc.updated.Status != enums.OrderStatusApproved {
		t.Fatalf("expected APPROVED status got %v", svc.updated.Status)
	}
	if svc.updated.StartDate != nil || svc.updated.EndDate != nil {
		t.Fatal("expected untouched dates to stay nil")
	}
}

func TestAdminOrderUpdateRejectsBadID(t *testing.T) {
	router := chi.NewRouter()
	router.Put("/admin/orders/{id}", AdminOrderUpdate(&stubOrdersService{}, nil))

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/not-a-uuid", bytes.NewReader([]byte(`{"status":"APPROVED"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminOrderDelete(t *testing.T) {
	svc := &stubOrdersService{}
	router := chi.NewRouter()
	router.Delete("/admin/orders/{id}", AdminOrderDelete(svc, nil))

	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/admin/orders/"+orderID.String(), nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.deleted != orderID {
		t.Fatalf("expected delete of %s got %s", orderID, svc.deleted)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "order deleted" {
		t.Fatalf("expected order deleted message got %q", body.Message)
	}
}
