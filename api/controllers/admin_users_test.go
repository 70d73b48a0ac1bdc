package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/sewakita/sewakita-backend/internal/users"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	pkgerrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

type stubUsersService struct {
	listFilter *users.ListFilter
	created    *users.CreateUserInput
	updated    *users.UpdateUserInput
	byID       *users.UserDTO
	err        error
}

func (s *stubUsersService) GetByID(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.byID != nil {
		return s.byID, nil
	}
	return &users.UserDTO{ID: id}, nil
}

func (s *stubUsersService) List(ctx context.Context, filter users.ListFilter) (*users.UserListResult, pagination.Page, error) {
	s.listFilter = &filter
	if s.err != nil {
		return nil, pagination.Page{}, s.err
	}
	return &users.UserListResult{Users: []users.UserDTO{}}, pagination.Page{Page: 1, Limit: filter.Pagination.Limit}, nil
}

func (s *stubUsersService) Create(ctx context.Context, input users.CreateUserInput) (*users.UserDTO, error) {
	s.created = &input
	if s.err != nil {
		return nil, s.err
	}
	return &users.UserDTO{ID: uuid.New(), Email: input.Email, Role: input.Role}, nil
}

func (s *stubUsersService) Update(ctx context.Context, id uuid.UUID, input users.UpdateUserInput) (*users.UserDTO, error) {
	s.updated = &input
	if s.err != nil {
		return nil, s.err
	}
	return &users.UserDTO{ID: id}, nil
}

func (s *stubUsersService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func TestAdminUsersListRoleFilter(t *testing.T) {
	svc := &stubUsersService{}
	handler := AdminUsersList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?role=OWNER", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.listFilter == nil || svc.listFilter.Role == nil || *svc.listFilter.Role != enums.RoleOwner {
		t.Fatalf("expected OWNER filter got %+v", svc.listFilter)
	}
}

func TestAdminUsersListRejectsUnknownRole(t *testing.T) {
	handler := AdminUsersList(&stubUsersService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?role=SUPERHERO", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUserCreate(t *testing.T) {
	svc := &stubUsersService{}
	handler := AdminUserCreate(svc, nil)

	body := `{
		"name": "Pemilik Armada",
		"email": "owner@example.com",
		"password": "rahasia123",
		"role": "OWNER",
		"isVerifiedByAdmin": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/users", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.created == nil {
		t.Fatal("expected service create call")
	}
	if svc.created.Role != enums.RoleOwner {
		t.Fatalf("expected OWNER role got %s", svc.created.Role)
	}
	if !svc.created.IsVerifiedByAdmin {
		t.Fatal("expected verified flag to pass through")
	}
}

func TestAdminUserCreateDuplicateEmail(t *testing.T) {
	svc := &stubUsersService{err: pkgerrors.New(pkgerrors.CodeConflict, "email already registered")}
	handler := AdminUserCreate(svc, nil)

	body := `{
		"name": "Pemilik Armada",
		"email": "owner@example.com",
		"password": "rahasia123",
		"role": "OWNER"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/users", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "email already registered" {
		t.Fatalf("expected duplicate email message got %q", payload.Message)
	}
}
