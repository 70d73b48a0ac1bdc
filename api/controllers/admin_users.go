package controllers

import (
	"net/http"
	"strings"

	"github.com/sewakita/sewakita-backend/api/responses"
	"github.com/sewakita/sewakita-backend/api/validators"
	"github.com/sewakita/sewakita-backend/internal/users"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	pkgerrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/logger"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

type userListResponse struct {
	Users      []users.UserDTO `json:"users"`
	Pagination pagination.Page `json:"pagination"`
}

type createUserRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=100"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8,max=72"`
	Role              string `json:"role" validate:"required"`
	IsVerifiedByAdmin bool   `json:"isVerifiedByAdmin"`
}

type updateUserRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Password          *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role              *string `json:"role,omitempty"`
	IsVerifiedByAdmin *bool   `json:"isVerifiedByAdmin,omitempty"`
}

// AdminUsersList lists accounts with an optional role filter.
func AdminUsersList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := users.ListFilter{Pagination: params}
		if raw := strings.TrimSpace(r.URL.Query().Get("role")); raw != "" {
			role, err := enums.ParseRole(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
				return
			}
			filter.Role = &role
		}

		result, page, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, userListResponse{Users: result.Users, Pagination: page})
	}
}

// AdminUserCreate provisions an account with any role.
func AdminUserCreate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var body createUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseRole(strings.TrimSpace(body.Role))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		user, err := svc.Create(r.Context(), users.CreateUserInput{
			Name:              body.Name,
			Email:             body.Email,
			Password:          body.Password,
			Role:              role,
			IsVerifiedByAdmin: body.IsVerifiedByAdmin,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

func AdminUserGet(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

func AdminUserUpdate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := users.UpdateUserInput{
			Name:              body.Name,
			Email:             body.Email,
			Password:          body.Password,
			IsVerifiedByAdmin: body.IsVerifiedByAdmin,
		}
		if body.Role != nil {
			role, err := enums.ParseRole(strings.TrimSpace(*body.Role))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
				return
			}
			input.Role = &role
		}

		user, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

func AdminUserDelete(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "user deleted"})
	}
}
