package handlers

import (
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/models"
	service "github.com/aaravmahajanofficial/superadmin-catalog/internal/services"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/utils"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: utils.NewValidator()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, user)
	}
}

// Login answers 401 for bad credentials and 429 with Retry-After when the
// address is rate limited.
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		if !resp.Success {
			if resp.RetryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(resp.RetryAfter))
				response.Error(w, appErrors.TooManyRequestsError(resp.Message))

				return
			}

			response.Error(w, appErrors.UnauthorizedError(resp.Message))

			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}
