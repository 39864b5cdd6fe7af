package handler

import (
	"log/slog"
	"net/http"

	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/response"
	"roster/internal/domain/entity"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
// The "me" routes dispatch on the authenticated account's role, so the
// handler carries both the person and business use cases.
type ProfileHandler struct {
	personUC   usecase.PersonProfileUsecase
	businessUC usecase.BusinessProfileUsecase
	logger     *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(
	personUC usecase.PersonProfileUsecase,
	businessUC usecase.BusinessProfileUsecase,
	logger *slog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		personUC:   personUC,
		businessUC: businessUC,
		logger:     logger,
	}
}

// CreateUserProfile handles registration of a regular user profile.
func (h *ProfileHandler) CreateUserProfile(c echo.Context) error {
	return h.createPersonProfile(c, entity.RoleUser)
}

// CreateAdminProfile handles registration of an admin profile.
func (h *ProfileHandler) CreateAdminProfile(c echo.Context) error {
	return h.createPersonProfile(c, entity.RoleAdmin)
}

func (h *ProfileHandler) createPersonProfile(c echo.Context, kind entity.Role) error {
	var input *usecase.CreatePersonProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.personUC.CreateProfile(c.Request().Context(), kind, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPersonProfileView(profile), "Profile created successfully")
}

// CreateBusinessProfile handles registration of a business profile.
func (h *ProfileHandler) CreateBusinessProfile(c echo.Context) error {
	var input *usecase.CreateBusinessProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.businessUC.CreateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBusinessProfileView(profile), "Profile created successfully")
}

// GetOwnProfile returns the authenticated account's profile, whatever its variant.
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	ctx := c.Request().Context()

	if account.Role.IsPerson() {
		profile, err := h.personUC.GetOwnProfile(ctx, account.Role, account.ID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toPersonProfileView(profile), "")
	}

	profile, err := h.businessUC.GetOwnProfile(ctx, account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessProfileView(profile), "")
}

// UpdateOwnProfile applies a partial update to the authenticated account's profile.
func (h *ProfileHandler) UpdateOwnProfile(c echo.Context) error {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	ctx := c.Request().Context()

	if account.Role.IsPerson() {
		var input *usecase.UpdatePersonProfileInput
		if err := c.Bind(&input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
		}
		if err := c.Validate(input); err != nil {
			return errors.WithStack(err)
		}

		profile, err := h.personUC.UpdateOwnProfile(ctx, account.Role, account.ID, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toPersonProfileView(profile), "Profile updated successfully")
	}

	var input *usecase.UpdateBusinessProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.businessUC.UpdateOwnProfile(ctx, account.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessProfileView(profile), "Profile updated successfully")
}

// ListUserProfiles dumps every regular user profile. Staff only.
func (h *ProfileHandler) ListUserProfiles(c echo.Context) error {
	return h.listPersonProfiles(c, entity.RoleUser)
}

// ListAdminProfiles dumps every admin profile. Staff only.
func (h *ProfileHandler) ListAdminProfiles(c echo.Context) error {
	return h.listPersonProfiles(c, entity.RoleAdmin)
}

func (h *ProfileHandler) listPersonProfiles(c echo.Context, kind entity.Role) error {
	profiles, err := h.personUC.ListProfiles(c.Request().Context(), kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPersonProfileViews(profiles), "")
}

// ListBusinessProfiles dumps every business profile. Staff only.
func (h *ProfileHandler) ListBusinessProfiles(c echo.Context) error {
	profiles, err := h.businessUC.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessProfileViews(profiles), "")
}
