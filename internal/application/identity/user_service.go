package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/identity"
	"github.com/textile/backend/internal/domain/shared"
)

// UserService handles user administration
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, tenantID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, tenantID, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(tenantID, req.Username, req.Password, identity.UserRole(req.Role))
	if err != nil {
		return nil, err
	}
	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with filtering and pagination
func (s *UserService) List(ctx context.Context, tenantID uuid.UUID, filter UserListFilter) (*shared.Paginated[UserResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	users, err := s.userRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToUserResponses(users), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update edits a user's profile
func (s *UserService) Update(ctx context.Context, tenantID, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if err := user.SetDisplayName(*req.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// ChangePassword changes the caller's own password
func (s *UserService) ChangePassword(ctx context.Context, tenantID, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// ResetPassword sets a new password without the old one. Admin only.
func (s *UserService) ResetPassword(ctx context.Context, tenantID, userID uuid.UUID, req ResetPasswordRequest) error {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// Unlock clears a lockout caused by failed login attempts
func (s *UserService) Unlock(ctx context.Context, tenantID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Unlock(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Deactivate disables a user account
func (s *UserService) Deactivate(ctx context.Context, tenantID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Activate re-enables a deactivated user account
func (s *UserService) Activate(ctx context.Context, tenantID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Activate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}
