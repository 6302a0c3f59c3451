package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"      // Locked after repeated failed logins
	UserStatusDeactivated UserStatus = "deactivated" // Manually deactivated
)

// UserRole represents the access level of a user
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"    // Full access including user management
	UserRoleOperator UserRole = "operator" // Day-to-day business operations
)

// IsValid checks if the role is valid
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleOperator
}

// Password cost for bcrypt
const bcryptCost = 12

// Failed login attempts before the account is locked
const maxFailedAttempts = 5

// User represents an account that can sign in to the system
type User struct {
	shared.TenantAggregateRoot
	Username       string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_tenant_username,priority:2"`
	PasswordHash   string     `gorm:"type:varchar(100);not null"`
	DisplayName    string     `gorm:"type:varchar(100)"`
	Role           UserRole   `gorm:"type:varchar(20);not null;default:'operator'"`
	Status         UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	FailedAttempts int        `gorm:"not null;default:0"`
	LastLoginAt    *time.Time `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active user with a hashed password
func NewUser(tenantID uuid.UUID, username, password string, role UserRole) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be admin or operator")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Username:            username,
		PasswordHash:        string(hash),
		Role:                role,
		Status:              UserStatusActive,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user.ID, user.TenantID, user.Username, user.Role))

	return user, nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(displayName string) error {
	if len(displayName) > 100 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 100 characters")
	}

	u.DisplayName = displayName
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// ChangePassword verifies the old password and sets a new one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without verifying the old one (admin reset)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin resets the failure counter after a successful sign-in
func (u *User) RecordLogin() {
	now := time.Now()
	u.FailedAttempts = 0
	u.LastLoginAt = &now
	u.UpdatedAt = now
	u.IncrementVersion()
}

// RecordFailedLogin increments the failure counter and locks the
// account when the limit is reached.
func (u *User) RecordFailedLogin() {
	u.FailedAttempts++
	if u.FailedAttempts >= maxFailedAttempts && u.Status == UserStatusActive {
		u.Status = UserStatusLocked
		u.AddDomainEvent(NewUserLockedEvent(u.ID, u.TenantID, u.Username, u.FailedAttempts))
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Unlock clears a lockout and reactivates the account
func (u *User) Unlock() error {
	if u.Status != UserStatusLocked {
		return shared.NewDomainError("INVALID_STATUS", "User is not locked")
	}

	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Deactivate disables the account
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("INVALID_STATUS", "User is already deactivated")
	}

	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Activate re-enables a deactivated account
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("INVALID_STATUS", "User is already active")
	}

	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// CanLogin returns true if the account may sign in
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}

// IsAdmin returns true for administrator accounts
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 || len(username) > 50 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be between 3 and 50 characters")
	}
	for _, r := range username {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.') {
			return shared.NewDomainError("INVALID_USERNAME", "Username can only contain lowercase letters, numbers, underscores, and dots")
		}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}
