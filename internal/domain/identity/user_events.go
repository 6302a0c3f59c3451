package identity

import (
	"github.com/google/uuid"
	"github.com/textile/backend/internal/domain/shared"
)

// Aggregate type constant for User
const AggregateTypeUser = "User"

// UserCreatedEvent is published when a new user account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// NewUserCreatedEvent creates a new user created event
func NewUserCreatedEvent(userID, tenantID uuid.UUID, username string, role UserRole) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("user.created", AggregateTypeUser, userID, tenantID),
		Username:        username,
		Role:            role,
	}
}

// UserLockedEvent is published when an account is locked after
// repeated failed sign-in attempts.
type UserLockedEvent struct {
	shared.BaseDomainEvent
	Username       string `json:"username"`
	FailedAttempts int    `json:"failed_attempts"`
}

// NewUserLockedEvent creates a new user locked event
func NewUserLockedEvent(userID, tenantID uuid.UUID, username string, failedAttempts int) *UserLockedEvent {
	return &UserLockedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("user.locked", AggregateTypeUser, userID, tenantID),
		Username:        username,
		FailedAttempts:  failedAttempts,
	}
}
