package production

// Status represents the lifecycle state of a production run
// (dyeing lot or fabric batch)
type Status string

const (
	StatusInProcess Status = "IN_PROCESS"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is a valid production Status
func (s Status) IsValid() bool {
	switch s {
	case StatusInProcess, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true when no further transitions are allowed
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
