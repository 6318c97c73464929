package domain

type Role string

const (
	RoleUser    Role = "user"
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// User is the identity snapshot embedded in reservations. A nil ID means the
// record has never been persisted server-side.
type User struct {
	ID        *int64 `json:"id"`
	PID       int64  `json:"pid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile is the authenticated principal's own editable identity record. It
// has the same shape as User; the distinction is ownership, not structure.
type Profile = User

// Account carries the server-side credentials for a principal. It never
// leaves the auth module; reservations embed User snapshots instead.
type Account struct {
	ID           int64  `json:"id"`
	PID          int64  `json:"pid"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
