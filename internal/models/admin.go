package models

// Console roles.
var Roles = []string{"Admin", "Manager", "Cashier", "Accountant", "Attendant"}

type AdminUser struct {
	ID        string `json:"_id,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CreateAdminUserRequest is forwarded to the backend, which hashes the
// password and writes the audit log entry.
type CreateAdminUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PerformedBy string `json:"performedBy"`
}

type AdminLog struct {
	ID        string `json:"_id,omitempty"`
	User      string `json:"user"`
	Role      string `json:"role"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}
