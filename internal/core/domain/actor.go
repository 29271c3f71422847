package domain

// Role is the caller's role as issued by the identity provider.
type Role string

const (
	RoleWorker     Role = "worker"
	RoleCashier    Role = "cashier"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// Actor is the authenticated caller of an engine operation. It is built from
// the identity claims and trusted as-is.
type Actor struct {
	UserID     string `json:"userID"`
	Role       Role   `json:"role"`
	CompanyID  string `json:"companyID"`
	TerminalID string `json:"terminalID"`
}
