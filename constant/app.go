package constant

type contextKey string

// IdentityKey carries the authenticated identity through the request context.
const IdentityKey contextKey = "identity"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Live-row ceilings enforced at creation time.
const (
	MaxHotSongs = 8
	MaxNews     = 10
)

// Token purposes for single-use action tokens.
const (
	TokenPurposeVerifyEmail   = "verify-email"
	TokenPurposeResetPassword = "reset-password"
)

// Upload subdirectories, keyed by purpose.
const (
	UploadDirAdmin        = "admin"
	UploadDirUsers        = "users"
	UploadDirTestimonials = "testimonials"
	UploadDirNews         = "news"
	UploadDirCarousel     = "carousel"
)
