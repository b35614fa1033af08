package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleUser     = "user" // peserta / contestant
	RoleViewer   = "viewer"
	RoleOperator = "operator"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

// Template pesan error role
const (
	ErrOnlyOperatorsCanAccess = "❌ Hanya operator atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyViewersCanAccess   = "❌ Hanya viewer, operator, atau admin yang boleh mengakses fitur %s."
)

func RoleErrorOperator(feature string) string {
	return fmt.Sprintf(ErrOnlyOperatorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorViewer(feature string) string {
	return fmt.Sprintf(ErrOnlyViewersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleViewer,
		RoleOperator,
		RoleAdmin,
		RoleOwner,
	}

	// Boleh baca data sertifikat/event
	ViewerAndAbove = []string{
		RoleViewer,
		RoleOperator,
		RoleAdmin,
		RoleOwner,
	}

	// Boleh tulis (buat/ubah sertifikat, export)
	OperatorAndAbove = []string{
		RoleOperator,
		RoleAdmin,
		RoleOwner,
	}

	AdminOnly = []string{
		RoleAdmin,
		RoleOwner,
	}
)
