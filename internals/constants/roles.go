package constants

import "fmt"

const (
	RoleUser   = "user"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
)

// Role error message templates
const (
	ErrOnlyEditorsCanAccess = "❌ Only editor, admin, or owner may access %s."
	ErrOnlyAdminsCanAccess  = "❌ Only admin or owner may access %s."
	ErrOnlyOwnersCanAccess  = "❌ Only owner may access %s."
)

func RoleErrorEditor(feature string) string {
	return fmt.Sprintf(ErrOnlyEditorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleEditor,
		RoleAdmin,
		RoleOwner,
	}

	EditorAndAbove = []string{
		RoleEditor,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
