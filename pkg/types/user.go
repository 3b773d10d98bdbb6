package types

// User roles.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is consumed, not owned, by the tracker: only Name flows into
// stage records as the acting user. Credential checks stay outside the
// tracker's scope.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}
