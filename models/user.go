package models

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// User is a personnel account. Password travels with the record inside the
// persisted collection but is stripped before the record is handed to a
// caller or stored as the active session.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"password,omitempty"`
	Role       string   `json:"role"`
	Status     string   `json:"status,omitempty"`
	Title      string   `json:"title,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	Avatar     string   `json:"avatar,omitempty"`
	Education  []string `json:"education,omitempty"`
	Experience []string `json:"experience,omitempty"`
	Licenses   []string `json:"licenses,omitempty"`
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
// Title and StartDate are restricted fields; whether the caller may set them
// is decided at the handler, not here.
type UserPatch struct {
	Name       *string   `json:"name,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Title      *string   `json:"title,omitempty"`
	StartDate  *string   `json:"startDate,omitempty"`
	Avatar     *string   `json:"avatar,omitempty"`
	Education  *[]string `json:"education,omitempty"`
	Experience *[]string `json:"experience,omitempty"`
	Licenses   *[]string `json:"licenses,omitempty"`
}
