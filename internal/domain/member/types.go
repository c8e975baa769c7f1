package member

// Role is a flat capability tag, not a hierarchy. A member may carry
// several tags at once (every partner also holds the customer tag).
type Role string

const (
	RoleUser    Role = "ROLE_USER"
	RolePartner Role = "ROLE_PARTNER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RolePartner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Roles []Role

func UserRoles() Roles {
	return Roles{RoleUser}
}

func PartnerRoles() Roles {
	return Roles{RolePartner, RoleUser}
}

func NewRoles(tags []string) (Roles, error) {
	roles := make(Roles, 0, len(tags))
	for _, t := range tags {
		role, err := NewRole(t)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (rs Roles) Has(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
