package entities

type User struct {
	ID        string
	Name      string
	FirstName string
	Email     string
	Role      string
	SessionID string
}

// DisplayName is the short label shown in the navigation bar.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	if u.Name != "" {
		return u.Name
	}
	return u.FirstName
}
