package client

import "encoding/json"

// RoleAdmin is the role value the backend assigns to administrators.
const RoleAdmin = "admin"

// User is a user summary as returned by the backend. The backend attaches
// extra fields per deployment (addresses, loyalty flags), so unknown fields
// are kept in Extra and written back untouched on marshal.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string

	Extra map[string]json.RawMessage
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["id"]; ok {
		u.ID = rawToString(raw)
		delete(fields, "id")
	}
	if raw, ok := fields["name"]; ok {
		_ = json.Unmarshal(raw, &u.Name)
		delete(fields, "name")
	}
	if raw, ok := fields["email"]; ok {
		_ = json.Unmarshal(raw, &u.Email)
		delete(fields, "email")
	}
	if raw, ok := fields["role"]; ok {
		_ = json.Unmarshal(raw, &u.Role)
		delete(fields, "role")
	}

	if len(fields) > 0 {
		u.Extra = fields
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}
	for k, v := range u.Extra {
		fields[k] = v
	}

	id, _ := json.Marshal(u.ID)
	fields["id"] = id
	name, _ := json.Marshal(u.Name)
	fields["name"] = name
	if u.Email != "" {
		email, _ := json.Marshal(u.Email)
		fields["email"] = email
	}
	if u.Role != "" {
		role, _ := json.Marshal(u.Role)
		fields["role"] = role
	}

	return json.Marshal(fields)
}

// rawToString accepts both string and numeric IDs; the backend uses numeric
// IDs for legacy accounts.
func rawToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return string(raw)
}
