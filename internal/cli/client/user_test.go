package client

import (
	"encoding/json"
	"testing"
)

func TestUser_UnknownFieldsPassThrough(t *testing.T) {
	raw := `{"id":"u-1","name":"A","email":"a@b.com","role":"user","loyalty_points":42,"address":{"city":"Oaxaca"}}`

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if u.ID != "u-1" || u.Name != "A" || u.Role != "user" {
		t.Errorf("known fields not populated: %+v", u)
	}
	if len(u.Extra) != 2 {
		t.Fatalf("expected 2 extra fields, got %d", len(u.Extra))
	}

	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var round map[string]json.RawMessage
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("round-trip unmarshal failed: %v", err)
	}
	if string(round["loyalty_points"]) != "42" {
		t.Errorf("loyalty_points not preserved: %s", round["loyalty_points"])
	}
	if string(round["address"]) != `{"city":"Oaxaca"}` {
		t.Errorf("address not preserved: %s", round["address"])
	}
}

func TestUser_IDVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string id", raw: `{"id":"abc","name":"A"}`, want: "abc"},
		{name: "integer id", raw: `{"id":7,"name":"A"}`, want: "7"},
		{name: "large integer id", raw: `{"id":9007199254740993,"name":"A"}`, want: "9007199254740993"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			if err := json.Unmarshal([]byte(tt.raw), &u); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if u.ID != tt.want {
				t.Errorf("expected ID %q, got %q", tt.want, u.ID)
			}
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	admin := &User{Role: "admin"}
	if !admin.IsAdmin() {
		t.Error("expected admin role to report IsAdmin")
	}

	regular := &User{Role: "user"}
	if regular.IsAdmin() {
		t.Error("expected regular role to not report IsAdmin")
	}

	var nilUser *User
	if nilUser.IsAdmin() {
		t.Error("nil user must not report IsAdmin")
	}
}
