package commands

import "testing"

func TestParseItems(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		wantErr bool
		wantQty []int
	}{
		{name: "id with quantity", raw: []string{"mezcal-damiana:2"}, wantQty: []int{2}},
		{name: "bare id defaults to one", raw: []string{"licor-cafe"}, wantQty: []int{1}},
		{name: "multiple items", raw: []string{"a:1", "b:3"}, wantQty: []int{1, 3}},
		{name: "zero quantity", raw: []string{"a:0"}, wantErr: true},
		{name: "negative quantity", raw: []string{"a:-1"}, wantErr: true},
		{name: "non-numeric quantity", raw: []string{"a:two"}, wantErr: true},
		{name: "empty id", raw: []string{":2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := parseItems(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseItems(%v) expected error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseItems(%v) failed: %v", tt.raw, err)
			}
			for i, item := range items {
				if item.Quantity != tt.wantQty[i] {
					t.Errorf("item %d: expected quantity %d, got %d", i, tt.wantQty[i], item.Quantity)
				}
			}
		})
	}
}

func TestCheckoutCommand_RequiresItemsAndAddress(t *testing.T) {
	if err := runCheckout(nil, "Calle 1, Oaxaca", ""); err == nil {
		t.Error("expected error without items")
	}
	if err := runCheckout([]string{"a:1"}, "", ""); err == nil {
		t.Error("expected error without address")
	}
}
