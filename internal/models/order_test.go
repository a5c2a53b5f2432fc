package models

import (
	"encoding/json"
	"testing"
)

func TestItemRef_UnmarshalJSON(t *testing.T) {
	var req PlaceOrderRequest
	body := `{"customer_name": "Ada", "items": [1, -4, "2", 3.0, 4e2, true, null, {"id": 5}, [6], 7, 99999999999999999999]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ItemRef{
		{ID: 1, Valid: true},
		{ID: -4, Valid: true},
		{}, {}, {}, {}, {}, {}, {},
		{ID: 7, Valid: true},
		{},
	}
	if len(req.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(req.Items), len(want))
	}
	for i := range want {
		if req.Items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, req.Items[i], want[i])
		}
	}
}

func TestItemRef_MarshalJSON(t *testing.T) {
	out, err := json.Marshal([]ItemRef{Ref(3), {}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "[3,null]" {
		t.Errorf("marshal = %s, want [3,null]", out)
	}
}
