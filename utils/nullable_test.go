package utils

import (
	"encoding/json"
	"testing"
)

func TestNullableStringUnmarshal(t *testing.T) {
	type payload struct {
		Comment NullableString `json:"comment"`
	}

	// vắng mặt
	var p payload
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Comment.Set {
		t.Errorf("absent field must not be Set")
	}

	// null
	p = payload{}
	if err := json.Unmarshal([]byte(`{"comment": null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Comment.Set || p.Comment.Value != nil {
		t.Errorf("null must be Set with nil Value: %+v", p.Comment)
	}

	// chuỗi
	p = payload{}
	if err := json.Unmarshal([]byte(`{"comment": "xin chào"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Comment.Set || p.Comment.Value == nil || *p.Comment.Value != "xin chào" {
		t.Errorf("string value lost: %+v", p.Comment)
	}

	// kiểu sai
	p = payload{}
	if err := json.Unmarshal([]byte(`{"comment": 7}`), &p); err == nil {
		t.Errorf("expected error for non-string comment")
	}
}

func TestNullableStringMarshal(t *testing.T) {
	b, err := json.Marshal(NullableString{Set: true})
	if err != nil || string(b) != "null" {
		t.Errorf("expected null, got %s (%v)", b, err)
	}

	v := "ok"
	b, err = json.Marshal(NullableString{Set: true, Value: &v})
	if err != nil || string(b) != `"ok"` {
		t.Errorf(`expected "ok", got %s (%v)`, b, err)
	}
}
