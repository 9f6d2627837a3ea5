package api

import (
	"encoding/json"
	"testing"
)

func TestDecodeListBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"DepartmentID":"1","DepartmentName":"Sales"},{"DepartmentID":2,"DepartmentName":"IT"}]`)
	result, err := DecodeList[Department](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", result.Len())
	}
	if result.HasTotal {
		t.Fatal("bare arrays carry no total")
	}
	if result.EffectiveTotal() != 2 {
		t.Fatalf("expected effective total 2, got %d", result.EffectiveTotal())
	}
	if result.Items[0].DepartmentID.Int() != 1 || result.Items[1].DepartmentID.Int() != 2 {
		t.Fatal("expected DepartmentID to parse from both string and number")
	}
}

func TestDecodeListItemsEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"EmployeeID":7,"FullName":"A"}],"total":42}`)
	result, err := DecodeList[Employee](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Len() != 1 || !result.HasTotal || result.Total != 42 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeListDataEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"data":[{"EmployeeID":7,"FullName":"A"}],"total":9}`)
	result, err := DecodeList[Employee](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Len() != 1 || !result.HasTotal || result.Total != 9 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeListFullEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"status":"ok","message":"","data":[{"SalaryID":1}],"metadata":{"total_items":13}}`)
	result, err := DecodeList[Payroll](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Len() != 1 || !result.HasTotal || result.Total != 13 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeListEmptyAndNull(t *testing.T) {
	for _, raw := range []string{``, `null`, `{"data":null}`, `[]`} {
		result, err := DecodeList[Department](json.RawMessage(raw))
		if err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
		if result.Items == nil {
			t.Fatalf("decode %q: items must never be nil", raw)
		}
		if result.Len() != 0 {
			t.Fatalf("decode %q: expected 0 items, got %d", raw, result.Len())
		}
	}
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`"abc"`), &f); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
