package orders

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matst80/slask-orders/pkg/types"
)

func TestLoad_RejectsBrokenRecords(t *testing.T) {
	if _, err := Load([]types.Order{{Oid: 0}}); err == nil {
		t.Errorf("Expected zero oid to be rejected")
	}
	if _, err := Load([]types.Order{{Oid: 1, DaysSinceOrder: -1}}); err == nil {
		t.Errorf("Expected negative days to be rejected")
	}
	if _, err := Load([]types.Order{{Oid: 1}, {Oid: 1}}); err == nil {
		t.Errorf("Expected duplicate oid to be rejected")
	}
}

func TestLoad_ToleratesUnknownVocabulary(t *testing.T) {
	col, err := Load([]types.Order{
		{Oid: 1, StatusLeft: "Warp Drive Alignment", Type: "unheard-of"},
	})
	if err != nil {
		t.Fatalf("Expected unknown status/type values to load but got %v", err)
	}
	if col.Len() != 1 {
		t.Errorf("Expected 1 order but got %d", col.Len())
	}
}

func TestLoadJSON(t *testing.T) {
	data := `[
		{"oid":1,"statusLeft":"Printing","statusRight":"QC","type":"FDM","customer":"ACME","daysSinceOrder":4,"model":"Benchy","designer":"Maja"},
		{"oid":2,"statusLeft":"Delivered","customer":"Globex","daysSinceOrder":61}
	]`
	col, err := LoadJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if col.Len() != 2 {
		t.Fatalf("Expected 2 orders but got %d", col.Len())
	}
	if col.All()[0].Model != "Benchy" {
		t.Errorf("Expected first model Benchy but got %q", col.All()[0].Model)
	}
}

func TestLoadJSON_BadPayload(t *testing.T) {
	if _, err := LoadJSON(strings.NewReader("{not json")); err == nil {
		t.Errorf("Expected malformed dataset to fail")
	}
}

func TestUniqueValues_Delegation(t *testing.T) {
	col, err := Load([]types.Order{
		{Oid: 1, Designer: "Maja"},
		{Oid: 2, Designer: "Erik"},
		{Oid: 3, Designer: "Maja"},
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := col.UniqueValues(types.FieldDesigner)
	want := []string{"Maja", "Erik"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}
