package facet

import (
	"reflect"
	"testing"

	"github.com/matst80/slask-orders/pkg/types"
)

func TestUniqueValues_FirstSeenOrder(t *testing.T) {
	orders := []types.Order{
		{Oid: 1, Customer: "Globex"},
		{Oid: 2, Customer: "ACME"},
		{Oid: 3, Customer: "Globex"},
		{Oid: 4, Customer: ""},
	}
	got := UniqueValues(orders, types.FieldCustomer)
	want := []string{"Globex", "ACME"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}

func TestUniqueValues_StatusMergesBothSides(t *testing.T) {
	orders := []types.Order{
		{Oid: 1, StatusLeft: "Printing", StatusRight: "QC"},
		{Oid: 2, StatusLeft: "QC", StatusRight: "Delivered"},
	}
	got := UniqueValues(orders, types.FieldStatus)
	want := []string{"Printing", "QC", "Delivered"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}

func TestUniqueValues_DaysIsFixed(t *testing.T) {
	orders := []types.Order{{Oid: 1, DaysSinceOrder: 99}}
	got := UniqueValues(orders, types.FieldDays)
	if !reflect.DeepEqual(got, DayBuckets) {
		t.Errorf("Expected fixed buckets %v but got %v", DayBuckets, got)
	}
	got[0] = "mutated"
	if DayBuckets[0] != "<5" {
		t.Errorf("Expected returned slice to be a copy")
	}
}
