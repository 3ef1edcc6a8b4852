package database

import "testing"

// The list queries must order by displayOrder ascending, breaking ties
// by createdAt descending, so that among A(order=1), B(order=0,older)
// and C(order=0,newer) the server returns [C, B, A]. The sort is pushed
// down to the database; this pins the sort document it is asked for.
func TestDisplayOrderSort(t *testing.T) {
	if len(displayOrderSort) != 2 {
		t.Fatalf("sort document has %d keys, want 2", len(displayOrderSort))
	}
	if displayOrderSort[0].Key != "displayOrder" || displayOrderSort[0].Value != 1 {
		t.Errorf("primary sort = %+v, want displayOrder ascending", displayOrderSort[0])
	}
	if displayOrderSort[1].Key != "createdAt" || displayOrderSort[1].Value != -1 {
		t.Errorf("tie-break sort = %+v, want createdAt descending", displayOrderSort[1])
	}
}
