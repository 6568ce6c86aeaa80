package fatal

import "testing"

func TestCodesAreDistinct(t *testing.T) {
	if Code == InternalCode {
		t.Fatalf("Code and InternalCode must differ, got %d and %d", Code, InternalCode)
	}
}
