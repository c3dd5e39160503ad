package billing

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	if !isDuplicateKey(gorm.ErrDuplicatedKey) {
		t.Fatalf("gorm.ErrDuplicatedKey should be recognized")
	}
	wrapped := fmt.Errorf("create bill: %w", gorm.ErrDuplicatedKey)
	if !isDuplicateKey(wrapped) {
		t.Fatalf("wrapped duplicated-key error should be recognized")
	}
	if isDuplicateKey(errors.New("duplicate key value violates unique constraint")) {
		t.Fatalf("unrelated error text should not match")
	}
	if isDuplicateKey(nil) {
		t.Fatalf("nil should not match")
	}
}
