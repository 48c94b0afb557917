package controller

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// The schema declares no cascading deletes, so the compensation path must
// remove role and profile rows itself before the identity.
func TestRollbackUserRemovesDependents(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	var deleted []string
	if err := db.Callback().Delete().After("gorm:delete").
		Register("capture_deletes", func(tx *gorm.DB) {
			deleted = append(deleted, tx.Statement.Table)
		}); err != nil {
		t.Fatalf("register callback: %v", err)
	}

	ctrl := NewUserController(db)
	ctrl.rollbackUser(uuid.New())

	want := []string{"user_roles", "profiles", "users"}
	if len(deleted) != len(want) {
		t.Fatalf("deleted tables = %v, want %v", deleted, want)
	}
	for i, table := range want {
		if deleted[i] != table {
			t.Fatalf("delete %d hit %q, want %q (all: %v)", i, deleted[i], table, deleted)
		}
	}
}
