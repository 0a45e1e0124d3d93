package services

import (
	"testing"

	"homeledger/internal/metrics"
	"homeledger/internal/models"
	"homeledger/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db, nil)

	svc.Log("user-1", "CREATE_PURCHASE", "purchase", "p-1", "127.0.0.1", map[string]interface{}{"total_amount": "10.00"})
	svc.Log("user-1", "DELETE_TAG", "tag", "t-1", "127.0.0.1", nil)

	var entries []models.AuditLog
	testutil.AssertNoError(t, db.Order("action ASC").Find(&entries).Error)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != "CREATE_PURCHASE" || entries[0].Changes != `{"total_amount":"10.00"}` {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	if entries[1].Changes != "" {
		t.Errorf("expected empty changes, got %q", entries[1].Changes)
	}
}

func TestAuditLogFailures(t *testing.T) {
	t.Run("unencodable_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db, nil)

		svc.Log("user-1", "UPDATE_HOME", "home", "h-1", "127.0.0.1", map[string]interface{}{"bad": make(chan int)})

		var entry models.AuditLog
		testutil.AssertNoError(t, db.First(&entry).Error)
		if entry.Changes != "{}" {
			t.Errorf("expected empty object, got %q", entry.Changes)
		}
	})

	t.Run("write_failure_does_not_panic", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db, metrics.New("homeledger_test"))
		testutil.TeardownTestDB(t, db)

		svc.Log("user-1", "DELETE_TAG", "tag", "t-1", "127.0.0.1", nil)
	})
}
