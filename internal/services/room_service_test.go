package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"homeledger/internal/models"
	"homeledger/internal/testutil"
)

func TestCreateRoom(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoomService(db)
		area := testutil.CreateTestArea(t, db, nil)

		room, err := svc.CreateRoom(RoomInput{AreaID: area.ID, Name: "Sink", Budget: decimal.NewNullDecimal(decimal.Zero)})
		testutil.AssertNoError(t, err)
		if room.AreaID != area.ID || !room.Budget.Valid {
			t.Errorf("unexpected room: %+v", room)
		}
	})

	t.Run("negative_budget_and_missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoomService(db)
		area := testutil.CreateTestArea(t, db, nil)

		_, err := svc.CreateRoom(RoomInput{AreaID: area.ID, Budget: decimal.NewNullDecimal(testutil.Dec("-1"))})
		testutil.AssertFieldError(t, err, "budget")
		testutil.AssertFieldError(t, err, "name")
	})

	t.Run("unknown_area", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRoomService(db)

		_, err := svc.CreateRoom(RoomInput{AreaID: missingID, Name: "Sink"})
		testutil.AssertFieldError(t, err, "area_id")
	})
}

func TestUpdateRoom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRoomService(db)
	from := testutil.CreateTestArea(t, db, nil)
	to := testutil.CreateTestArea(t, db, nil)
	room := testutil.CreateTestRoom(t, db, from.ID)

	moved, err := svc.UpdateRoom(room.ID, RoomInput{AreaID: to.ID, Name: "Counter"})
	testutil.AssertNoError(t, err)
	if moved.AreaID != to.ID || moved.Name != "Counter" {
		t.Errorf("unexpected room after update: %+v", moved)
	}

	list, err := svc.ListRooms(&from.ID)
	testutil.AssertNoError(t, err)
	if len(list) != 0 {
		t.Errorf("expected no rooms left in the old area, got %d", len(list))
	}
}

func TestDeleteRoom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRoomService(db)
	area := testutil.CreateTestArea(t, db, nil)
	room := testutil.CreateTestRoom(t, db, area.ID)
	supplier := testutil.CreateTestSupplier(t, db)
	p := testutil.CreateTestPurchase(t, db, supplier.ID, "10", func(p *models.Purchase) { p.RoomID = &room.ID })
	it := testutil.CreateTestLineItem(t, db, p.ID, &area.ID, &room.ID, "10")

	testutil.AssertNoError(t, svc.DeleteRoom(room.ID))

	var reloaded models.Purchase
	db.First(&reloaded, "id = ?", p.ID)
	if reloaded.RoomID != nil {
		t.Error("expected purchase room cleared")
	}
	var reloadedItem models.PurchaseLineItem
	db.First(&reloadedItem, "id = ?", it.ID)
	if reloadedItem.RoomID != nil {
		t.Error("expected line item room cleared")
	}
	if reloadedItem.AreaID == nil || *reloadedItem.AreaID != area.ID {
		t.Error("line item area should be kept")
	}

	testutil.AssertAppError(t, svc.DeleteRoom(room.ID), "ROOM_NOT_FOUND")
}
