package services

import (
	"testing"

	"homeledger/internal/models"
	"homeledger/internal/pagination"
	"homeledger/internal/testutil"
)

func TestHomeCRUD(t *testing.T) {
	t.Run("create_and_get", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHomeService(db)

		home, err := svc.CreateHome(HomeInput{Name: " Lake House ", NameSecondary: "Casa sul lago"})
		testutil.AssertNoError(t, err)
		if home.Name != "Lake House" {
			t.Errorf("expected trimmed name, got %q", home.Name)
		}

		got, err := svc.GetHome(home.ID)
		testutil.AssertNoError(t, err)
		if got.LocalizedName(true) != "Casa sul lago" {
			t.Errorf("expected secondary name, got %q", got.LocalizedName(true))
		}
	})

	t.Run("name_required", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHomeService(db)

		_, err := svc.CreateHome(HomeInput{CoverImageURL: "not a url"})
		testutil.AssertFieldError(t, err, "name")
		testutil.AssertFieldError(t, err, "cover_image_url")
	})

	t.Run("update_replaces_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHomeService(db)
		home := testutil.CreateTestHome(t, db)

		updated, err := svc.UpdateHome(home.ID, HomeInput{Name: "Renamed", Address: "Via Roma 1"})
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed" || updated.Address != "Via Roma 1" {
			t.Errorf("unexpected home after update: %+v", updated)
		}
	})

	t.Run("soft_delete_hides_home", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHomeService(db)
		home := testutil.CreateTestHome(t, db)
		testutil.CreateTestHome(t, db)

		testutil.AssertNoError(t, svc.DeleteHome(home.ID))

		_, err := svc.GetHome(home.ID)
		testutil.AssertAppError(t, err, "HOME_NOT_FOUND")
		homes, err := svc.ListHomes()
		testutil.AssertNoError(t, err)
		if len(homes) != 1 {
			t.Errorf("expected 1 live home, got %d", len(homes))
		}

		var raw models.Home
		if err := db.First(&raw, "id = ?", home.ID).Error; err != nil {
			t.Fatalf("row should still exist: %v", err)
		}
		if !raw.IsDeleted {
			t.Error("expected is_deleted to be set")
		}

		testutil.AssertAppError(t, svc.DeleteHome(home.ID), "HOME_NOT_FOUND")
	})
}

func TestDeleteHomeHidesItsRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	homes := NewHomeService(db)
	areas := NewAreaService(db)
	rooms := NewRoomService(db)
	purchases := NewPurchaseService(db, nil)

	home := testutil.CreateTestHome(t, db)
	area := testutil.CreateTestArea(t, db, &home.ID)
	room := testutil.CreateTestRoom(t, db, area.ID)
	supplier := testutil.CreateTestSupplier(t, db)
	purchase := testutil.CreateTestPurchase(t, db, supplier.ID, "100", func(p *models.Purchase) { p.HomeID = &home.ID })
	loose := testutil.CreateTestArea(t, db, nil)
	testutil.CreateTestPurchase(t, db, supplier.ID, "50")

	testutil.AssertNoError(t, homes.DeleteHome(home.ID))

	listed, err := areas.ListAreas(nil)
	testutil.AssertNoError(t, err)
	if len(listed) != 1 || listed[0].ID != loose.ID {
		t.Errorf("expected only the area without a home, got %+v", listed)
	}
	_, err = areas.GetArea(area.ID)
	testutil.AssertAppError(t, err, "AREA_NOT_FOUND")

	roomList, err := rooms.ListRooms(nil)
	testutil.AssertNoError(t, err)
	if len(roomList) != 0 {
		t.Errorf("expected no rooms, got %d", len(roomList))
	}
	_, err = rooms.GetRoom(room.ID)
	testutil.AssertAppError(t, err, "ROOM_NOT_FOUND")
	_, err = rooms.CreateRoom(RoomInput{AreaID: area.ID, Name: "Pantry"})
	testutil.AssertFieldError(t, err, "area_id")

	page, err := purchases.ListPurchases(pagination.PageRequest{}, PurchaseFilter{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 1 || len(page.Data) != 1 || page.Data[0].ID == purchase.ID {
		t.Errorf("expected only the purchase without a home, got %d", page.TotalItems)
	}
	_, err = purchases.GetPurchase(purchase.ID)
	testutil.AssertAppError(t, err, "PURCHASE_NOT_FOUND")

	in := purchaseInput(supplier.ID, item("Tiles", "1", "10"))
	in.TotalAmount = testutil.Dec("10")
	in.AreaID = &area.ID
	_, err = purchases.CreatePurchase(in)
	testutil.AssertFieldError(t, err, "area_id")
}

func TestHomeImages(t *testing.T) {
	t.Run("add_list_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHomeService(db)
		home := testutil.CreateTestHome(t, db)

		second, err := svc.AddImage(home.ID, HomeImageInput{URL: "https://img.test/2.jpg", SortOrder: 2})
		testutil.AssertNoError(t, err)
		_, err = svc.AddImage(home.ID, HomeImageInput{URL: "https://img.test/1.jpg", SortOrder: 1})
		testutil.AssertNoError(t, err)

		images, err := svc.ListImages(home.ID)
		testutil.AssertNoError(t, err)
		if len(images) != 2 || images[0].URL != "https://img.test/1.jpg" {
			t.Fatalf("expected images ordered by sort_order, got %+v", images)
		}

		testutil.AssertNoError(t, svc.DeleteImage(home.ID, second.ID))
		testutil.AssertAppError(t, svc.DeleteImage(home.ID, second.ID), "HOME_IMAGE_NOT_FOUND")
	})

	t.Run("image_of_other_home", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHomeService(db)
		home := testutil.CreateTestHome(t, db)
		other := testutil.CreateTestHome(t, db)

		img, err := svc.AddImage(home.ID, HomeImageInput{URL: "https://img.test/a.jpg"})
		testutil.AssertNoError(t, err)
		testutil.AssertAppError(t, svc.DeleteImage(other.ID, img.ID), "HOME_IMAGE_NOT_FOUND")
	})

	t.Run("deleted_home", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHomeService(db)
		home := testutil.CreateTestHome(t, db)
		testutil.AssertNoError(t, svc.DeleteHome(home.ID))

		_, err := svc.AddImage(home.ID, HomeImageInput{URL: "https://img.test/a.jpg"})
		testutil.AssertAppError(t, err, "HOME_NOT_FOUND")
	})
}
