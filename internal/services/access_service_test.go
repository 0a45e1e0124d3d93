package services

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"homeledger/internal/auth"
	"homeledger/internal/models"
	"homeledger/internal/testutil"
)

func TestResolveCaller(t *testing.T) {
	t.Run("linked_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		user := testutil.CreateTestUser(t, db, models.RoleEditor)

		got, err := svc.ResolveCaller(&auth.Identity{SubjectID: user.AuthSubjectID, Email: "someone-else@test.com"})
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}
		if got.LastSeenAt == nil {
			t.Error("expected last_seen_at on the returned user")
		}
		var stored models.AppUser
		db.First(&stored, "id = ?", user.ID)
		if stored.LastSeenAt == nil {
			t.Error("expected last_seen_at to be stored")
		}
	})

	t.Run("rebinds_pending_invite", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		pending := testutil.CreatePendingUser(t, db, "invitee@test.com", models.RoleViewer)

		got, err := svc.ResolveCaller(&auth.Identity{SubjectID: "idp|real", Email: "Invitee@Test.com", Name: "Invitee"})
		testutil.AssertNoError(t, err)
		if got.ID != pending.ID {
			t.Fatalf("expected pending user %s to be linked, got %s", pending.ID, got.ID)
		}
		if got.AuthSubjectID != "idp|real" {
			t.Errorf("expected subject idp|real, got %s", got.AuthSubjectID)
		}
		if got.Name != "Invitee" {
			t.Errorf("expected name from identity, got %q", got.Name)
		}
		if got.LastSeenAt == nil {
			t.Error("expected last_seen_at after linking")
		}
	})

	t.Run("rebinding_twice_is_a_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		testutil.CreatePendingUser(t, db, "invitee@test.com", models.RoleViewer)
		identity := &auth.Identity{SubjectID: "idp|real", Email: "invitee@test.com"}

		first, err := svc.ResolveCaller(identity)
		testutil.AssertNoError(t, err)
		second, err := svc.ResolveCaller(identity)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID || first.AuthSubjectID != second.AuthSubjectID || first.Role != second.Role {
			t.Errorf("second resolve changed state: %+v vs %+v", first, second)
		}
		var count int64
		db.Model(&models.AppUser{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 user, got %d", count)
		}
	})

	t.Run("email_owned_by_other_subject", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		user := testutil.CreateTestUser(t, db, models.RoleAdmin)

		_, err := svc.ResolveCaller(&auth.Identity{SubjectID: "idp|intruder", Email: user.Email})
		testutil.AssertAppError(t, err, "USER_NOT_PROVISIONED")
	})

	t.Run("unknown_identity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		_, err := svc.ResolveCaller(&auth.Identity{SubjectID: "idp|nobody", Email: "nobody@test.com"})
		testutil.AssertAppError(t, err, "USER_NOT_PROVISIONED")
	})

	t.Run("no_identity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		_, err := svc.ResolveCaller(nil)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})
}

func TestRequireRoleAndActive(t *testing.T) {
	viewer := &models.AppUser{Role: models.RoleViewer, IsActive: true}
	editor := &models.AppUser{Role: models.RoleEditor, IsActive: true}
	inactiveAdmin := &models.AppUser{Role: models.RoleAdmin, IsActive: false}

	testutil.AssertAppError(t, RequireRole(viewer, models.RoleEditor, models.RoleAdmin), "FORBIDDEN")
	testutil.AssertNoError(t, RequireRole(editor, models.RoleEditor, models.RoleAdmin))
	testutil.AssertAppError(t, RequireRole(nil, models.RoleViewer), "UNAUTHORIZED")
	testutil.AssertNoError(t, RequireActive(viewer))
	testutil.AssertAppError(t, RequireActive(inactiveAdmin), "ACCOUNT_INACTIVE")
}

func TestBootstrap(t *testing.T) {
	t.Run("first_caller_becomes_admin", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		admin, err := svc.Bootstrap(&auth.Identity{SubjectID: "idp|owner", Email: "Owner@Test.com", Name: "Owner"})
		testutil.AssertNoError(t, err)
		if admin.Role != models.RoleAdmin || !admin.IsActive {
			t.Errorf("expected active admin, got %+v", admin)
		}
		if admin.Email != "owner@test.com" {
			t.Errorf("expected lowercased email, got %s", admin.Email)
		}
	})

	t.Run("closed_once_users_exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		testutil.CreatePendingUser(t, db, "invitee@test.com", models.RoleViewer)

		_, err := svc.Bootstrap(&auth.Identity{SubjectID: "idp|late", Email: "late@test.com"})
		testutil.AssertAppError(t, err, "BOOTSTRAP_CLOSED")
	})

	t.Run("second_call_fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		_, err := svc.Bootstrap(&auth.Identity{SubjectID: "idp|owner", Email: "owner@test.com"})
		testutil.AssertNoError(t, err)
		_, err = svc.Bootstrap(&auth.Identity{SubjectID: "idp|owner", Email: "owner@test.com"})
		testutil.AssertAppError(t, err, "BOOTSTRAP_CLOSED")
		_, err = svc.Bootstrap(&auth.Identity{SubjectID: "idp|rival", Email: "rival@test.com"})
		testutil.AssertAppError(t, err, "BOOTSTRAP_CLOSED")
	})

	t.Run("concurrent_callers_yield_one_admin", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sqlDB, err := db.DB()
		testutil.AssertNoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		svc := NewAccessService(db)

		const callers = 5
		errs := make([]error, callers)
		var g errgroup.Group
		for i := 0; i < callers; i++ {
			i := i
			g.Go(func() error {
				_, errs[i] = svc.Bootstrap(&auth.Identity{
					SubjectID: fmt.Sprintf("idp|caller-%d", i),
					Email:     fmt.Sprintf("caller-%d@test.com", i),
				})
				return nil
			})
		}
		_ = g.Wait()

		won := 0
		for _, err := range errs {
			if err == nil {
				won++
				continue
			}
			testutil.AssertAppError(t, err, "BOOTSTRAP_CLOSED")
		}
		if won != 1 {
			t.Errorf("expected exactly one bootstrap to succeed, got %d", won)
		}
		var admins int64
		db.Model(&models.AppUser{}).Where("role = ?", models.RoleAdmin).Count(&admins)
		if admins != 1 {
			t.Errorf("expected 1 admin, got %d", admins)
		}
	})

	t.Run("lock_statement_per_dialect", func(t *testing.T) {
		if got := bootstrapLockSQL("postgres"); got != "LOCK TABLE app_users IN SHARE ROW EXCLUSIVE MODE" {
			t.Errorf("unexpected postgres lock statement %q", got)
		}
		if got := bootstrapLockSQL("sqlite"); got != "" {
			t.Errorf("expected no lock statement on sqlite, got %q", got)
		}
	})
}

func TestInviteUser(t *testing.T) {
	t.Run("creates_pending_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		user, err := svc.InviteUser(InviteInput{Email: " New@Test.com ", Role: models.RoleEditor})
		testutil.AssertNoError(t, err)
		if !user.IsPending() {
			t.Error("expected invited user to be pending")
		}
		if user.Email != "new@test.com" {
			t.Errorf("expected normalized email, got %q", user.Email)
		}
	})

	t.Run("pending_subjects_are_unique", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		a, err := svc.InviteUser(InviteInput{Email: "a@test.com", Role: models.RoleViewer})
		testutil.AssertNoError(t, err)
		b, err := svc.InviteUser(InviteInput{Email: "b@test.com", Role: models.RoleViewer})
		testutil.AssertNoError(t, err)
		if a.AuthSubjectID == b.AuthSubjectID {
			t.Error("expected distinct placeholder subjects")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		testutil.CreatePendingUser(t, db, "taken@test.com", models.RoleViewer)

		_, err := svc.InviteUser(InviteInput{Email: "TAKEN@test.com", Role: models.RoleEditor})
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		_, err := svc.InviteUser(InviteInput{Email: "not-an-email", Role: "owner"})
		testutil.AssertFieldError(t, err, "email")
		testutil.AssertFieldError(t, err, "role")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("last_admin_cannot_be_demoted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		admin := testutil.CreateTestUser(t, db, models.RoleAdmin)

		role := models.RoleViewer
		_, err := svc.UpdateUser(admin.ID, UpdateUserInput{Role: &role})
		testutil.AssertAppError(t, err, "LAST_ADMIN")
	})

	t.Run("last_admin_cannot_be_deactivated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		admin := testutil.CreateTestUser(t, db, models.RoleAdmin)

		_, err := svc.UpdateUser(admin.ID, UpdateUserInput{IsActive: testutil.Ptr(false)})
		testutil.AssertAppError(t, err, "LAST_ADMIN")
	})

	t.Run("demote_with_another_admin", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		admin := testutil.CreateTestUser(t, db, models.RoleAdmin)
		testutil.CreateTestUser(t, db, models.RoleAdmin)

		role := models.RoleEditor
		user, err := svc.UpdateUser(admin.ID, UpdateUserInput{Role: &role, Name: testutil.Ptr("Renamed")})
		testutil.AssertNoError(t, err)
		if user.Role != models.RoleEditor || user.Name != "Renamed" {
			t.Errorf("unexpected user after update: %+v", user)
		}
	})

	t.Run("deactivate_editor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		testutil.CreateTestUser(t, db, models.RoleAdmin)
		editor := testutil.CreateTestUser(t, db, models.RoleEditor)

		user, err := svc.UpdateUser(editor.ID, UpdateUserInput{IsActive: testutil.Ptr(false)})
		testutil.AssertNoError(t, err)
		if user.IsActive {
			t.Error("expected user to be inactive")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)

		_, err := svc.UpdateUser(missingID, UpdateUserInput{})
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestListUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccessService(db)
	testutil.CreateTestUser(t, db, models.RoleAdmin)
	testutil.CreatePendingUser(t, db, "invitee@test.com", models.RoleViewer)

	users, err := svc.ListUsers()
	testutil.AssertNoError(t, err)
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}
