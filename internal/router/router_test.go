package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"homeledger/internal/auth"
	"homeledger/internal/i18n"
	"homeledger/internal/logger"
	"homeledger/internal/metrics"
	"homeledger/internal/services"
	"homeledger/internal/testutil"
	"homeledger/internal/validator"
)

const testSecret = "router-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// testApp holds the full application stack backed by an in-memory SQLite.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	m := metrics.New("homeledger_test")
	translator, err := i18n.New("en")
	if err != nil {
		t.Fatalf("failed to load translations: %v", err)
	}

	r := New(Deps{
		Services: Services{
			Access:     services.NewAccessService(db),
			Backfill:   services.NewBackfillService(db, m),
			Audit:      services.NewAuditService(db, m),
			Home:       services.NewHomeService(db),
			Area:       services.NewAreaService(db),
			Room:       services.NewRoomService(db),
			Supplier:   services.NewSupplierService(db),
			Purchase:   services.NewPurchaseService(db, m),
			Extraction: services.NewExtractionService(db, nil, m),
			Attachment: services.NewAttachmentService(db),
			Category:   services.NewCategoryService(db),
			Tag:        services.NewTagService(db),
			Report:     services.NewReportService(db),
		},
		Verifier:   auth.NewVerifier(testSecret, "", ""),
		Translator: translator,
		Metrics:    m,
	})
	return &testApp{DB: db, Router: r}
}

// token signs an identity token the way the identity provider would.
func token(t *testing.T, subject, email string) string {
	t.Helper()
	claims := auth.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func (app *testApp) request(method, path, body, tok string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

// create posts body and returns the id of the object stored under key.
func (app *testApp) create(t *testing.T, path, key, body, tok string) string {
	t.Helper()
	rec := app.request("POST", path, body, tok)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST %s failed: %d %s", path, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)[key].(map[string]interface{})["id"].(string)
}

// bootstrapAdmin claims the empty install and returns the admin's token.
func (app *testApp) bootstrapAdmin(t *testing.T) string {
	t.Helper()
	tok := token(t, "idp|admin", "admin@example.com")
	rec := app.request("POST", "/api/v1/admin/bootstrap", "", tok)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bootstrap failed: %d %s", rec.Code, rec.Body.String())
	}
	return tok
}

// invite creates a pending user and returns a token for their identity.
func (app *testApp) invite(t *testing.T, adminTok, email, role string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"role":%q}`, email, role)
	app.create(t, "/api/v1/admin/users", "user", body, adminTok)
	return token(t, "idp|"+email, email)
}

func TestHealthAndMetrics(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = app.request("GET", "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "homeledger_test_http_requests_total") {
		t.Error("expected request counter in metrics output")
	}
}

func TestAccessFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("no token", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/me", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("unknown identity before bootstrap", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/me", "", token(t, "idp|stranger", "stranger@example.com"))
		if rec.Code != http.StatusForbidden || errorCode(t, rec) != "USER_NOT_PROVISIONED" {
			t.Fatalf("expected USER_NOT_PROVISIONED, got %d %s", rec.Code, rec.Body.String())
		}
	})

	adminTok := app.bootstrapAdmin(t)

	t.Run("bootstrap only once", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/admin/bootstrap", "", token(t, "idp|late", "late@example.com"))
		if rec.Code != http.StatusForbidden || errorCode(t, rec) != "BOOTSTRAP_CLOSED" {
			t.Fatalf("expected BOOTSTRAP_CLOSED, got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("admin resolves", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/me", "", adminTok)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["role"] != "admin" || user["email"] != "admin@example.com" {
			t.Errorf("unexpected user: %v", user)
		}
	})

	viewerTok := app.invite(t, adminTok, "Viewer@Example.com", "viewer")
	editorTok := app.invite(t, adminTok, "editor@example.com", "editor")

	t.Run("invited viewer is linked on first request", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/me", "", viewerTok)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
		}
		if role := parseJSON(t, rec)["user"].(map[string]interface{})["role"]; role != "viewer" {
			t.Errorf("expected viewer, got %v", role)
		}
	})

	t.Run("viewer can read but not write", func(t *testing.T) {
		if rec := app.request("GET", "/api/v1/homes", "", viewerTok); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		rec := app.request("POST", "/api/v1/homes", `{"name":"Casa"}`, viewerTok)
		if rec.Code != http.StatusForbidden || errorCode(t, rec) != "FORBIDDEN" {
			t.Fatalf("expected FORBIDDEN, got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("editor cannot manage categories or users", func(t *testing.T) {
		if rec := app.request("POST", "/api/v1/categories", `{"name":"garden","label":"Garden"}`, editorTok); rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if rec := app.request("GET", "/api/v1/admin/users", "", editorTok); rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if rec := app.request("GET", "/api/v1/categories", "", editorTok); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("error messages follow Accept-Language", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/homes", `{"name":"Casa"}`, viewerTok, "Accept-Language", "it-IT,it;q=0.9")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		msg := parseJSON(t, rec)["error"].(map[string]interface{})["message"]
		if msg != "Accesso negato" {
			t.Errorf("expected Italian message, got %v", msg)
		}
	})

	t.Run("deactivated users are refused", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/admin/users", "", adminTok)
		var editorID string
		for _, u := range parseJSON(t, rec)["users"].([]interface{}) {
			user := u.(map[string]interface{})
			if user["email"] == "editor@example.com" {
				editorID = user["id"].(string)
			}
		}
		if editorID == "" {
			t.Fatal("editor not listed")
		}

		rec = app.request("PUT", "/api/v1/admin/users/"+editorID, `{"is_active":false}`, adminTok)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
		}
		rec = app.request("GET", "/api/v1/me", "", editorTok)
		if rec.Code != http.StatusForbidden || errorCode(t, rec) != "ACCOUNT_INACTIVE" {
			t.Fatalf("expected ACCOUNT_INACTIVE, got %d %s", rec.Code, rec.Body.String())
		}
	})
}

func TestPurchaseFlow(t *testing.T) {
	app := setupApp(t)
	adminTok := app.bootstrapAdmin(t)
	tok := app.invite(t, adminTok, "editor@example.com", "editor")

	homeID := app.create(t, "/api/v1/homes", "home", `{"name":"Seaside house","name_secondary":"Casa al mare"}`, tok)
	areaID := app.create(t, "/api/v1/areas", "area", fmt.Sprintf(`{"home_id":%q,"name":"Ground floor","budget":"1000"}`, homeID), tok)
	roomID := app.create(t, "/api/v1/rooms", "room", fmt.Sprintf(`{"area_id":%q,"name":"Kitchen","budget":"400"}`, areaID), tok)
	supplierID := app.create(t, "/api/v1/suppliers", "supplier", `{"type":"company","company_name":"Marble World"}`, tok)

	purchase := fmt.Sprintf(`{
		"supplier_id":%q,
		"home_id":%q,
		"date":"2024-05-10T00:00:00Z",
		"total_amount":"60.00",
		"purchase_type":"materials",
		"payment_status":"paid",
		"line_items":[
			{"name":"Tiles","room_id":%q,"quantity":"2","unit_price":"19.99"},
			{"name":"Grout","area_id":%q,"quantity":"1","unit_price":"10.005"}
		]
	}`, supplierID, homeID, roomID, areaID)
	purchaseID := app.create(t, "/api/v1/purchases", "purchase", purchase, tok)

	t.Run("line totals are recomputed", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/purchases/"+purchaseID, "", tok)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		items := parseJSON(t, rec)["purchase"].(map[string]interface{})["line_items"].([]interface{})
		if len(items) != 2 {
			t.Fatalf("expected 2 line items, got %d", len(items))
		}
		totals := map[string]interface{}{}
		for _, it := range items {
			item := it.(map[string]interface{})
			totals[item["name"].(string)] = item["total_price"]
		}
		if totals["Tiles"] != "39.98" || totals["Grout"] != "10.01" {
			t.Errorf("unexpected totals: %v", totals)
		}
	})

	t.Run("invalid references are reported together", func(t *testing.T) {
		body := fmt.Sprintf(`{"supplier_id":%q,"date":"2024-05-10T00:00:00Z","total_amount":"-1","purchase_type":"materials","payment_status":"paid"}`, roomID)
		rec := app.request("POST", "/api/v1/purchases", body, tok)
		if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %d %s", rec.Code, rec.Body.String())
		}
		fields := parseJSON(t, rec)["error"].(map[string]interface{})["fields"].([]interface{})
		if len(fields) < 2 {
			t.Errorf("expected supplier and amount errors, got %v", fields)
		}
	})

	t.Run("list filters by room through line items", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/purchases?room_id="+roomID, "", tok)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if total := parseJSON(t, rec)["total_items"]; total != float64(1) {
			t.Errorf("expected 1 purchase, got %v", total)
		}
	})

	t.Run("summary counts the purchase", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/reports/summary?home_id="+homeID, "", tok)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
		}
		summary := parseJSON(t, rec)["summary"].(map[string]interface{})
		if summary["total"] != "60" || summary["purchase_count"] != float64(1) {
			t.Errorf("unexpected summary: %v", summary)
		}
	})

	t.Run("area with rooms cannot be deleted", func(t *testing.T) {
		rec := app.request("DELETE", "/api/v1/areas/"+areaID, "", tok)
		if rec.Code != http.StatusConflict || errorCode(t, rec) != "AREA_HAS_ROOMS" {
			t.Fatalf("expected AREA_HAS_ROOMS, got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("extraction is unavailable without a collaborator", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/purchases/extract", "", tok)
		if rec.Code == http.StatusOK {
			t.Fatalf("expected an error, got 200")
		}
	})

	t.Run("deleted purchase disappears", func(t *testing.T) {
		if rec := app.request("DELETE", "/api/v1/purchases/"+purchaseID, "", tok); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		rec := app.request("GET", "/api/v1/purchases/"+purchaseID, "", tok)
		if rec.Code != http.StatusNotFound || errorCode(t, rec) != "PURCHASE_NOT_FOUND" {
			t.Fatalf("expected PURCHASE_NOT_FOUND, got %d", rec.Code)
		}
	})

	t.Run("mutations are audited", func(t *testing.T) {
		var count int64
		if err := app.DB.Table("audit_logs").Count(&count).Error; err != nil {
			t.Fatalf("count audit logs: %v", err)
		}
		// bootstrap, invite, home, area, room, supplier, purchase create and delete
		if count < 8 {
			t.Errorf("expected at least 8 audit rows, got %d", count)
		}
	})
}
