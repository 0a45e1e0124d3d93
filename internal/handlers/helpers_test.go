package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"homeledger/internal/auth"
	"homeledger/internal/middleware"
	"homeledger/internal/models"
	"homeledger/internal/validator"
)

const (
	callerID = "0190c7e2-0000-7000-8000-0000000000aa"
	homeID   = "0190c7e2-0000-7000-8000-000000000001"
	areaID   = "0190c7e2-0000-7000-8000-000000000002"
	roomID   = "0190c7e2-0000-7000-8000-000000000003"
	otherID  = "0190c7e2-0000-7000-8000-000000000004"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectCaller(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, &auth.Identity{SubjectID: "idp|test", Email: "caller@test.com"})
		middleware.SetCaller(c, &models.AppUser{Base: models.Base{ID: callerID}, Role: role, IsActive: true})
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}

func errorFields(t *testing.T, result map[string]interface{}) []string {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	raw, _ := errObj["fields"].([]interface{})
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		out = append(out, f.(map[string]interface{})["field"].(string))
	}
	return out
}
