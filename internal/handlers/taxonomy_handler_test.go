package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/pagination"
	"homeledger/internal/services"
)

func TestSupplierHandler(t *testing.T) {
	setup := func(svc *mockSupplierService, audit *mockAuditService) *gin.Engine {
		r := gin.New()
		h := NewSupplierHandler(svc, audit)
		authed := r.Group("", injectCaller(models.RoleEditor))
		authed.GET("/suppliers", h.ListSuppliers)
		authed.POST("/suppliers", h.CreateSupplier)
		authed.DELETE("/suppliers/:id", h.DeleteSupplier)
		return r
	}

	t.Run("list passes search and page", func(t *testing.T) {
		var (
			gotPage   pagination.PageRequest
			gotSearch string
		)
		svc := &mockSupplierService{listSuppliersFn: func(page pagination.PageRequest, search string) (*pagination.PageResponse[models.Supplier], error) {
			gotPage, gotSearch = page, search
			resp := pagination.NewPageResponse([]models.Supplier{{CompanyName: "Marble World"}}, 1, 20, 1)
			return &resp, nil
		}}
		rec := doRequest(setup(svc, nil), "GET", "/suppliers?q=marble&sort=name", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotSearch != "marble" || gotPage.Sort != "name" {
			t.Errorf("unexpected args: %q %+v", gotSearch, gotPage)
		}
		if total := parseJSON(t, rec)["total_items"]; total != float64(1) {
			t.Errorf("expected total_items 1, got %v", total)
		}
	})

	t.Run("create audits display name", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockSupplierService{createSupplierFn: func(in services.SupplierInput) (*models.Supplier, error) {
			return &models.Supplier{Base: models.Base{ID: otherID}, Type: in.Type, FirstName: in.FirstName, LastName: in.LastName}, nil
		}}
		rec := doRequest(setup(svc, audit), "POST", "/suppliers", `{"type":"individual","first_name":"Ada","last_name":"Rossi"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_SUPPLIER" {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	t.Run("delete of unknown supplier returns 404", func(t *testing.T) {
		svc := &mockSupplierService{deleteSupplierFn: func(string) error { return apperrors.ErrSupplierNotFound }}
		rec := doRequest(setup(svc, &mockAuditService{}), "DELETE", "/suppliers/"+otherID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SUPPLIER_NOT_FOUND")
	})
}

func TestCategoryHandler(t *testing.T) {
	setup := func(svc *mockCategoryService, audit *mockAuditService) *gin.Engine {
		r := gin.New()
		h := NewCategoryHandler(svc, audit)
		authed := r.Group("", injectCaller(models.RoleAdmin))
		authed.GET("/categories", h.ListCategories)
		authed.POST("/categories", h.CreateCategory)
		authed.PUT("/categories/:id", h.UpdateCategory)
		authed.DELETE("/categories/:id", h.DeleteCategory)
		return r
	}

	t.Run("list", func(t *testing.T) {
		svc := &mockCategoryService{listFn: func() ([]models.ExpenseCategory, error) {
			return []models.ExpenseCategory{{Name: "flooring", Label: "Flooring"}}, nil
		}}
		rec := doRequest(setup(svc, nil), "GET", "/categories", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if cats := parseJSON(t, rec)["categories"].([]interface{}); len(cats) != 1 {
			t.Errorf("expected 1 category, got %d", len(cats))
		}
	})

	t.Run("duplicate name returns 409", func(t *testing.T) {
		svc := &mockCategoryService{createFn: func(services.CategoryInput) (*models.ExpenseCategory, error) {
			return nil, apperrors.ErrDuplicateCategory
		}}
		audit := &mockAuditService{}
		rec := doRequest(setup(svc, audit), "POST", "/categories", `{"name":"flooring","label":"Flooring"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_CATEGORY")
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entries, got %+v", audit.entries)
		}
	})

	t.Run("rename passes id", func(t *testing.T) {
		var gotID string
		svc := &mockCategoryService{updateFn: func(id string, in services.CategoryInput) (*models.ExpenseCategory, error) {
			gotID = id
			return &models.ExpenseCategory{Base: models.Base{ID: id}, Name: in.Name}, nil
		}}
		rec := doRequest(setup(svc, &mockAuditService{}), "PUT", "/categories/"+otherID, `{"name":"floors","label":"Floors"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != otherID {
			t.Errorf("expected id %s, got %s", otherID, gotID)
		}
	})

	t.Run("in use returns 409", func(t *testing.T) {
		svc := &mockCategoryService{deleteFn: func(string) error { return apperrors.ErrCategoryInUse }}
		rec := doRequest(setup(svc, &mockAuditService{}), "DELETE", "/categories/"+otherID, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_IN_USE")
	})
}

func TestTagHandler(t *testing.T) {
	setup := func(svc *mockTagService, audit *mockAuditService) *gin.Engine {
		r := gin.New()
		h := NewTagHandler(svc, audit)
		authed := r.Group("", injectCaller(models.RoleEditor))
		authed.GET("/tags/:id", h.GetTag)
		authed.POST("/tags", h.CreateTag)
		authed.DELETE("/tags/:id", h.DeleteTag)
		return r
	}

	t.Run("create", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockTagService{createFn: func(in services.TagInput) (*models.Tag, error) {
			return &models.Tag{Base: models.Base{ID: otherID}, Name: in.Name}, nil
		}}
		rec := doRequest(setup(svc, audit), "POST", "/tags", `{"name":"Kitchen refit"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		tag := parseJSON(t, rec)["tag"].(map[string]interface{})
		if tag["name"] != "Kitchen refit" {
			t.Errorf("unexpected tag: %v", tag)
		}
		if len(audit.entries) != 1 || audit.entries[0].resourceID != otherID {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	t.Run("duplicate returns 409", func(t *testing.T) {
		svc := &mockTagService{createFn: func(services.TagInput) (*models.Tag, error) { return nil, apperrors.ErrDuplicateTag }}
		rec := doRequest(setup(svc, &mockAuditService{}), "POST", "/tags", `{"name":"kitchen REFIT"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("get unknown returns 404", func(t *testing.T) {
		svc := &mockTagService{getFn: func(string) (*models.Tag, error) { return nil, apperrors.ErrTagNotFound }}
		rec := doRequest(setup(svc, nil), "GET", "/tags/"+otherID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TAG_NOT_FOUND")
	})
}
