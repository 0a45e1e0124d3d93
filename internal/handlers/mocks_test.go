package handlers

import (
	"context"

	"homeledger/internal/auth"
	"homeledger/internal/extraction"
	"homeledger/internal/models"
	"homeledger/internal/pagination"
	"homeledger/internal/services"
	"homeledger/internal/spending"
)

// --- mock audit service ---

type auditEntry struct {
	actorID, action, resourceType, resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(actorID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{actorID, action, resourceType, resourceID})
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- mock access service ---

type mockAccessService struct {
	resolveCallerFn func(identity *auth.Identity) (*models.AppUser, error)
	bootstrapFn     func(identity *auth.Identity) (*models.AppUser, error)
	inviteUserFn    func(in services.InviteInput) (*models.AppUser, error)
	listUsersFn     func() ([]models.AppUser, error)
	updateUserFn    func(userID string, in services.UpdateUserInput) (*models.AppUser, error)
}

func (m *mockAccessService) ResolveCaller(identity *auth.Identity) (*models.AppUser, error) {
	if m.resolveCallerFn != nil {
		return m.resolveCallerFn(identity)
	}
	return &models.AppUser{}, nil
}

func (m *mockAccessService) Bootstrap(identity *auth.Identity) (*models.AppUser, error) {
	if m.bootstrapFn != nil {
		return m.bootstrapFn(identity)
	}
	return &models.AppUser{}, nil
}

func (m *mockAccessService) InviteUser(in services.InviteInput) (*models.AppUser, error) {
	if m.inviteUserFn != nil {
		return m.inviteUserFn(in)
	}
	return &models.AppUser{}, nil
}

func (m *mockAccessService) ListUsers() ([]models.AppUser, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn()
	}
	return []models.AppUser{}, nil
}

func (m *mockAccessService) UpdateUser(userID string, in services.UpdateUserInput) (*models.AppUser, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(userID, in)
	}
	return &models.AppUser{}, nil
}

var _ services.AccessServicer = (*mockAccessService)(nil)

// --- mock backfill service ---

type mockBackfillService struct {
	backfillFn func(ctx context.Context, batchSize int) (*services.BackfillResult, error)
}

func (m *mockBackfillService) BackfillHomeIDs(ctx context.Context, batchSize int) (*services.BackfillResult, error) {
	if m.backfillFn != nil {
		return m.backfillFn(ctx, batchSize)
	}
	return &services.BackfillResult{AmbiguousIDs: []string{}, FailedIDs: []string{}}, nil
}

var _ services.BackfillServicer = (*mockBackfillService)(nil)

// --- mock home service ---

type mockHomeService struct {
	createHomeFn  func(in services.HomeInput) (*models.Home, error)
	listHomesFn   func() ([]models.Home, error)
	getHomeFn     func(homeID string) (*models.Home, error)
	updateHomeFn  func(homeID string, in services.HomeInput) (*models.Home, error)
	deleteHomeFn  func(homeID string) error
	listImagesFn  func(homeID string) ([]models.HomeImage, error)
	addImageFn    func(homeID string, in services.HomeImageInput) (*models.HomeImage, error)
	deleteImageFn func(homeID, imageID string) error
}

func (m *mockHomeService) CreateHome(in services.HomeInput) (*models.Home, error) {
	if m.createHomeFn != nil {
		return m.createHomeFn(in)
	}
	return &models.Home{}, nil
}

func (m *mockHomeService) ListHomes() ([]models.Home, error) {
	if m.listHomesFn != nil {
		return m.listHomesFn()
	}
	return []models.Home{}, nil
}

func (m *mockHomeService) GetHome(homeID string) (*models.Home, error) {
	if m.getHomeFn != nil {
		return m.getHomeFn(homeID)
	}
	return &models.Home{}, nil
}

func (m *mockHomeService) UpdateHome(homeID string, in services.HomeInput) (*models.Home, error) {
	if m.updateHomeFn != nil {
		return m.updateHomeFn(homeID, in)
	}
	return &models.Home{}, nil
}

func (m *mockHomeService) DeleteHome(homeID string) error {
	if m.deleteHomeFn != nil {
		return m.deleteHomeFn(homeID)
	}
	return nil
}

func (m *mockHomeService) ListImages(homeID string) ([]models.HomeImage, error) {
	if m.listImagesFn != nil {
		return m.listImagesFn(homeID)
	}
	return []models.HomeImage{}, nil
}

func (m *mockHomeService) AddImage(homeID string, in services.HomeImageInput) (*models.HomeImage, error) {
	if m.addImageFn != nil {
		return m.addImageFn(homeID, in)
	}
	return &models.HomeImage{}, nil
}

func (m *mockHomeService) DeleteImage(homeID, imageID string) error {
	if m.deleteImageFn != nil {
		return m.deleteImageFn(homeID, imageID)
	}
	return nil
}

var _ services.HomeServicer = (*mockHomeService)(nil)

// --- mock area service ---

type mockAreaService struct {
	createAreaFn    func(in services.AreaInput) (*models.Area, error)
	listAreasFn     func(homeID *string) ([]models.Area, error)
	getAreaFn       func(areaID string) (*models.Area, error)
	updateAreaFn    func(areaID string, in services.AreaInput) (*models.Area, error)
	canDeleteAreaFn func(areaID string) error
	deleteAreaFn    func(areaID string) error
}

func (m *mockAreaService) CreateArea(in services.AreaInput) (*models.Area, error) {
	if m.createAreaFn != nil {
		return m.createAreaFn(in)
	}
	return &models.Area{}, nil
}

func (m *mockAreaService) ListAreas(homeID *string) ([]models.Area, error) {
	if m.listAreasFn != nil {
		return m.listAreasFn(homeID)
	}
	return []models.Area{}, nil
}

func (m *mockAreaService) GetArea(areaID string) (*models.Area, error) {
	if m.getAreaFn != nil {
		return m.getAreaFn(areaID)
	}
	return &models.Area{}, nil
}

func (m *mockAreaService) UpdateArea(areaID string, in services.AreaInput) (*models.Area, error) {
	if m.updateAreaFn != nil {
		return m.updateAreaFn(areaID, in)
	}
	return &models.Area{}, nil
}

func (m *mockAreaService) CanDeleteArea(areaID string) error {
	if m.canDeleteAreaFn != nil {
		return m.canDeleteAreaFn(areaID)
	}
	return nil
}

func (m *mockAreaService) DeleteArea(areaID string) error {
	if m.deleteAreaFn != nil {
		return m.deleteAreaFn(areaID)
	}
	return nil
}

var _ services.AreaServicer = (*mockAreaService)(nil)

// --- mock room service ---

type mockRoomService struct {
	createRoomFn func(in services.RoomInput) (*models.Room, error)
	listRoomsFn  func(areaID *string) ([]models.Room, error)
	getRoomFn    func(roomID string) (*models.Room, error)
	updateRoomFn func(roomID string, in services.RoomInput) (*models.Room, error)
	deleteRoomFn func(roomID string) error
}

func (m *mockRoomService) CreateRoom(in services.RoomInput) (*models.Room, error) {
	if m.createRoomFn != nil {
		return m.createRoomFn(in)
	}
	return &models.Room{}, nil
}

func (m *mockRoomService) ListRooms(areaID *string) ([]models.Room, error) {
	if m.listRoomsFn != nil {
		return m.listRoomsFn(areaID)
	}
	return []models.Room{}, nil
}

func (m *mockRoomService) GetRoom(roomID string) (*models.Room, error) {
	if m.getRoomFn != nil {
		return m.getRoomFn(roomID)
	}
	return &models.Room{}, nil
}

func (m *mockRoomService) UpdateRoom(roomID string, in services.RoomInput) (*models.Room, error) {
	if m.updateRoomFn != nil {
		return m.updateRoomFn(roomID, in)
	}
	return &models.Room{}, nil
}

func (m *mockRoomService) DeleteRoom(roomID string) error {
	if m.deleteRoomFn != nil {
		return m.deleteRoomFn(roomID)
	}
	return nil
}

var _ services.RoomServicer = (*mockRoomService)(nil)

// --- mock supplier service ---

type mockSupplierService struct {
	createSupplierFn func(in services.SupplierInput) (*models.Supplier, error)
	listSuppliersFn  func(page pagination.PageRequest, search string) (*pagination.PageResponse[models.Supplier], error)
	getSupplierFn    func(supplierID string) (*models.Supplier, error)
	updateSupplierFn func(supplierID string, in services.SupplierInput) (*models.Supplier, error)
	deleteSupplierFn func(supplierID string) error
}

func (m *mockSupplierService) CreateSupplier(in services.SupplierInput) (*models.Supplier, error) {
	if m.createSupplierFn != nil {
		return m.createSupplierFn(in)
	}
	return &models.Supplier{}, nil
}

func (m *mockSupplierService) ListSuppliers(page pagination.PageRequest, search string) (*pagination.PageResponse[models.Supplier], error) {
	if m.listSuppliersFn != nil {
		return m.listSuppliersFn(page, search)
	}
	resp := pagination.NewPageResponse([]models.Supplier{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockSupplierService) GetSupplier(supplierID string) (*models.Supplier, error) {
	if m.getSupplierFn != nil {
		return m.getSupplierFn(supplierID)
	}
	return &models.Supplier{}, nil
}

func (m *mockSupplierService) UpdateSupplier(supplierID string, in services.SupplierInput) (*models.Supplier, error) {
	if m.updateSupplierFn != nil {
		return m.updateSupplierFn(supplierID, in)
	}
	return &models.Supplier{}, nil
}

func (m *mockSupplierService) DeleteSupplier(supplierID string) error {
	if m.deleteSupplierFn != nil {
		return m.deleteSupplierFn(supplierID)
	}
	return nil
}

var _ services.SupplierServicer = (*mockSupplierService)(nil)

// --- mock purchase service ---

type mockPurchaseService struct {
	createPurchaseFn func(in services.PurchaseInput) (*models.Purchase, error)
	listPurchasesFn  func(page pagination.PageRequest, filter services.PurchaseFilter) (*pagination.PageResponse[models.Purchase], error)
	getPurchaseFn    func(purchaseID string) (*models.Purchase, error)
	updatePurchaseFn func(purchaseID string, in services.PurchaseInput) (*models.Purchase, error)
	deletePurchaseFn func(purchaseID string) error
}

func (m *mockPurchaseService) CreatePurchase(in services.PurchaseInput) (*models.Purchase, error) {
	if m.createPurchaseFn != nil {
		return m.createPurchaseFn(in)
	}
	return &models.Purchase{}, nil
}

func (m *mockPurchaseService) ListPurchases(page pagination.PageRequest, filter services.PurchaseFilter) (*pagination.PageResponse[models.Purchase], error) {
	if m.listPurchasesFn != nil {
		return m.listPurchasesFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Purchase{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockPurchaseService) GetPurchase(purchaseID string) (*models.Purchase, error) {
	if m.getPurchaseFn != nil {
		return m.getPurchaseFn(purchaseID)
	}
	return &models.Purchase{}, nil
}

func (m *mockPurchaseService) UpdatePurchase(purchaseID string, in services.PurchaseInput) (*models.Purchase, error) {
	if m.updatePurchaseFn != nil {
		return m.updatePurchaseFn(purchaseID, in)
	}
	return &models.Purchase{}, nil
}

func (m *mockPurchaseService) DeletePurchase(purchaseID string) error {
	if m.deletePurchaseFn != nil {
		return m.deletePurchaseFn(purchaseID)
	}
	return nil
}

var _ services.PurchaseServicer = (*mockPurchaseService)(nil)

// --- mock extraction service ---

type mockExtractionService struct {
	extractFn func(ctx context.Context, image []byte, contentType string) (*extraction.Suggestion, error)
}

func (m *mockExtractionService) ExtractInvoice(ctx context.Context, image []byte, contentType string) (*extraction.Suggestion, error) {
	if m.extractFn != nil {
		return m.extractFn(ctx, image, contentType)
	}
	return &extraction.Suggestion{}, nil
}

var _ services.ExtractionServicer = (*mockExtractionService)(nil)

// --- mock attachment service ---

type mockAttachmentService struct {
	createAttachmentFn func(in services.AttachmentInput) (*models.Attachment, error)
	listFn             func(purchaseID string) ([]models.Attachment, error)
	deleteFn           func(attachmentID string) error
}

func (m *mockAttachmentService) CreateAttachment(in services.AttachmentInput) (*models.Attachment, error) {
	if m.createAttachmentFn != nil {
		return m.createAttachmentFn(in)
	}
	return &models.Attachment{}, nil
}

func (m *mockAttachmentService) ListPurchaseAttachments(purchaseID string) ([]models.Attachment, error) {
	if m.listFn != nil {
		return m.listFn(purchaseID)
	}
	return []models.Attachment{}, nil
}

func (m *mockAttachmentService) DeleteAttachment(attachmentID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(attachmentID)
	}
	return nil
}

var _ services.AttachmentServicer = (*mockAttachmentService)(nil)

// --- mock category service ---

type mockCategoryService struct {
	listFn   func() ([]models.ExpenseCategory, error)
	createFn func(in services.CategoryInput) (*models.ExpenseCategory, error)
	updateFn func(categoryID string, in services.CategoryInput) (*models.ExpenseCategory, error)
	deleteFn func(categoryID string) error
}

func (m *mockCategoryService) ListCategories() ([]models.ExpenseCategory, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []models.ExpenseCategory{}, nil
}

func (m *mockCategoryService) CreateCategory(in services.CategoryInput) (*models.ExpenseCategory, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return &models.ExpenseCategory{}, nil
}

func (m *mockCategoryService) UpdateCategory(categoryID string, in services.CategoryInput) (*models.ExpenseCategory, error) {
	if m.updateFn != nil {
		return m.updateFn(categoryID, in)
	}
	return &models.ExpenseCategory{}, nil
}

func (m *mockCategoryService) DeleteCategory(categoryID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- mock tag service ---

type mockTagService struct {
	listFn   func() ([]models.Tag, error)
	getFn    func(tagID string) (*models.Tag, error)
	createFn func(in services.TagInput) (*models.Tag, error)
	updateFn func(tagID string, in services.TagInput) (*models.Tag, error)
	deleteFn func(tagID string) error
}

func (m *mockTagService) ListTags() ([]models.Tag, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []models.Tag{}, nil
}

func (m *mockTagService) GetTag(tagID string) (*models.Tag, error) {
	if m.getFn != nil {
		return m.getFn(tagID)
	}
	return &models.Tag{}, nil
}

func (m *mockTagService) CreateTag(in services.TagInput) (*models.Tag, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return &models.Tag{}, nil
}

func (m *mockTagService) UpdateTag(tagID string, in services.TagInput) (*models.Tag, error) {
	if m.updateFn != nil {
		return m.updateFn(tagID, in)
	}
	return &models.Tag{}, nil
}

func (m *mockTagService) DeleteTag(tagID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(tagID)
	}
	return nil
}

var _ services.TagServicer = (*mockTagService)(nil)

// --- mock report service ---

type mockReportService struct {
	summaryFn    func(ctx context.Context, homeID *string) (*services.SpendSummary, error)
	areasFn      func(ctx context.Context, homeID *string) ([]services.AreaReport, error)
	documentsFn  func(ctx context.Context, windowDays int) ([]spending.ExpiringDocument, error)
	warrantiesFn func(ctx context.Context, windowDays int) ([]spending.ExpiringWarranty, error)
}

func (m *mockReportService) Summary(ctx context.Context, homeID *string) (*services.SpendSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, homeID)
	}
	return &services.SpendSummary{}, nil
}

func (m *mockReportService) AreaBreakdown(ctx context.Context, homeID *string) ([]services.AreaReport, error) {
	if m.areasFn != nil {
		return m.areasFn(ctx, homeID)
	}
	return []services.AreaReport{}, nil
}

func (m *mockReportService) ExpiringDocuments(ctx context.Context, windowDays int) ([]spending.ExpiringDocument, error) {
	if m.documentsFn != nil {
		return m.documentsFn(ctx, windowDays)
	}
	return []spending.ExpiringDocument{}, nil
}

func (m *mockReportService) ExpiringWarranties(ctx context.Context, windowDays int) ([]spending.ExpiringWarranty, error) {
	if m.warrantiesFn != nil {
		return m.warrantiesFn(ctx, windowDays)
	}
	return []spending.ExpiringWarranty{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)
