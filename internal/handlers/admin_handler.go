package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/middleware"
	"homeledger/internal/services"
)

// AdminHandler handles user management, first-run setup and maintenance.
type AdminHandler struct {
	accessService   services.AccessServicer
	backfillService services.BackfillServicer
	auditService    services.AuditServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(accessService services.AccessServicer, backfillService services.BackfillServicer, auditService services.AuditServicer) *AdminHandler {
	return &AdminHandler{accessService: accessService, backfillService: backfillService, auditService: auditService}
}

// Me returns the calling user.
// @Summary     Current user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.AppUser
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not provisioned or inactive"
// @Router      /me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": caller})
}

// Bootstrap makes the caller the first admin.
// @Summary     Create the first admin
// @Description Only allowed while no user exists.
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} models.AppUser
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Setup already completed"
// @Router      /admin/bootstrap [post]
func (h *AdminHandler) Bootstrap(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	user, err := h.accessService.Bootstrap(identity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, "BOOTSTRAP_ADMIN", "app_user", user.ID, c.ClientIP(),
		map[string]interface{}{"email": user.Email})

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListUsers lists every AppUser.
// @Summary     List users
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.AppUser
// @Failure     403 {object} ErrorResponse "Admins only"
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.accessService.ListUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// InviteUser creates a pending user who is linked on first sign-in.
// @Summary     Invite a user
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.InviteInput true "Invitation"
// @Success     201 {object} models.AppUser
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admins only"
// @Failure     409 {object} ErrorResponse "Email already used"
// @Router      /admin/users [post]
func (h *AdminHandler) InviteUser(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.InviteInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.accessService.InviteUser(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "INVITE_USER", "app_user", user.ID, c.ClientIP(),
		map[string]interface{}{"email": user.Email, "role": user.Role})

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// UpdateUser changes a user's role, name or active flag.
// @Summary     Update a user
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "User ID"
// @Param       request body services.UpdateUserInput true "Changes"
// @Success     200 {object} models.AppUser
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Last active admin"
// @Router      /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.UpdateUserInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.accessService.UpdateUser(userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "UPDATE_USER", "app_user", user.ID, c.ClientIP(),
		map[string]interface{}{"role": user.Role, "is_active": user.IsActive})

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// BackfillHomeIDs assigns homes to purchases that have none.
// @Summary     Backfill purchase homes
// @Description Infers a home for every live purchase without one. Ambiguous purchases are left unset and reported.
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       batch_size query int false "Purchases per batch (default 100)"
// @Success     200 {object} services.BackfillResult
// @Failure     403 {object} ErrorResponse "Admins only"
// @Router      /admin/backfill-home-ids [post]
func (h *AdminHandler) BackfillHomeIDs(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	batchSize, err := queryInt(c, "batch_size", 0)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.backfillService.BackfillHomeIDs(c.Request.Context(), batchSize)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "BACKFILL_HOME_IDS", "purchase", "", c.ClientIP(),
		map[string]interface{}{"updated": result.Updated, "ambiguous": result.Ambiguous, "failed": result.Failed})

	c.JSON(http.StatusOK, result)
}
