package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"homeledger/internal/auth"
	apperrors "homeledger/internal/errors"
	"homeledger/internal/logger"
	"homeledger/internal/models"
	"homeledger/internal/uuid"
)

// accessService resolves identities to AppUsers and manages the user table.
type accessService struct {
	db *gorm.DB
}

// NewAccessService creates a new AccessServicer.
func NewAccessService(db *gorm.DB) AccessServicer {
	return &accessService{db: db}
}

// RequireRole fails with Forbidden unless the user holds one of roles.
func RequireRole(user *models.AppUser, roles ...models.Role) error {
	if user == nil {
		return apperrors.ErrUnauthorized
	}
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

// RequireActive fails for deactivated users regardless of role.
func RequireActive(user *models.AppUser) error {
	if user == nil {
		return apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return apperrors.ErrAccountInactive
	}
	return nil
}

// ResolveCaller finds the AppUser for identity. When no user has the
// identity's subject, an invited user with the same email is linked to it.
// Linking is a conditional update, so repeating it is a no-op.
func (s *accessService) ResolveCaller(identity *auth.Identity) (*models.AppUser, error) {
	if identity == nil || identity.SubjectID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var user models.AppUser
	err := s.db.Where("auth_subject_id = ?", identity.SubjectID).First(&user).Error
	if err == nil {
		return s.touch(&user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, apperrors.ErrUserNotProvisioned
	}
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrUserNotProvisioned)
	}
	if !user.IsPending() {
		logger.Get().Warnw("identity email matches a user linked to another subject",
			"user_id", user.ID,
			"subject", identity.SubjectID,
		)
		return nil, apperrors.ErrUserNotProvisioned
	}

	updates := map[string]interface{}{"auth_subject_id": identity.SubjectID}
	if user.Name == "" && identity.Name != "" {
		updates["name"] = identity.Name
	}
	res := s.db.Model(&models.AppUser{}).
		Where("id = ? AND auth_subject_id = ?", user.ID, user.AuthSubjectID).
		Updates(updates)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		// Someone else linked it first; whoever won owns the row now.
		var linked models.AppUser
		if err := s.db.Where("auth_subject_id = ?", identity.SubjectID).First(&linked).Error; err != nil {
			return nil, lookupErr(err, apperrors.ErrUserNotProvisioned)
		}
		return s.touch(&linked), nil
	}

	logger.Get().Infow("linked invited user", "user_id", user.ID, "email", user.Email)
	if err := s.db.First(&user, "id = ?", user.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.touch(&user), nil
}

// touch records that user was just seen. A failed write is only logged.
func (s *accessService) touch(user *models.AppUser) *models.AppUser {
	now := time.Now().UTC()
	if err := s.db.Model(user).UpdateColumn("last_seen_at", now).Error; err != nil {
		logger.Get().Warnw("failed to record last seen", "user_id", user.ID, "error", err)
		return user
	}
	user.LastSeenAt = &now
	return user
}

// Bootstrap creates the first admin from the caller's identity. It only
// works while the user table is empty.
func (s *accessService) Bootstrap(identity *auth.Identity) (*models.AppUser, error) {
	if identity == nil || identity.SubjectID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, apperrors.NewValidationError([]apperrors.FieldError{{Field: "email", Message: "identity has no email"}})
	}

	var admin *models.AppUser
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if stmt := bootstrapLockSQL(tx.Dialector.Name()); stmt != "" {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		var count int64
		if err := tx.Model(&models.AppUser{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrBootstrapClosed
		}
		admin = &models.AppUser{
			AuthSubjectID: identity.SubjectID,
			Email:         email,
			Name:          identity.Name,
			Role:          models.RoleAdmin,
			IsActive:      true,
		}
		return tx.Create(admin).Error
	})
	if err != nil {
		return nil, writeErr(err, apperrors.ErrBootstrapClosed)
	}
	logger.Get().Infow("bootstrapped first admin", "user_id", admin.ID, "email", admin.Email)
	return admin, nil
}

// bootstrapLockSQL returns the statement that keeps a concurrent Bootstrap
// from counting app_users until this one commits. SQLite runs one writer at
// a time and needs none.
func bootstrapLockSQL(dialect string) string {
	if dialect == "postgres" {
		return "LOCK TABLE app_users IN SHARE ROW EXCLUSIVE MODE"
	}
	return ""
}

// InviteUser creates a pending user that is linked on first sign-in.
func (s *accessService) InviteUser(in InviteInput) (*models.AppUser, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	email := in.Email

	var count int64
	if err := s.db.Model(&models.AppUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	user := &models.AppUser{
		AuthSubjectID: uuid.NewPendingSubject(),
		Email:         email,
		Name:          strings.TrimSpace(in.Name),
		Role:          in.Role,
		IsActive:      true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, writeErr(err, apperrors.ErrDuplicateEmail)
	}
	return user, nil
}

// ListUsers returns every user, oldest first.
func (s *accessService) ListUsers() ([]models.AppUser, error) {
	var users []models.AppUser
	if err := s.db.Order("created_at ASC").Order("id ASC").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// UpdateUser changes a user's name, role or active flag. The last active
// admin can be neither demoted nor deactivated.
func (s *accessService) UpdateUser(userID string, in UpdateUserInput) (*models.AppUser, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}

	var user models.AppUser
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return lookupErr(err, apperrors.ErrUserNotFound)
		}

		newRole := user.Role
		if in.Role != nil {
			newRole = *in.Role
		}
		newActive := user.IsActive
		if in.IsActive != nil {
			newActive = *in.IsActive
		}

		losesAdmin := user.Role == models.RoleAdmin && user.IsActive &&
			(newRole != models.RoleAdmin || !newActive)
		if losesAdmin {
			var others int64
			if err := tx.Model(&models.AppUser{}).
				Where("id <> ? AND role = ? AND is_active = ?", user.ID, models.RoleAdmin, true).
				Count(&others).Error; err != nil {
				return err
			}
			if others == 0 {
				return apperrors.ErrLastAdmin
			}
		}

		updates := map[string]interface{}{"role": newRole, "is_active": newActive}
		if in.Name != nil {
			updates["name"] = strings.TrimSpace(*in.Name)
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&user, "id = ?", user.ID).Error
	})
	if err != nil {
		return nil, writeErr(err, nil)
	}
	return &user, nil
}
