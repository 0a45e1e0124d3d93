package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
)

type tagService struct {
	db *gorm.DB
}

// NewTagService creates a new TagServicer.
func NewTagService(db *gorm.DB) TagServicer {
	return &tagService{db: db}
}

func (s *tagService) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tags, nil
}

func (s *tagService) GetTag(tagID string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, "id = ?", tagID).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrTagNotFound)
	}
	return &tag, nil
}

func (s *tagService) CreateTag(in TagInput) (*models.Tag, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: strings.TrimSpace(in.Name), Color: in.Color}
	if err := s.ensureUnique(tag.Name, ""); err != nil {
		return nil, err
	}
	if err := s.db.Create(tag).Error; err != nil {
		return nil, writeErr(err, apperrors.ErrDuplicateTag)
	}
	return tag, nil
}

func (s *tagService) UpdateTag(tagID string, in TagInput) (*models.Tag, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	tag, err := s.GetTag(tagID)
	if err != nil {
		return nil, err
	}
	tag.Name = strings.TrimSpace(in.Name)
	tag.Color = in.Color
	if err := s.ensureUnique(tag.Name, tag.ID); err != nil {
		return nil, err
	}
	if err := s.db.Model(tag).Select("name", "color").Updates(tag).Error; err != nil {
		return nil, writeErr(err, apperrors.ErrDuplicateTag)
	}
	return tag, nil
}

// DeleteTag removes a tag and detaches it from every purchase.
func (s *tagService) DeleteTag(tagID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM purchase_tags WHERE tag_id = ?", tagID).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Tag{}, "id = ?", tagID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTagNotFound
		}
		return nil
	})
	if err != nil {
		return writeErr(err, nil)
	}
	return nil
}

func (s *tagService) ensureUnique(name, exceptID string) error {
	q := s.db.Model(&models.Tag{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateTag
	}
	return nil
}
