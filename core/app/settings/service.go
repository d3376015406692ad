package settings

import (
	"errors"
	"fmt"

	"sitesearch/core/logger"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidValue is returned when an update carries no value for the setting's type
var ErrInvalidValue = errors.New("value does not match setting type")

type SettingsService struct {
	DB       *gorm.DB
	Logger   logger.Logger
	validate *validator.Validate
}

func NewSettingsService(db *gorm.DB, logger logger.Logger) *SettingsService {
	return &SettingsService{
		DB:       db,
		Logger:   logger,
		validate: validator.New(),
	}
}

// Configuration helper methods for modules to retrieve settings

// GetSettingString retrieves a string setting value by key
func (s *SettingsService) GetSettingString(key string, defaultValue string) string {
	setting, ok := s.lookup(key)
	if !ok {
		return defaultValue
	}
	return setting.ValueString
}

// GetSettingBool retrieves a boolean setting value by key
func (s *SettingsService) GetSettingBool(key string, defaultValue bool) bool {
	setting, ok := s.lookup(key)
	if !ok {
		return defaultValue
	}
	return setting.ValueBool
}

// GetSettingInt retrieves an integer setting value by key
func (s *SettingsService) GetSettingInt(key string, defaultValue int) int {
	setting, ok := s.lookup(key)
	if !ok {
		return defaultValue
	}
	return setting.ValueInt
}

// lookup loads a setting; a missing row or a failing store both fall back
// to the caller's default
func (s *SettingsService) lookup(key string) (*Settings, bool) {
	var setting Settings
	err := s.DB.Where("setting_key = ?", key).First(&setting).Error
	if err == nil {
		return &setting, true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.Logger.Warn("failed to read setting, using default",
			logger.String("key", key),
			logger.Err(err))
	}
	return nil, false
}

// GetByKey returns a single setting
func (s *SettingsService) GetByKey(key string) (*Settings, error) {
	var setting Settings
	if err := s.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// List returns all settings, optionally filtered by group
func (s *SettingsService) List(group string) ([]*Settings, error) {
	var settings []*Settings
	query := s.DB.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "group"}}).
		Order("setting_key asc")
	if group != "" {
		query = query.Where(&Settings{Group: group})
	}
	if err := query.Find(&settings).Error; err != nil {
		s.Logger.Error("failed to list settings",
			logger.String("group", group),
			logger.Err(err))
		return nil, err
	}
	return settings, nil
}

// Seed creates the given settings when their key does not exist yet.
// Existing values are never overwritten.
func (s *SettingsService) Seed(defaults []Settings) error {
	for _, setting := range defaults {
		var existing Settings
		result := s.DB.Where("setting_key = ?", setting.SettingKey).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := s.DB.Create(&setting).Error; err != nil {
				return fmt.Errorf("seed setting %s: %w", setting.SettingKey, err)
			}
			continue
		}
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

// Upsert creates or updates the setting identified by key
func (s *SettingsService) Upsert(key string, req *UpdateSettingRequest) (*Settings, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var setting Settings
	result := s.DB.Where("setting_key = ?", key).First(&setting)
	switch {
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		setting = Settings{SettingKey: key, Type: req.Type}
		if setting.Type == "" {
			setting.Type = inferType(req)
		}
	case result.Error != nil:
		return nil, result.Error
	}

	if req.Label != "" {
		setting.Label = req.Label
	}
	if req.Group != "" {
		setting.Group = req.Group
	}
	if req.Description != "" {
		setting.Description = req.Description
	}

	switch setting.Type {
	case TypeBool:
		if req.ValueBool == nil {
			return nil, ErrInvalidValue
		}
		setting.ValueBool = *req.ValueBool
	case TypeInt:
		if req.ValueInt == nil {
			return nil, ErrInvalidValue
		}
		setting.ValueInt = *req.ValueInt
	default:
		if req.ValueString == nil {
			return nil, ErrInvalidValue
		}
		setting.ValueString = *req.ValueString
	}

	if err := s.DB.Save(&setting).Error; err != nil {
		s.Logger.Error("failed to save setting",
			logger.String("key", key),
			logger.Err(err))
		return nil, err
	}

	return &setting, nil
}

func inferType(req *UpdateSettingRequest) string {
	switch {
	case req.ValueBool != nil:
		return TypeBool
	case req.ValueInt != nil:
		return TypeInt
	default:
		return TypeString
	}
}
