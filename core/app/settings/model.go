package settings

import (
	"time"

	"gorm.io/gorm"
)

// Setting types
const (
	TypeString = "string"
	TypeBool   = "bool"
	TypeInt    = "int"
)

// Settings represents one configuration entry
type Settings struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	SettingKey  string         `json:"setting_key" gorm:"type:varchar(100);uniqueIndex"`
	Label       string         `json:"label" gorm:"type:varchar(200)"`
	Group       string         `json:"group" gorm:"type:varchar(50)"`
	Type        string         `json:"type" gorm:"type:varchar(20)"`
	ValueString string         `json:"value_string" gorm:"type:text"`
	ValueInt    int            `json:"value_int"`
	ValueBool   bool           `json:"value_bool"`
	Description string         `json:"description" gorm:"type:text"`
}

// TableName returns the table name for the Settings model
func (m *Settings) TableName() string {
	return "settings"
}

// Value returns the typed value of the setting
func (m *Settings) Value() any {
	switch m.Type {
	case TypeBool:
		return m.ValueBool
	case TypeInt:
		return m.ValueInt
	default:
		return m.ValueString
	}
}

// UpdateSettingRequest is the payload for PUT /settings/:key. Exactly the
// field matching the setting's type is applied.
type UpdateSettingRequest struct {
	Type        string  `json:"type" validate:"omitempty,oneof=string bool int"`
	Label       string  `json:"label" validate:"max=200"`
	Group       string  `json:"group" validate:"max=50"`
	ValueString *string `json:"value_string"`
	ValueInt    *int    `json:"value_int"`
	ValueBool   *bool   `json:"value_bool"`
	Description string  `json:"description"`
}

// SettingResponse is the API representation of a setting
type SettingResponse struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Group       string    `json:"group"`
	Type        string    `json:"type"`
	Value       any       `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse converts the model to an API response
func (m *Settings) ToResponse() *SettingResponse {
	if m == nil {
		return nil
	}
	return &SettingResponse{
		Key:         m.SettingKey,
		Label:       m.Label,
		Group:       m.Group,
		Type:        m.Type,
		Value:       m.Value(),
		Description: m.Description,
		UpdatedAt:   m.UpdatedAt,
	}
}
