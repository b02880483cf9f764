package model

import "time"

type SettingModel struct {
	SettingKey       string    `gorm:"column:setting_key;primaryKey;type:varchar(100)" json:"setting_key"`
	SettingValue     string    `gorm:"column:setting_value;type:text;not null" json:"setting_value"`
	SettingCreatedAt time.Time `gorm:"column:setting_created_at;autoCreateTime" json:"setting_created_at"`
	SettingUpdatedAt time.Time `gorm:"column:setting_updated_at;autoUpdateTime" json:"setting_updated_at"`
}

func (SettingModel) TableName() string {
	return "settings"
}
