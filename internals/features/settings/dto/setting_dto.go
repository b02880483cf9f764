package dto

import (
	"gemilang_backend/internals/constants"
	"gemilang_backend/internals/features/settings/model"
)

// ============================
// Request DTO (batch upsert)
// ============================
type SettingsRequest struct {
	CompanyProfileURL string `json:"company_profile_url" validate:"required,url"`
	CatalogURL        string `json:"catalog_url" validate:"required,url"`
}

// ============================
// Converter
// ============================
func ToSettingModels(req SettingsRequest) []model.SettingModel {
	return []model.SettingModel{
		{SettingKey: constants.SettingCompanyProfileURL, SettingValue: req.CompanyProfileURL},
		{SettingKey: constants.SettingCatalogURL, SettingValue: req.CatalogURL},
	}
}

// ToSettingsMap meratakan baris settings jadi map key -> value.
func ToSettingsMap(ms []model.SettingModel) map[string]string {
	out := make(map[string]string, len(ms))
	for _, m := range ms {
		out[m.SettingKey] = m.SettingValue
	}
	return out
}
