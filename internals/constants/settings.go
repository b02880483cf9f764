package constants

// Setting keys yang dikenal frontend.
const (
	SettingCompanyProfileURL = "company_profile_url"
	SettingCatalogURL        = "catalog_url"
)

var KnownSettingKeys = []string{
	SettingCompanyProfileURL,
	SettingCatalogURL,
}
