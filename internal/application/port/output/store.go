package output

import "venture-agent/internal/domain/entity"

// ProfileStore persists company profiles, the VC database, and form
// templates.
type ProfileStore interface {
	LoadCompanyProfile() (*entity.CompanyProfile, error)
	SaveCompanyProfile(profile *entity.CompanyProfile) error

	LoadVCDatabase() ([]entity.VCFirm, error)
	SaveVCDatabase(firms []entity.VCFirm) error
	AddVCFirm(firm entity.VCFirm) error
	SearchFirms(focusAreas, stages []string) ([]entity.VCFirm, error)
	ExportVCListCSV(path string) error
	ImportVCListCSV(path string) (int, error)

	Template(name string) (*entity.FormTemplate, error)
	SaveTemplate(name string, tpl *entity.FormTemplate) error
	ListTemplates() ([]string, error)
}
