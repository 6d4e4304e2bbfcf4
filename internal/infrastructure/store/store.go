package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

var _ output.ProfileStore = (*FileStore)(nil)

const (
	profileFile  = "company_profile.json"
	databaseFile = "vc_database.json"
	templatesDir = "templates"
)

// FileStore keeps the company profile, VC database, and form templates as
// JSON files under a data directory. Missing files are seeded with sensible
// defaults on first use.
type FileStore struct {
	dir    string
	logger output.LoggerPort
}

func NewFileStore(dir string, logger output.LoggerPort) (*FileStore, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(filepath.Join(dir, templatesDir), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &FileStore{dir: dir, logger: logger}
	if err := s.seedDefaults(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) seedDefaults() error {
	if !s.exists(profileFile) {
		if err := s.SaveCompanyProfile(defaultProfile()); err != nil {
			return err
		}
		s.logger.Info("created default company profile")
	}
	if !s.exists(databaseFile) {
		if err := s.SaveVCDatabase(defaultFirms()); err != nil {
			return err
		}
		s.logger.Info("created default vc database")
	}
	for name, tpl := range defaultTemplates() {
		if !s.exists(filepath.Join(templatesDir, name+".json")) {
			if err := s.SaveTemplate(name, tpl); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *FileStore) LoadCompanyProfile() (*entity.CompanyProfile, error) {
	var profile entity.CompanyProfile
	if err := s.readJSON(profileFile, &profile); err != nil {
		return nil, fmt.Errorf("load company profile: %w", err)
	}
	return &profile, nil
}

func (s *FileStore) SaveCompanyProfile(profile *entity.CompanyProfile) error {
	if err := s.writeJSON(profileFile, profile); err != nil {
		return fmt.Errorf("save company profile: %w", err)
	}
	return nil
}

func (s *FileStore) LoadVCDatabase() ([]entity.VCFirm, error) {
	var firms []entity.VCFirm
	if err := s.readJSON(databaseFile, &firms); err != nil {
		return nil, fmt.Errorf("load vc database: %w", err)
	}
	return firms, nil
}

func (s *FileStore) SaveVCDatabase(firms []entity.VCFirm) error {
	if err := s.writeJSON(databaseFile, firms); err != nil {
		return fmt.Errorf("save vc database: %w", err)
	}
	return nil
}

func (s *FileStore) AddVCFirm(firm entity.VCFirm) error {
	firms, err := s.LoadVCDatabase()
	if err != nil {
		return err
	}
	firms = append(firms, firm)
	return s.SaveVCDatabase(firms)
}

// SearchFirms keeps the firms matching any of the given focus areas AND any
// of the given stages. Empty criteria match everything.
func (s *FileStore) SearchFirms(focusAreas, stages []string) ([]entity.VCFirm, error) {
	firms, err := s.LoadVCDatabase()
	if err != nil {
		return nil, err
	}

	var out []entity.VCFirm
	for _, firm := range firms {
		if len(focusAreas) > 0 && !anyOverlap(firm.FocusAreas, focusAreas) {
			continue
		}
		if len(stages) > 0 && !anyOverlap(firm.InvestmentStages, stages) {
			continue
		}
		out = append(out, firm)
	}
	return out, nil
}

var csvColumns = []string{
	"name", "website", "application_url", "focus_areas", "investment_stages",
	"check_size", "contact_email", "contact_phone", "application_deadline", "notes",
}

// ExportVCListCSV writes the firm list with list-valued columns comma-joined.
func (s *FileStore) ExportVCListCSV(path string) error {
	firms, err := s.LoadVCDatabase()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, firm := range firms {
		row := []string{
			firm.Name, firm.Website, firm.ApplicationURL,
			strings.Join(firm.FocusAreas, ", "),
			strings.Join(firm.InvestmentStages, ", "),
			firm.CheckSize, firm.ContactEmail, firm.ContactPhone,
			firm.ApplicationDeadline, firm.Notes,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ImportVCListCSV replaces the database with the CSV contents and returns the
// number of imported firms.
func (s *FileStore) ImportVCListCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return 0, fmt.Errorf("csv has no data rows")
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	firms := make([]entity.VCFirm, 0, len(records)-1)
	for _, row := range records[1:] {
		firms = append(firms, entity.VCFirm{
			Name:                get(row, "name"),
			Website:             get(row, "website"),
			ApplicationURL:      get(row, "application_url"),
			FocusAreas:          splitList(get(row, "focus_areas")),
			InvestmentStages:    splitList(get(row, "investment_stages")),
			CheckSize:           get(row, "check_size"),
			ContactEmail:        get(row, "contact_email"),
			ContactPhone:        get(row, "contact_phone"),
			ApplicationDeadline: get(row, "application_deadline"),
			Notes:               get(row, "notes"),
		})
	}

	if err := s.SaveVCDatabase(firms); err != nil {
		return 0, err
	}
	return len(firms), nil
}

func (s *FileStore) Template(name string) (*entity.FormTemplate, error) {
	var tpl entity.FormTemplate
	if err := s.readJSON(filepath.Join(templatesDir, name+".json"), &tpl); err != nil {
		return nil, fmt.Errorf("load template %q: %w", name, err)
	}
	return &tpl, nil
}

func (s *FileStore) SaveTemplate(name string, tpl *entity.FormTemplate) error {
	if err := s.writeJSON(filepath.Join(templatesDir, name+".json"), tpl); err != nil {
		return fmt.Errorf("save template %q: %w", name, err)
	}
	return nil
}

func (s *FileStore) ListTemplates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, templatesDir))
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *FileStore) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(s.dir, rel))
	return err == nil
}

func (s *FileStore) readJSON(rel string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, rel))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *FileStore) writeJSON(rel string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, rel), data, 0644)
}

func anyOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(w)) {
				return true
			}
		}
	}
	return false
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
