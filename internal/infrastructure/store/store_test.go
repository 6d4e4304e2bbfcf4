package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                      {}
func (nopLogger) Info(string, ...any)                       {}
func (nopLogger) Warn(string, ...any)                       {}
func (nopLogger) Error(string, ...any)                      {}
func (n nopLogger) WithField(string, any) output.LoggerPort { return n }
func (nopLogger) Close() error                              { return nil }

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), nopLogger{})
	require.NoError(t, err)
	return s
}

func TestSeedsDefaultsOnFirstUse(t *testing.T) {
	s := newTestStore(t)

	profile, err := s.LoadCompanyProfile()
	require.NoError(t, err)
	assert.Equal(t, "Your Startup Inc.", profile.CompanyName)
	assert.Equal(t, 25, profile.TeamSize)

	firms, err := s.LoadVCDatabase()
	require.NoError(t, err)
	require.Len(t, firms, 3)
	assert.Equal(t, "Y Combinator", firms[0].Name)

	names, err := s.ListTemplates()
	require.NoError(t, err)
	assert.Equal(t, []string{"generic", "techstars", "ycombinator"}, names)
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)

	updated := &entity.CompanyProfile{
		CompanyName:  "Acme Robotics",
		Industry:     "Robotics",
		FoundingDate: "2024-02-02",
		TeamSize:     9,
		FundingStage: "Pre-seed",
		Founders:     []string{"Kim"},
	}
	require.NoError(t, s.SaveCompanyProfile(updated))

	got, err := s.LoadCompanyProfile()
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestAddAndSearchFirms(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddVCFirm(entity.VCFirm{
		Name:             "Deep Tech Capital",
		FocusAreas:       []string{"Robotics", "AI/ML"},
		InvestmentStages: []string{"Series A"},
	}))

	byFocus, err := s.SearchFirms([]string{"robotics"}, nil)
	require.NoError(t, err)
	require.Len(t, byFocus, 1)
	assert.Equal(t, "Deep Tech Capital", byFocus[0].Name)

	byBoth, err := s.SearchFirms([]string{"AI/ML"}, []string{"Seed"})
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, "Y Combinator", byBoth[0].Name)

	all, err := s.SearchFirms(nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCSVRoundTrip(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "firms.csv")

	require.NoError(t, s.ExportVCListCSV(path))

	// Re-import into a fresh store and compare.
	other := newTestStore(t)
	n, err := other.ImportVCListCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	firms, err := other.LoadVCDatabase()
	require.NoError(t, err)
	require.Len(t, firms, 3)
	assert.Equal(t, "Y Combinator", firms[0].Name)
	assert.Equal(t, []string{"Technology", "SaaS", "AI/ML"}, firms[0].FocusAreas)
	assert.Equal(t, "$500K - $2M", firms[0].CheckSize)
}

func TestTemplateLookup(t *testing.T) {
	s := newTestStore(t)

	tpl, err := s.Template("ycombinator")
	require.NoError(t, err)
	assert.Equal(t, "Y Combinator", tpl.Name)
	assert.Equal(t, "company_name", tpl.FieldMappings["company_name"])

	_, err = s.Template("missing")
	assert.Error(t, err)
}

func TestSaveTemplate(t *testing.T) {
	s := newTestStore(t)

	custom := &entity.FormTemplate{
		Name:          "Custom Fund",
		URLPattern:    ".*customfund.*",
		FieldMappings: map[string]string{"org": "company_name"},
	}
	require.NoError(t, s.SaveTemplate("customfund", custom))

	got, err := s.Template("customfund")
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	names, err := s.ListTemplates()
	require.NoError(t, err)
	assert.Contains(t, names, "customfund")
}
