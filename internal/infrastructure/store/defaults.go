package store

import "venture-agent/internal/domain/entity"

// Seed data written on first use so every command works out of the box. The
// profile is a placeholder the user is expected to edit.
func defaultProfile() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		CompanyName:          "Your Startup Inc.",
		Industry:             "SaaS/FinTech",
		FoundingDate:         "2023-01-15",
		TeamSize:             25,
		FundingStage:         "Seed",
		Revenue:              500000,
		GrowthRate:           300,
		TargetMarket:         "SMBs in North America",
		CompetitiveAdvantage: "AI-powered automation platform",
		UseOfFunds:           "Product development and market expansion",
		Website:              "https://yourstartup.com",
		Email:                "founder@yourstartup.com",
		Phone:                "+1-555-0123",
		Address:              "123 Startup St, San Francisco, CA 94105",
		Founders:             []string{"John Doe", "Jane Smith"},
		Investors:            []string{"Angel Investor 1", "Angel Investor 2"},
		TractionMetrics: map[string]float64{
			"monthly_recurring_revenue": 50000,
			"customer_count":            500,
			"churn_rate":                0.05,
			"customer_acquisition_cost": 150,
		},
		Financials: map[string]float64{
			"burn_rate":     75000,
			"runway_months": 8,
			"total_funding": 1000000,
		},
	}
}

func defaultFirms() []entity.VCFirm {
	return []entity.VCFirm{
		{
			Name:             "Y Combinator",
			Website:          "https://ycombinator.com",
			ApplicationURL:   "https://apply.ycombinator.com",
			FocusAreas:       []string{"Technology", "SaaS", "AI/ML"},
			InvestmentStages: []string{"Seed", "Series A"},
			CheckSize:        "$500K - $2M",
		},
		{
			Name:             "Techstars",
			Website:          "https://techstars.com",
			ApplicationURL:   "https://apply.techstars.com",
			FocusAreas:       []string{"Technology", "Innovation"},
			InvestmentStages: []string{"Seed", "Early Stage"},
			CheckSize:        "$100K - $500K",
		},
		{
			Name:             "500 Startups",
			Website:          "https://500.co",
			ApplicationURL:   "https://500.co/apply",
			FocusAreas:       []string{"Technology", "Diverse Founders"},
			InvestmentStages: []string{"Seed", "Series A"},
			CheckSize:        "$150K - $500K",
		},
	}
}

func defaultTemplates() map[string]*entity.FormTemplate {
	return map[string]*entity.FormTemplate{
		"ycombinator": {
			Name:        "Y Combinator",
			Description: "Y Combinator application form template",
			URLPattern:  ".*ycombinator.*apply.*",
			FieldMappings: map[string]string{
				"company_name":        "company_name",
				"founder_names":       "founders",
				"company_description": "description",
				"team_size":           "team_size",
				"funding_stage":       "funding_stage",
				"use_of_funds":        "use_of_funds",
			},
			RequiredFields: []string{"company_name", "founder_names", "company_description"},
			OptionalFields: []string{"team_size", "funding_stage", "use_of_funds"},
		},
		"techstars": {
			Name:        "Techstars",
			Description: "Techstars application form template",
			URLPattern:  ".*techstars.*apply.*",
			FieldMappings: map[string]string{
				"startup_name": "company_name",
				"industry":     "industry",
				"founders":     "founders",
				"description":  "description",
				"team_size":    "team_size",
			},
			RequiredFields: []string{"startup_name", "industry", "founders"},
			OptionalFields: []string{"description", "team_size"},
		},
		"generic": {
			Name:        "Generic VC Form",
			Description: "Generic template for unknown VC forms",
			URLPattern:  ".*",
			FieldMappings: map[string]string{
				"company_name":      "company_name",
				"business_name":     "company_name",
				"organization_name": "company_name",
				"industry":          "industry",
				"sector":            "industry",
				"team_size":         "team_size",
				"employees":         "team_size",
				"funding_stage":     "funding_stage",
				"investment_stage":  "funding_stage",
				"description":       "description",
				"about":             "description",
				"use_of_funds":      "use_of_funds",
				"funding_purpose":   "use_of_funds",
			},
			RequiredFields: []string{"company_name"},
			OptionalFields: []string{"industry", "team_size", "funding_stage", "description"},
		},
	}
}
