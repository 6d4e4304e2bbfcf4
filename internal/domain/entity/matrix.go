package entity

// ComparisonMatrix is a tool × category table of string cells for
// side-by-side comparison.
type ComparisonMatrix struct {
	Tools      []string                     `json:"tools"`
	Categories []string                     `json:"categories"`
	Matrix     map[string]map[string]string `json:"matrix"`
}

// NewComparisonMatrix allocates a matrix with the given axes and empty cells.
func NewComparisonMatrix(tools, categories []string) *ComparisonMatrix {
	m := &ComparisonMatrix{
		Tools:      tools,
		Categories: categories,
		Matrix:     make(map[string]map[string]string, len(tools)),
	}
	for _, t := range tools {
		m.Matrix[t] = make(map[string]string, len(categories))
	}
	return m
}

// Set stores a cell value, allocating the row if needed.
func (m *ComparisonMatrix) Set(tool, category, value string) {
	if m.Matrix == nil {
		m.Matrix = make(map[string]map[string]string)
	}
	row, ok := m.Matrix[tool]
	if !ok {
		row = make(map[string]string)
		m.Matrix[tool] = row
	}
	row[category] = value
}

// Cell returns the value for (tool, category). Missing entries degrade to
// "N/A" instead of failing.
func (m *ComparisonMatrix) Cell(tool, category string) string {
	if m == nil || m.Matrix == nil {
		return "N/A"
	}
	row, ok := m.Matrix[tool]
	if !ok {
		return "N/A"
	}
	v, ok := row[category]
	if !ok || v == "" {
		return "N/A"
	}
	return v
}

// Empty reports whether the matrix has no tools or no categories.
func (m *ComparisonMatrix) Empty() bool {
	return m == nil || len(m.Tools) == 0 || len(m.Categories) == 0
}
