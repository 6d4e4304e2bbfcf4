package output

import "venture-agent/internal/domain/entity"

// ReportWriter exports research results to files named by query and
// timestamp.
type ReportWriter interface {
	SaveJSON(state *entity.ResearchState) (string, error)
	SaveMarkdown(state *entity.ResearchState) (string, error)
}
