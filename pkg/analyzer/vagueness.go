// FILE: pkg/analyzer/vagueness.go
// PURPOSE: Decide whether a query is too ambiguous to answer directly

package analyzer

import (
	"regexp"
	"strings"

	"wp-troubleshooting-be/internal/constant"
)

// VaguenessAssessment is the outcome of the vagueness check. IsVague is
// true only when at least two reasons fire: a needless round of
// clarifying questions annoys users more than an occasionally thin answer.
type VaguenessAssessment struct {
	IsVague bool
	Reasons []string
}

// The whole trimmed query has to equal one of these bare phrases.
// Substring matches don't count: "my checkout is broken" is specific.
var extremelyGenericQuery = regexp.MustCompile(`(?i)^(help|broken|not working|issue|problem)$`)

// AssessVagueness inspects the query together with the analyzer output.
// Deterministic, no external calls.
func AssessVagueness(query string, detectedPlugins, detectedProblems []string) *VaguenessAssessment {
	reasons := make([]string, 0)

	trimmed := strings.TrimSpace(query)
	if len(strings.Fields(trimmed)) < 3 {
		reasons = append(reasons, constant.VaguenessReasonTooShort)
	}

	if extremelyGenericQuery.MatchString(trimmed) {
		reasons = append(reasons, constant.VaguenessReasonGeneric)
	}

	return &VaguenessAssessment{
		IsVague: len(reasons) >= 2,
		Reasons: reasons,
	}
}
