package preprocess

import (
	"regexp"
	"strings"

	"github.com/moamenhredeen/oas2graph/internal/models"
)

var pathParamPattern = regexp.MustCompile(`\{[^}]*\}`)

// linkSubOperations returns the identifiers of every operation nested under
// op. Only GET operations whose path contains a {param} token can have
// sub-operations; a candidate qualifies when it is a different GET operation
// whose path contains op's path. The containment test is raw substring
// matching, not segment-aware ("/pets" is contained in "/pets2/x"); this
// looseness is inherited behavior, kept on purpose. Result order follows
// the model's operation insertion order.
func linkSubOperations(op *models.Operation, model *models.PreprocessedModel) []string {
	if op.Method != "get" || !pathParamPattern.MatchString(op.Path) {
		return nil
	}

	var subs []string
	for _, id := range model.OperationOrder {
		candidate := model.Operations[id]
		if candidate.Method != "get" || candidate.OperationID == op.OperationID {
			continue
		}
		if strings.Contains(candidate.Path, op.Path) {
			subs = append(subs, candidate.OperationID)
		}
	}
	return subs
}
