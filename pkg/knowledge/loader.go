// FILE: pkg/knowledge/loader.go
// PURPOSE: Load the static troubleshooting dataset once at startup

package knowledge

import (
	"encoding/json"
	"fmt"
	"os"

	"wp-troubleshooting-be/internal/entity"
)

// Load reads the knowledge base JSON document from path. A missing file is
// not an error: the service keeps running with an empty knowledge base and
// the retriever simply finds nothing. A present-but-corrupt file is
// reported so the operator can fix the dataset.
func Load(path string) (*entity.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("read knowledge base %s: %w", path, err)
	}

	var kb entity.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return Empty(), fmt.Errorf("parse knowledge base %s: %w", path, err)
	}

	return &kb, nil
}

// Empty returns a usable zero-value knowledge base.
func Empty() *entity.KnowledgeBase {
	return &entity.KnowledgeBase{
		IntegrationScenarios:    []entity.IntegrationScenario{},
		TroubleshootingArticles: []entity.TroubleshootingArticle{},
		CommonErrorPatterns:     map[string]entity.ErrorPattern{},
		SearchIntentExamples:    []entity.SearchIntentExample{},
	}
}
