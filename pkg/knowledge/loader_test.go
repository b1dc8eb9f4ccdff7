package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	doc := `{
		"metadata": {"title": "Test KB", "total_articles": 1, "categories": ["sync"]},
		"integration_scenarios": [
			{"scenario_id": "int_001", "name": "A + B", "description": "d", "common_symptoms": [], "typical_causes": []}
		],
		"troubleshooting_articles": [
			{"article_id": "kb_001", "title": "T", "category": "sync", "scenario": "a_b",
			 "problem_description": "p", "symptoms": ["s"], "solution_steps": ["fix it"]}
		],
		"common_error_patterns": {
			"api_errors": {"description": "d", "examples": ["401"], "typical_solutions": ["rotate key"]}
		},
		"search_intent_examples": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	kb, err := Load(path)
	require.NoError(t, err)
	require.Len(t, kb.TroubleshootingArticles, 1)
	assert.Equal(t, "kb_001", kb.TroubleshootingArticles[0].ArticleId)
	assert.Equal(t, []string{"fix it"}, kb.TroubleshootingArticles[0].SolutionSteps)
	require.Len(t, kb.IntegrationScenarios, 1)
	assert.Equal(t, "Test KB", kb.Metadata.Title)
	assert.Contains(t, kb.CommonErrorPatterns, "api_errors")
}

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	kb, err := Load(filepath.Join(t.TempDir(), "does_not_exist.json"))

	require.NoError(t, err)
	require.NotNil(t, kb)
	assert.Empty(t, kb.TroubleshootingArticles)
	assert.Empty(t, kb.IntegrationScenarios)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	kb, err := Load(path)

	require.Error(t, err)
	assert.NotNil(t, kb)
}
