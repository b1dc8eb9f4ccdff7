package analyzer

import (
	"reflect"
	"testing"
)

func TestAssessVagueness(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantVague   bool
		wantReasons []string
	}{
		{
			name:        "bare cry for help is vague",
			query:       "help",
			wantVague:   true,
			wantReasons: []string{"query_too_short", "extremely_generic"},
		},
		{
			name:        "two word generic phrase is vague",
			query:       "not working",
			wantVague:   true,
			wantReasons: []string{"query_too_short", "extremely_generic"},
		},
		{
			name:        "short but specific is not vague",
			query:       "woocommerce broken",
			wantVague:   false,
			wantReasons: []string{"query_too_short"},
		},
		{
			name:        "generic word inside a longer query does not count",
			query:       "my checkout page is broken",
			wantVague:   false,
			wantReasons: []string{},
		},
		{
			name:        "full question is not vague",
			query:       "My WooCommerce orders aren't syncing to Mailchimp",
			wantVague:   false,
			wantReasons: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessVagueness(tt.query, nil, nil)
			if got.IsVague != tt.wantVague {
				t.Errorf("IsVague = %v, want %v", got.IsVague, tt.wantVague)
			}
			if !reflect.DeepEqual(got.Reasons, tt.wantReasons) {
				t.Errorf("Reasons = %v, want %v", got.Reasons, tt.wantReasons)
			}
		})
	}
}

func TestAssessVaguenessTrimsInput(t *testing.T) {
	got := AssessVagueness("  help  ", nil, nil)
	if !got.IsVague {
		t.Errorf("expected surrounding whitespace to be ignored")
	}
}
