// FILE: pkg/analyzer/analyzer.go
// PURPOSE: Extract plugin/problem/urgency signals from a raw support query

package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"wp-troubleshooting-be/internal/constant"
)

// Result holds everything the analyzer can derive from a query. It is a
// pure function of the input text and is computed once per request.
type Result struct {
	DetectedPlugins  []string
	DetectedProblems []string
	UrgencyLevel     string
	OriginalQuery    string
}

// patternEntry keeps the tag together with its compiled matcher. The
// declaration order of the entries determines the output order of the
// detected-tag lists, so do not reorder these slices.
type patternEntry struct {
	Tag     string
	Pattern *regexp.Regexp
}

var pluginPatterns = []patternEntry{
	{"WooCommerce", regexp.MustCompile(`(?i)\b(woo|woocommerce|shop|store|ecommerce|checkout|payment|order)\b`)},
	{"Mailchimp", regexp.MustCompile(`(?i)\b(mailchimp|email marketing|newsletter|sync|mailing list)\b`)},
	{"Yoast SEO", regexp.MustCompile(`(?i)\b(yoast|seo|search engine optimization)\b`)},
	{"Elementor", regexp.MustCompile(`(?i)\b(elementor|page builder|visual editor|editor)\b`)},
	{"Stripe", regexp.MustCompile(`(?i)\b(stripe|payment gateway|credit card|billing)\b`)},
	{"Gutenberg", regexp.MustCompile(`(?i)\b(gutenberg|block editor|blocks|new editor)\b`)},
	{"Security Plugin", regexp.MustCompile(`(?i)\b(security|firewall|locked out|blocked|malware)\b`)},
	{"Caching Plugin", regexp.MustCompile(`(?i)\b(cache|caching|performance|speed|optimization)\b`)},
	{"Backup Plugin", regexp.MustCompile(`(?i)\b(backup|restore|export|import)\b`)},
}

// Problem vocabularies intentionally overlap ("not working" appears in
// several). A query triggering multiple tags at once is expected.
var problemPatterns = []patternEntry{
	{"sync_issue", regexp.MustCompile(`(?i)\b(sync|syncing|not updating|not appearing|not working|failed sync)\b`)},
	{"conflict", regexp.MustCompile(`(?i)\b(conflict|not working|broken|error|issue|problem|bug)\b`)},
	{"performance", regexp.MustCompile(`(?i)\b(slow|timeout|memory|performance|lag|speed|loading)\b`)},
	{"payment_issue", regexp.MustCompile(`(?i)\b(payment|checkout|transaction|billing|gateway|credit card)\b`)},
	{"security_lockout", regexp.MustCompile(`(?i)\b(locked out|can't access|blocked|security|firewall)\b`)},
	{"editor_issue", regexp.MustCompile(`(?i)\b(editor|won't load|not loading|can't edit|green button)\b`)},
	{"cache_issue", regexp.MustCompile(`(?i)\b(cache|stale|outdated|not updating|wrong version)\b`)},
	{"backup_issue", regexp.MustCompile(`(?i)\b(backup|restore|failed|corrupted|won't complete)\b`)},
	{"site_crash", regexp.MustCompile(`(?i)\b(white screen|crash|down|not loading|fatal error|wsod)\b`)},
}

// Urgency tiers are checked first-match-wins in this exact order.
var (
	emergencyKeywords     = regexp.MustCompile(`(?i)\b(white screen|site down|crashed|can't access|locked out|fatal error|wsod)\b`)
	highUrgencyKeywords   = regexp.MustCompile(`(?i)\b(payment|checkout|not working|broken|error|urgent)\b`)
	mediumUrgencyKeywords = regexp.MustCompile(`(?i)\b(slow|performance|issue|problem|conflict)\b`)
)

// Analyze runs plugin, problem and urgency detection over the query.
// It fails only when the input is blank; everything else yields a result.
func Analyze(query string) (*Result, error) {
	cleaned := strings.TrimSpace(query)
	if cleaned == "" {
		return nil, fmt.Errorf("query must be a non-empty string")
	}

	return &Result{
		DetectedPlugins:  detectPlugins(cleaned),
		DetectedProblems: detectProblems(cleaned),
		UrgencyLevel:     detectUrgencyLevel(cleaned),
		OriginalQuery:    cleaned,
	}, nil
}

func detectPlugins(query string) []string {
	detected := make([]string, 0)
	for _, entry := range pluginPatterns {
		if entry.Pattern.MatchString(query) {
			detected = append(detected, entry.Tag)
		}
	}
	return detected
}

func detectProblems(query string) []string {
	detected := make([]string, 0)
	for _, entry := range problemPatterns {
		if entry.Pattern.MatchString(query) {
			detected = append(detected, entry.Tag)
		}
	}
	return detected
}

func detectUrgencyLevel(query string) string {
	if emergencyKeywords.MatchString(query) {
		return constant.UrgencyEmergency
	}
	if highUrgencyKeywords.MatchString(query) {
		return constant.UrgencyHigh
	}
	if mediumUrgencyKeywords.MatchString(query) {
		return constant.UrgencyMedium
	}
	return constant.UrgencyLow
}

// IsEmergency reports whether the analyzed urgency is the emergency tier.
func (r *Result) IsEmergency() bool {
	return r.UrgencyLevel == constant.UrgencyEmergency
}
