package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleSystem = "system"

	// Urgency tiers, strict priority order: emergency > high > medium > low.
	UrgencyEmergency = "emergency"
	UrgencyHigh      = "high"
	UrgencyMedium    = "medium"
	UrgencyLow       = "low"

	// Vagueness reason codes
	VaguenessReasonTooShort = "query_too_short"
	VaguenessReasonGeneric  = "extremely_generic"

	// Response types
	ResponseTypeSolution   = "solution"
	ResponseTypeClarifying = "clarifying_questions"

	// Event bus topic for per-request analytics
	TroubleshootCompletedTopic = "TROUBLESHOOT_COMPLETED"
)

const (
	// SolutionSystemPrompt frames every solution-generation call.
	SolutionSystemPrompt = `You are a WordPress troubleshooting expert. Provide clear, actionable solutions based on the provided knowledge base.`

	// ClarifySystemPrompt frames the clarifying-question call.
	ClarifySystemPrompt = `You are a helpful WordPress troubleshooting assistant. Generate clear, specific clarifying questions.`

	// ClarifyPromptTemplate expects: query, joined reasons, joined plugins, joined problems.
	ClarifyPromptTemplate = `
You are a WordPress troubleshooting expert. A user has asked: "%s"

The query is vague for these reasons: %s
Detected plugins: %s
Detected problems: %s

Generate 3-5 specific clarifying questions to better understand their issue. Focus on:
1. What specific error messages they're seeing
2. When the problem started occurring
3. What plugins/themes are involved
4. What steps they've already tried
5. What specific functionality isn't working

Make questions conversational and helpful. Return only the questions, one per line.
`

	// EmergencyPromptTemplate expects: query, knowledge base context.
	EmergencyPromptTemplate = `
You are a WordPress emergency response specialist. The user has a CRITICAL SITE ISSUE that needs immediate help.

USER'S EMERGENCY: %s

RELEVANT TROUBLESHOOTING INFO:
%s

RESPONSE REQUIREMENTS:
1. Start with 🚨 EMERGENCY STEPS
2. Provide 3-5 immediate action items in order of priority
3. Each step should be specific and actionable
4. Include what to do if they can't access admin
5. Mention backup/safety considerations
6. Keep it concise but complete - this is an emergency!

Format your response with clear step numbers and action-oriented language.
`

	// StandardPromptTemplate expects: query, joined plugins, joined problems,
	// urgency level, knowledge base context.
	StandardPromptTemplate = `
You are a WordPress plugin troubleshooting expert. Help the user solve their specific issue using the provided knowledge base information.

USER'S QUESTION: %s
IMPORTANT: Do NOT give generic advice. Give specific, actionable solutions based on their actual query.

DETECTED CONTEXT:
- Plugins involved: %s
- Problem types: %s
- Urgency level: %s

RELEVANT KNOWLEDGE BASE INFO:
%s

RESPONSE REQUIREMENTS:
1. Acknowledge the specific plugins/issue mentioned
2. Provide step-by-step troubleshooting instructions
3. Start with the most likely solutions first
4. Include both quick fixes and comprehensive solutions
5. Mention any relevant tools or plugins
6. Add prevention tips if appropriate
7. Use clear, numbered steps
8. Be specific and actionable
9. Address their SPECIFIC situation, not general WordPress issues
10. Use the knowledge base to provide targeted solutions

RESPONSE FORMAT:
**Issue Summary:** [Brief description of what you understand]
**Recommended Solution:** [Step-by-step instructions]
**If That Doesn't Work:** [Alternative approaches]
**Prevention:** [How to avoid this in the future]

Keep your response practical and focused on solving their specific problem.
`
)

// FallbackClarifyingQuestions is used whenever the LLM cannot produce
// clarifying questions. The request still succeeds with these.
var FallbackClarifyingQuestions = []string{
	"What specific error message are you seeing?",
	"When did this problem start happening?",
	"Which plugins do you have installed?",
	"What were you trying to do when the issue occurred?",
}

// ClarificationSuggestions are generic tips attached to every
// clarifying-questions response.
var ClarificationSuggestions = []string{
	"Try to include specific error messages you're seeing",
	"Mention which plugins or themes you're using",
	"Describe when the problem started happening",
	"Include what you were trying to do when it occurred",
}
