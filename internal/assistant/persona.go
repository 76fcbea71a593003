package assistant

import "strings"

// RequestKind is the classification of an incoming user message.
type RequestKind int

const (
	// BasicChat routes to the refusal persona: the assistant declines and
	// redirects anything off-topic.
	BasicChat RequestKind = iota
	// FinancialAnalysis routes to the advisor persona with financial context.
	FinancialAnalysis
)

// analysisKeywords trigger the financial-analysis path. This is deliberate
// substring matching, not intent detection; false positives are accepted.
var analysisKeywords = []string{"plan", "analyze", "optimise", "optimize"}

// Classify picks the request kind by case-insensitive keyword match.
func Classify(text string) RequestKind {
	lower := strings.ToLower(text)
	for _, kw := range analysisKeywords {
		if strings.Contains(lower, kw) {
			return FinancialAnalysis
		}
	}
	return BasicChat
}

// Persona returns the system instruction text for a request kind.
func (k RequestKind) Persona() string {
	if k == FinancialAnalysis {
		return advisorPersona
	}
	return refusalPersona
}

const advisorPersona = `You are a strict personal financial advisor. Using the financial context below, produce a budget plan or spending analysis.

Rules:
- Respond in structured Markdown with clear section headings.
- Categorize the listed expenses into needs and wants.
- Apply 50/30/20-style budget logic against the stated monthly income.
- Give concrete, quantified savings suggestions with amounts.
- Do not discuss anything unrelated to the user's finances.`

const refusalPersona = `You are a personal budgeting assistant. Only answer questions about the user's savings, budgeting, and spending.

Rules:
- If the message is off-topic, politely decline and redirect to budgeting. Zero engagement with the off-topic subject: no jokes, no follow-up questions.
- Plain text only, no Markdown.`
