package clauseparse

// ClauseSyntaxError reports that a clause's parenthesized payload failed
// its structured grammar.
type ClauseSyntaxError struct {
	Message string
}

func (e *ClauseSyntaxError) Error() string {
	return "clause syntax error: " + e.Message
}
