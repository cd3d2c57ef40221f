package models

// Filter rule kinds and operators understood by the filter node. Rules of any
// other kind are ignored rather than rejected.
const (
	FilterTypeKeyword = "keyword"
	FilterTypeDate    = "date"
	FilterTypeScore   = "score"

	FilterOperatorAfter  = "after"
	FilterOperatorBefore = "before"
	FilterOperatorGt     = "gt"
	FilterOperatorLt     = "lt"
)

// FilterRule is one predicate evaluated against a branch payload.
type FilterRule struct {
	Type     string `json:"type"`
	Operator string `json:"operator,omitempty"`
	Value    string `json:"value"`
}

// ParseFilterRules extracts the ordered rule list from a filter node config.
// Malformed entries are skipped, matching the permissive handling of unknown
// rule kinds.
func ParseFilterRules(config map[string]any) []FilterRule {
	raw, ok := config["rules"].([]any)
	if !ok {
		return nil
	}

	rules := make([]FilterRule, 0, len(raw))

	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		rule := FilterRule{}
		rule.Type, _ = m["type"].(string)
		rule.Operator, _ = m["operator"].(string)

		switch v := m["value"].(type) {
		case string:
			rule.Value = v
		case float64:
			rule.Value = formatNumber(v)
		case int:
			rule.Value = formatNumber(float64(v))
		}

		if rule.Type != "" {
			rules = append(rules, rule)
		}
	}

	return rules
}
