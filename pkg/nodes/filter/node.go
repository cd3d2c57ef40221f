// Package filter provides the local predicate node that prunes branches.
package filter

import (
	"context"
	"strings"

	"github.com/pressline/pressline/pkg/models"
)

// FilterNode evaluates an ordered rule list against the branch payload. The
// first rule that rejects short-circuits the node into returning nil, which
// drops the branch. A payload passing every rule continues unchanged.
// Unrecognized rule kinds are ignored.
type FilterNode struct {
	id    string
	rules []models.FilterRule
}

func NewFilterNode(id string, config map[string]any) (*FilterNode, error) {
	return &FilterNode{
		id:    id,
		rules: models.ParseFilterRules(config),
	}, nil
}

func (n *FilterNode) ID() string {
	return n.id
}

func (n *FilterNode) Type() string {
	return models.NodeTypeFilter
}

func (n *FilterNode) Execute(_ context.Context, ectx models.ExecutionContext) (any, error) {
	for _, rule := range n.rules {
		if !passes(rule, ectx.Data) {
			return nil, nil
		}
	}

	return ectx.Data, nil
}

func passes(rule models.FilterRule, data map[string]any) bool {
	switch rule.Type {
	case models.FilterTypeKeyword:
		return passesKeyword(rule, data)
	case models.FilterTypeDate:
		return passesDate(rule, data)
	case models.FilterTypeScore:
		return passesScore(rule, data)
	default:
		return true // unknown rule kind, no-op
	}
}

// passesKeyword rejects unless title or content contains the keyword,
// case-insensitive.
func passesKeyword(rule models.FilterRule, data map[string]any) bool {
	needle := strings.ToLower(rule.Value)
	title := strings.ToLower(models.AsString(data, "title"))
	content := strings.ToLower(models.AsString(data, "content"))

	return strings.Contains(title, needle) || strings.Contains(content, needle)
}

// passesDate requires the payload's published_at to be strictly after
// (operator "after") or strictly before (operator "before") the rule's date.
// Missing or unparsable dates reject: neither strict comparison can hold.
func passesDate(rule models.FilterRule, data map[string]any) bool {
	payloadDate, err := models.ParseDate(models.AsString(data, "published_at"))
	if err != nil {
		return false
	}

	ruleDate, err := models.ParseDate(rule.Value)
	if err != nil {
		return false
	}

	switch rule.Operator {
	case models.FilterOperatorAfter:
		return payloadDate.After(ruleDate)
	case models.FilterOperatorBefore:
		return payloadDate.Before(ruleDate)
	default:
		return true
	}
}

// passesScore compares the payload's priority_score against the threshold;
// a missing score counts as 0.
func passesScore(rule models.FilterRule, data map[string]any) bool {
	score := models.AsFloat(data["priority_score"], 0)
	threshold := models.AsFloat(rule.Value, 0)

	switch rule.Operator {
	case models.FilterOperatorGt:
		return score > threshold
	case models.FilterOperatorLt:
		return score < threshold
	default:
		return true
	}
}
