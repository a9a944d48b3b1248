package domain

import (
	"fmt"
	"regexp"
)

// Form field names
const (
	FieldStudentName  = "studentName"
	FieldCourseYear   = "courseYear"
	FieldEmail        = "email"
	FieldWebsiteType  = "websiteType"
	FieldBudget       = "budget"
	FieldTimeline     = "timeline"
	FieldInstructions = "instructions"
)

// FieldRule declares how one form field is validated.
// MinLength of zero and a nil Pattern mean the check is not configured.
type FieldRule struct {
	Field     string
	Required  bool
	MinLength int
	Pattern   *regexp.Regexp
	Message   string
	ErrorSlot string
}

// RuleSet is an ordered list of field rules. Declaration order decides which
// failing field is reported first.
type RuleSet struct {
	rules []FieldRule
	index map[string]int
}

// NewRuleSet builds a rule set and its field to error slot table
func NewRuleSet(rules ...FieldRule) (*RuleSet, error) {
	rs := &RuleSet{
		rules: make([]FieldRule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for _, rule := range rules {
		if rule.Field == "" {
			return nil, fmt.Errorf("rule without field name")
		}
		if _, dup := rs.index[rule.Field]; dup {
			return nil, fmt.Errorf("duplicate rule for field %q", rule.Field)
		}
		if rule.ErrorSlot == "" {
			return nil, fmt.Errorf("rule for field %q has no error slot", rule.Field)
		}
		if rule.MinLength < 0 {
			return nil, fmt.Errorf("rule for field %q has negative min length", rule.Field)
		}
		rs.index[rule.Field] = len(rs.rules)
		rs.rules = append(rs.rules, rule)
	}
	return rs, nil
}

// Rules returns the rules in declaration order
func (rs *RuleSet) Rules() []FieldRule {
	out := make([]FieldRule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Rule looks up the rule governing a field
func (rs *RuleSet) Rule(field string) (FieldRule, bool) {
	i, ok := rs.index[field]
	if !ok {
		return FieldRule{}, false
	}
	return rs.rules[i], true
}

// ErrorSlot returns the error display slot for a field
func (rs *RuleSet) ErrorSlot(field string) (string, bool) {
	rule, ok := rs.Rule(field)
	return rule.ErrorSlot, ok
}

// Fields returns the governed field names in declaration order
func (rs *RuleSet) Fields() []string {
	out := make([]string, len(rs.rules))
	for i, rule := range rs.rules {
		out[i] = rule.Field
	}
	return out
}
