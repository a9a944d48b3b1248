package validator

import (
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	"gitlab.com/webrequest.net/internal/domain"
)

// EmailPattern is a shape check (local part, @, domain with a dot), not RFC 5322
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultRules returns the rule set of the website request form
func DefaultRules() *domain.RuleSet {
	rs, err := domain.NewRuleSet(
		domain.FieldRule{
			Field:     domain.FieldStudentName,
			Required:  true,
			MinLength: 2,
			Message:   "Please enter your full name (at least 2 characters)",
			ErrorSlot: "studentnameError",
		},
		domain.FieldRule{
			Field:     domain.FieldCourseYear,
			Required:  true,
			MinLength: 3,
			Message:   "Please enter your course and year",
			ErrorSlot: "courseyearError",
		},
		domain.FieldRule{
			Field:     domain.FieldEmail,
			Required:  true,
			Pattern:   EmailPattern,
			Message:   "Please enter a valid email address",
			ErrorSlot: "emailError",
		},
		domain.FieldRule{
			Field:     domain.FieldWebsiteType,
			Required:  true,
			Message:   "Please select the type of website you need",
			ErrorSlot: "websitetypeError",
		},
		domain.FieldRule{
			Field:     domain.FieldBudget,
			Required:  true,
			Message:   "Please select your budget range",
			ErrorSlot: "budgetError",
		},
	)
	if err != nil {
		panic(err)
	}
	return rs
}

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Field     string `yaml:"field"`
	Required  bool   `yaml:"required"`
	MinLength int    `yaml:"minLength"`
	Pattern   string `yaml:"pattern"`
	Message   string `yaml:"message"`
	ErrorSlot string `yaml:"errorSlot"`
}

// LoadRules reads an ordered rule set from YAML:
//
//	rules:
//	  - field: studentName
//	    required: true
//	    minLength: 2
//	    message: Please enter your full name
//	    errorSlot: studentnameError
func LoadRules(r io.Reader) (*domain.RuleSet, error) {
	var file ruleFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rules file declares no rules")
	}

	rules := make([]domain.FieldRule, 0, len(file.Rules))
	for _, entry := range file.Rules {
		rule := domain.FieldRule{
			Field:     entry.Field,
			Required:  entry.Required,
			MinLength: entry.MinLength,
			Message:   entry.Message,
			ErrorSlot: entry.ErrorSlot,
		}
		if entry.Pattern != "" {
			pattern, err := regexp.Compile(entry.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern for field %q: %w", entry.Field, err)
			}
			rule.Pattern = pattern
		}
		rules = append(rules, rule)
	}

	return domain.NewRuleSet(rules...)
}
