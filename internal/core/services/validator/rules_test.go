package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/webrequest.net/internal/domain"
)

func TestDefaultRulesErrorSlots(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, []string{
		domain.FieldStudentName,
		domain.FieldCourseYear,
		domain.FieldEmail,
		domain.FieldWebsiteType,
		domain.FieldBudget,
	}, rules.Fields())

	want := map[string]string{
		domain.FieldStudentName: "studentnameError",
		domain.FieldCourseYear:  "courseyearError",
		domain.FieldEmail:       "emailError",
		domain.FieldWebsiteType: "websitetypeError",
		domain.FieldBudget:      "budgetError",
	}
	for field, slot := range want {
		got, ok := rules.ErrorSlot(field)
		require.True(t, ok, field)
		assert.Equal(t, slot, got)
	}

	_, ok := rules.ErrorSlot(domain.FieldInstructions)
	assert.False(t, ok)
}

func TestLoadRules(t *testing.T) {
	src := `
rules:
  - field: email
    required: true
    pattern: '^[^\s@]+@[^\s@]+\.[^\s@]+$'
    message: Email please
    errorSlot: emailError
  - field: studentName
    required: true
    minLength: 4
    message: Longer name
    errorSlot: nameError
`
	rules, err := LoadRules(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{domain.FieldEmail, domain.FieldStudentName}, rules.Fields())

	name, ok := rules.Rule(domain.FieldStudentName)
	require.True(t, ok)
	assert.Equal(t, 4, name.MinLength)
	assert.Nil(t, name.Pattern)

	email, _ := rules.Rule(domain.FieldEmail)
	require.NotNil(t, email.Pattern)
	assert.True(t, email.Pattern.MatchString("a@b.co"))
}

func TestLoadRulesRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":         "rules: []",
		"bad pattern":   "rules:\n  - field: a\n    pattern: '('\n    errorSlot: aError\n",
		"duplicate":     "rules:\n  - field: a\n    errorSlot: x\n  - field: a\n    errorSlot: y\n",
		"missing slot":  "rules:\n  - field: a\n",
		"not yaml list": "rules: 3",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadRules(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}
