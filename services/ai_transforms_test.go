package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestLookupOperation(t *testing.T) {
	for _, name := range []string{
		"organize-thoughts",
		"generate-introduction",
		"expand-content",
		"generate-research-directions",
		"generate-conclusion",
		"edit-content",
		"adjust-tone",
		"generate-titles",
		"prepare-publishing-package",
	} {
		op, ok := LookupOperation(name)
		assert.True(t, ok, name)
		assert.Equal(t, Operation(name), op)
	}

	_, ok := LookupOperation("summarize")
	assert.False(t, ok)
	_, ok = LookupOperation("")
	assert.False(t, ok)
}

func TestResultKeys(t *testing.T) {
	assert.Equal(t, "organizedThoughts", ResultKey(OpOrganizeThoughts))
	assert.Equal(t, "introduction", ResultKey(OpGenerateIntro))
	assert.Equal(t, "expandedPoints", ResultKey(OpExpandContent))
	assert.Equal(t, "researchDirections", ResultKey(OpResearchDirections))
	assert.Equal(t, "conclusion", ResultKey(OpGenerateConclusion))
	assert.Equal(t, "editedContent", ResultKey(OpEditContent))
	assert.Equal(t, "adjustedTone", ResultKey(OpAdjustTone))
	assert.Equal(t, "titles", ResultKey(OpGenerateTitles))
	assert.Equal(t, "publishingPackage", ResultKey(OpPublishingPackage))
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
}

func TestTruncateMeta(t *testing.T) {
	short := "a short summary"
	assert.Equal(t, short, TruncateMeta(short))

	exact := strings.Repeat("x", 160)
	assert.Equal(t, exact, TruncateMeta(exact))

	long := strings.Repeat("x", 161)
	assert.Len(t, TruncateMeta(long), 160)
}

func TestTruncateMetaCountsCharacters(t *testing.T) {
	// 60 characters but 180 bytes; well under the limit, so untouched.
	short := strings.Repeat("€", 60)
	assert.Equal(t, short, TruncateMeta(short))

	long := strings.Repeat("é", 200)
	truncated := TruncateMeta(long)
	assert.Equal(t, 160, utf8.RuneCountInString(truncated))
	assert.True(t, utf8.ValidString(truncated))
}

func TestBuildUserPrompt(t *testing.T) {
	withTone := buildUserPrompt("my content", "casual")
	assert.Contains(t, withTone, "my content")
	assert.Contains(t, withTone, "casual")

	withoutTone := buildUserPrompt("my content", "")
	assert.NotContains(t, withoutTone, "Desired tone")
}
