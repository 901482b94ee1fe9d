package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Operation identifies one content transform. The set is closed: unknown
// operation names are rejected at the boundary.
type Operation string

const (
	OpOrganizeThoughts    Operation = "organize-thoughts"
	OpGenerateIntro       Operation = "generate-introduction"
	OpExpandContent       Operation = "expand-content"
	OpResearchDirections  Operation = "generate-research-directions"
	OpGenerateConclusion  Operation = "generate-conclusion"
	OpEditContent         Operation = "edit-content"
	OpAdjustTone          Operation = "adjust-tone"
	OpGenerateTitles      Operation = "generate-titles"
	OpPublishingPackage   Operation = "prepare-publishing-package"
)

// Result keys under which each operation's output is saved on the post's
// ai_results map.
var resultKeys = map[Operation]string{
	OpOrganizeThoughts:   "organizedThoughts",
	OpGenerateIntro:      "introduction",
	OpExpandContent:      "expandedPoints",
	OpResearchDirections: "researchDirections",
	OpGenerateConclusion: "conclusion",
	OpEditContent:        "editedContent",
	OpAdjustTone:         "adjustedTone",
	OpGenerateTitles:     "titles",
	OpPublishingPackage:  "publishingPackage",
}

type OrganizedThoughts struct {
	BlogTopic      string   `json:"blog_topic"`
	KeyPoints      []string `json:"key_points"`
	Structure      []string `json:"structure"`
	WritingPrompts []string `json:"writing_prompts"`
}

type Introduction struct {
	StoryHook     string `json:"story_hook"`
	QuestionHook  string `json:"question_hook"`
	StatisticHook string `json:"statistic_hook"`
	ContrastHook  string `json:"contrast_hook"`
}

type ExpandedContent struct {
	ExpandedContent       []string `json:"expanded_content"`
	TransitionSuggestions []string `json:"transition_suggestions"`
}

type ResearchDirections struct {
	ResearchAreas      []string `json:"research_areas"`
	StatisticsNeeded   []string `json:"statistics_needed"`
	ExpertPerspectives []string `json:"expert_perspectives"`
	CounterArguments   []string `json:"counter_arguments"`
}

type Conclusion struct {
	ConclusionParagraph string   `json:"conclusion_paragraph"`
	KeyTakeaways        []string `json:"key_takeaways"`
	CallToAction        string   `json:"call_to_action"`
}

type EditedContent struct {
	ContentFeedback       string   `json:"content_feedback"`
	StructureSuggestions  []string `json:"structure_suggestions"`
	ClarityImprovements   []string `json:"clarity_improvements"`
}

type AdjustedTone struct {
	AdjustedContent       string   `json:"adjusted_content"`
	WordChoiceSuggestions []string `json:"word_choice_suggestions"`
}

type Titles struct {
	AttentionGrabbingTitles []string `json:"attention_grabbing_titles"`
	SEOFriendlyTitles       []string `json:"seo_friendly_titles"`
}

type PublishingPackage struct {
	TitleOptions    Titles   `json:"title_options"`
	BlogSummary     string   `json:"blog_summary"`
	SuggestedTags   []string `json:"suggested_tags"`
	MetaDescription string   `json:"meta_description"`
}

const metaDescriptionLimit = 160

// transformSpec describes one operation: its task for the model and the
// exact JSON shape the response must carry.
type transformSpec struct {
	task   string
	schema string
}

var transformSpecs = map[Operation]transformSpec{
	OpOrganizeThoughts: {
		task: "Transform the user's unorganized thoughts, ideas and ramblings into structured blog ideas with writing prompts.",
		schema: `{
  "blog_topic": "A clear, focused blog topic based on the input",
  "key_points": ["Main ideas extracted and organized from the input"],
  "structure": ["Suggested structure for the blog post, one section per entry"],
  "writing_prompts": ["5-7 prompts to help start writing different sections"]
}`,
	},
	OpGenerateIntro: {
		task: "Craft engaging introductions for the blog content that hook readers immediately.",
		schema: `{
  "story_hook": "Introduction using a narrative approach",
  "question_hook": "Introduction using thought-provoking questions",
  "statistic_hook": "Introduction using a striking statistic or fact",
  "contrast_hook": "Introduction using contrast or challenging expectations"
}`,
	},
	OpExpandContent: {
		task: "Expand the brief points or short sentences into fully developed paragraphs.",
		schema: `{
  "expanded_content": ["Fully developed paragraphs from the input points"],
  "transition_suggestions": ["Smooth transitions between paragraphs"]
}`,
	},
	OpResearchDirections: {
		task: "Suggest research directions to strengthen the blog content.",
		schema: `{
  "research_areas": ["5-7 specific areas to research"],
  "statistics_needed": ["Types of statistics that would strengthen the post"],
  "expert_perspectives": ["Suggestions for expert viewpoints to include"],
  "counter_arguments": ["Potential opposing views to address"]
}`,
	},
	OpGenerateConclusion: {
		task: "Create a compelling conclusion that summarizes the blog content and drives action.",
		schema: `{
  "conclusion_paragraph": "Strong concluding paragraph",
  "key_takeaways": ["3-5 main points for readers to remember"],
  "call_to_action": "Engaging call to action"
}`,
	},
	OpEditContent: {
		task: "Review the blog content and provide specific improvement suggestions.",
		schema: `{
  "content_feedback": "General assessment of the content's strengths and weaknesses",
  "structure_suggestions": ["Recommendations to improve the flow and organization"],
  "clarity_improvements": ["Suggestions for clearer expression of ideas"]
}`,
	},
	OpAdjustTone: {
		task: "Rewrite the content to match the target tone.",
		schema: `{
  "adjusted_content": "Content rewritten in the target tone",
  "word_choice_suggestions": ["Specific vocabulary recommendations"]
}`,
	},
	OpGenerateTitles: {
		task: "Generate engaging blog titles from the content.",
		schema: `{
  "attention_grabbing_titles": ["5 attention-grabbing title options"],
  "seo_friendly_titles": ["3 SEO-optimized title variations"]
}`,
	},
}

// LookupOperation resolves a path parameter to a known operation.
func LookupOperation(name string) (Operation, bool) {
	op := Operation(name)
	if op == OpPublishingPackage {
		return op, true
	}
	_, ok := transformSpecs[op]
	return op, ok
}

// ResultKey returns the ai_results key for an operation.
func ResultKey(op Operation) string {
	return resultKeys[op]
}

func buildSystemPrompt(spec transformSpec) string {
	return fmt.Sprintf(`You are an expert blog writing assistant.

Task: %s

You must respond with a valid JSON object (no markdown code fences, no extra text) with exactly these fields:

%s

Respond ONLY with the JSON object, no other text.`, spec.task, spec.schema)
}

func buildUserPrompt(content, tone string) string {
	var sb strings.Builder
	sb.WriteString("Blog content:\n")
	sb.WriteString(content)
	if tone != "" {
		sb.WriteString("\n\nDesired tone: ")
		sb.WriteString(tone)
	}
	return sb.String()
}

// stripCodeFence removes a surrounding markdown code fence if the model
// added one despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// runTransform performs one completion call and decodes the JSON contract
// into out. Fails atomically: any backend or decode error leaves out
// untouched semantics-wise and surfaces as a processing error.
func runTransform(ctx context.Context, client CompletionClient, op Operation, content, tone string, out interface{}) error {
	spec, ok := transformSpecs[op]
	if !ok {
		return fmt.Errorf("unknown operation: %s", op)
	}

	raw, err := client.Complete(ctx, buildSystemPrompt(spec), buildUserPrompt(content, tone))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal([]byte(stripCodeFence(raw)), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// summarize and extractTags are single-field helper calls used only by the
// publishing package.
func summarize(ctx context.Context, client CompletionClient, content string) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	spec := transformSpec{
		task:   "Summarize the blog content in a short paragraph.",
		schema: `{"summary": "A concise summary of the blog content"}`,
	}
	raw, err := client.Complete(ctx, buildSystemPrompt(spec), buildUserPrompt(content, ""))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return "", fmt.Errorf("summarize: decode response: %w", err)
	}
	return out.Summary, nil
}

func extractTags(ctx context.Context, client CompletionClient, content string) ([]string, error) {
	var out struct {
		Tags []string `json:"tags"`
	}
	spec := transformSpec{
		task:   "Create relevant tags for the blog content.",
		schema: `{"tags": ["relevant", "topic", "tags"]}`,
	}
	raw, err := client.Complete(ctx, buildSystemPrompt(spec), buildUserPrompt(content, ""))
	if err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return nil, fmt.Errorf("tags: decode response: %w", err)
	}
	return out.Tags, nil
}

// TruncateMeta clips a summary to the meta-description length, counting
// characters rather than bytes so multi-byte text is never cut mid-rune.
func TruncateMeta(summary string) string {
	if utf8.RuneCountInString(summary) <= metaDescriptionLimit {
		return summary
	}
	return string([]rune(summary)[:metaDescriptionLimit])
}
