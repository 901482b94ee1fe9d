package services

import (
	"context"
	"log"
	"unicode/utf8"
)

// maxContentChars bounds transform inputs to keep cost and latency sane.
const maxContentChars = 50000

// AIService runs content transforms and, when asked, saves their results
// onto the owning post. It is a thin adapter between the completion client
// and the blog collection; business logic does not belong here.
type AIService struct {
	client CompletionClient
	blog   *BlogService
}

func NewAIService(client CompletionClient, blog *BlogService) *AIService {
	return &AIService{client: client, blog: blog}
}

// Process runs one transform and returns its typed result.
func (s *AIService) Process(ctx context.Context, op Operation, content, tone string) (interface{}, error) {
	if utf8.RuneCountInString(content) > maxContentChars {
		return nil, ErrContentTooLong
	}

	switch op {
	case OpOrganizeThoughts:
		var out OrganizedThoughts
		if err := runTransform(ctx, s.client, op, content, "", &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpGenerateIntro:
		var out Introduction
		if err := runTransform(ctx, s.client, op, content, tone, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpExpandContent:
		var out ExpandedContent
		if err := runTransform(ctx, s.client, op, content, tone, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpResearchDirections:
		var out ResearchDirections
		if err := runTransform(ctx, s.client, op, content, "", &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpGenerateConclusion:
		var out Conclusion
		if err := runTransform(ctx, s.client, op, content, tone, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpEditContent:
		var out EditedContent
		if err := runTransform(ctx, s.client, op, content, tone, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpAdjustTone:
		var out AdjustedTone
		if err := runTransform(ctx, s.client, op, content, tone, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpGenerateTitles:
		var out Titles
		if err := runTransform(ctx, s.client, op, content, tone, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case OpPublishingPackage:
		return s.preparePublishingPackage(ctx, content, tone)
	default:
		return nil, ErrUnknownOperation
	}
}

// ProcessAndSave runs the transform and, when postID is non-empty, merges
// the result under ai_results.<key> on that post. The save outcome is
// reported back so callers can tell whether the result actually landed; a
// failed save never discards a successful transform.
func (s *AIService) ProcessAndSave(ctx context.Context, op Operation, content, tone, postID string) (interface{}, bool, error) {
	result, err := s.Process(ctx, op, content, tone)
	if err != nil {
		return nil, false, err
	}

	if postID == "" {
		return result, false, nil
	}

	saved, err := s.blog.SaveAIResult(ctx, postID, ResultKey(op), result)
	if err != nil {
		log.Printf("Failed to save AI result for post %s under %s: %v", postID, ResultKey(op), err)
		return result, false, nil
	}
	if !saved {
		log.Printf("AI result for post %s under %s not saved: no matching post", postID, ResultKey(op))
	}
	return result, saved, nil
}

// preparePublishingPackage composes generate-titles with separate summary
// and tag-extraction calls into one bundle. Sequential calls; the first
// failure aborts the whole package.
func (s *AIService) preparePublishingPackage(ctx context.Context, content, tone string) (*PublishingPackage, error) {
	var titles Titles
	if err := runTransform(ctx, s.client, OpGenerateTitles, content, tone, &titles); err != nil {
		return nil, err
	}

	summary, err := summarize(ctx, s.client, content)
	if err != nil {
		return nil, err
	}

	tags, err := extractTags(ctx, s.client, content)
	if err != nil {
		return nil, err
	}

	return &PublishingPackage{
		TitleOptions:    titles,
		BlogSummary:     summary,
		SuggestedTags:   tags,
		MetaDescription: TruncateMeta(summary),
	}, nil
}
