package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"campus-news-api/models"
	"campus-news-api/repositories"
)

const (
	minQueryLength    = 2
	articleMatchLimit = 5
	authorMatchLimit  = 3
	totalMatchLimit   = 8
)

type SearchService interface {
	Suggestions(ctx context.Context, query string) ([]models.Suggestion, error)
}

type searchService struct {
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
}

func NewSearchService(articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository) SearchService {
	return &searchService{articleRepo: articleRepo, userRepo: userRepo}
}

// Suggestions merges title matches over published articles with author-name
// matches, article matches first, capped at 5 + 3 and 8 overall.
func (s *searchService) Suggestions(ctx context.Context, query string) ([]models.Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil, models.ValidationFailed(map[string][]string{
			"q": {"query must be at least 2 characters"},
		})
	}

	articles, err := s.articleRepo.SearchPublished(ctx, query, articleMatchLimit)
	if err != nil {
		return nil, err
	}

	authors, err := s.userRepo.SearchAuthors(ctx, query, authorMatchLimit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.Suggestion, 0, totalMatchLimit)
	for _, article := range articles {
		suggestions = append(suggestions, models.Suggestion{
			ID:        article.ID,
			Title:     article.Title,
			Slug:      article.Slug,
			Type:      models.SuggestionArticle,
			Highlight: Highlight(article.Title, query),
		})
	}

	for _, author := range authors {
		name := author.DisplayName
		if name == "" {
			name = author.Username
		}
		suggestions = append(suggestions, models.Suggestion{
			ID:        author.ID,
			Title:     name,
			Slug:      author.Username,
			Type:      models.SuggestionAuthor,
			Highlight: Highlight(name, query),
		})
	}

	if len(suggestions) > totalMatchLimit {
		suggestions = suggestions[:totalMatchLimit]
	}

	return suggestions, nil
}

// Highlight wraps the first case-insensitive occurrence of query in text with
// <mark> tags, preserving the original casing of the matched substring. The
// match is computed over runes so multibyte text never gets sliced mid-rune.
func Highlight(text, query string) string {
	runes := []rune(text)
	folded := []rune(strings.ToLower(text))
	needle := []rune(strings.ToLower(query))

	// Lowercasing can change the rune count for a handful of characters
	// (e.g. dotted capital I). Positions in folded would then no longer line
	// up with the original, so fall back to an exact match.
	if len(folded) != len(runes) {
		if idx := strings.Index(text, query); idx >= 0 {
			end := idx + len(query)
			return text[:idx] + "<mark>" + text[idx:end] + "</mark>" + text[end:]
		}
		return text
	}

	if len(needle) == 0 || len(needle) > len(folded) {
		return text
	}

	for i := 0; i+len(needle) <= len(folded); i++ {
		if string(folded[i:i+len(needle)]) == string(needle) {
			end := i + len(needle)
			return string(runes[:i]) + "<mark>" + string(runes[i:end]) + "</mark>" + string(runes[end:])
		}
	}
	return text
}
