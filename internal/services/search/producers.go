package search

import (
	"fmt"

	"github.com/killallgit/searchpro-api/internal/services/duckduckgo"
)

const (
	musicResultCount = 5
	imageResultCount = 8
)

// MusicResults builds the templated music results for a query. It never
// touches the network.
func MusicResults(query string) []Result {
	escaped := duckduckgo.Escape(query)

	results := make([]Result, 0, musicResultCount)
	for i := 1; i <= musicResultCount; i++ {
		results = append(results, Result{
			Title:   fmt.Sprintf("🎵 %s - Результат %d", query, i),
			Snippet: fmt.Sprintf("Музыкальный трек по запросу \"%s\"", query),
			URL:     "https://www.youtube.com/results?search_query=" + escaped,
			Source:  "YouTube",
			Type:    TypeMusic,
		})
	}
	return results
}

// ImageResults builds the templated image results for a query, each with a
// placeholder thumbnail.
func ImageResults(query string) []Result {
	escaped := duckduckgo.Escape(query)

	results := make([]Result, 0, imageResultCount)
	for i := 1; i <= imageResultCount; i++ {
		results = append(results, Result{
			Title:     fmt.Sprintf("Изображение: %s #%d", query, i),
			Snippet:   fmt.Sprintf("Картинка по запросу \"%s\"", query),
			URL:       "https://www.google.com/search?tbm=isch&q=" + escaped,
			Thumbnail: fmt.Sprintf("https://via.placeholder.com/300x200?text=%s+%d", escaped, i),
			Source:    "Поиск картинок",
			Type:      TypeImage,
		})
	}
	return results
}

// FallbackResults is substituted whenever the web provider yields nothing usable
func FallbackResults(query string) []Result {
	escaped := duckduckgo.Escape(query)

	return []Result{
		{
			Title:   "Результат поиска: " + query,
			Snippet: fmt.Sprintf("Информация по запросу \"%s\". Найдено через поисковую систему.", query),
			URL:     "https://duckduckgo.com/?q=" + escaped,
			Source:  duckduckgo.ProviderName,
		},
		{
			Title:   query + " - Википедия",
			Snippet: "Энциклопедическая статья о " + query,
			URL:     "https://ru.wikipedia.org/wiki/" + escaped,
			Source:  "Wikipedia",
		},
		{
			Title:   query + " на YouTube",
			Snippet: "Видео и материалы про " + query,
			URL:     "https://www.youtube.com/results?search_query=" + escaped,
			Source:  "YouTube",
		},
	}
}
