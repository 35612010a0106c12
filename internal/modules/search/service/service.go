package service

import (
	"encoding/json"
	"html"
	"log"
	"strings"

	"craftvale.gg/communityapi/internal/entity"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

type SearchService interface {
	IndexAchievements(definitions []entity.AchievementDefinition) error
	IndexProducts(products []entity.Product) error
	Search(query, index string, limit int64) ([]map[string]any, error)
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	achievementFilterable := []string{"category"}
	achievementFilterableInterface := make([]any, len(achievementFilterable))
	for i, v := range achievementFilterable {
		achievementFilterableInterface[i] = v
	}
	_, err := s.client.Index("achievements").UpdateFilterableAttributes(&achievementFilterableInterface)
	if err != nil {
		log.Printf("Failed to update achievements filterable attributes: %v", err)
	}

	achievementSortable := []string{"points"}
	_, err = s.client.Index("achievements").UpdateSortableAttributes(&achievementSortable)
	if err != nil {
		log.Printf("Failed to update achievements sortable attributes: %v", err)
	}

	productFilterable := []string{"category"}
	productFilterableInterface := make([]any, len(productFilterable))
	for i, v := range productFilterable {
		productFilterableInterface[i] = v
	}
	_, err = s.client.Index("products").UpdateFilterableAttributes(&productFilterableInterface)
	if err != nil {
		log.Printf("Failed to update products filterable attributes: %v", err)
	}

	productSortable := []string{"price_cents", "sort_order"}
	_, err = s.client.Index("products").UpdateSortableAttributes(&productSortable)
	if err != nil {
		log.Printf("Failed to update products sortable attributes: %v", err)
	}

	log.Println("Meilisearch indexes initialized")
}

type meiliAchievementDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	IconURL     string `json:"icon_url"`
}

type meiliProductDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	SortOrder   int    `json:"sort_order"`
}

func (s *searchService) cleanContentForIndex(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *searchService) IndexAchievements(definitions []entity.AchievementDefinition) error {
	docs := make([]meiliAchievementDoc, 0, len(definitions))
	for _, def := range definitions {
		docs = append(docs, meiliAchievementDoc{
			ID:          def.ID.String(),
			Name:        def.Name,
			Description: s.cleanContentForIndex(def.Description),
			Category:    def.Category,
			Points:      def.Points,
			IconURL:     def.IconURL,
		})
	}

	task, err := s.client.Index("achievements").AddDocuments(docs, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed %d achievements, task id: %d", len(docs), task.TaskUID)
	return nil
}

func (s *searchService) IndexProducts(products []entity.Product) error {
	docs := make([]meiliProductDoc, 0, len(products))
	for _, p := range products {
		docs = append(docs, meiliProductDoc{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: s.cleanContentForIndex(p.Description),
			Slug:        p.Slug,
			Category:    p.Category,
			PriceCents:  p.PriceCents,
			SortOrder:   p.SortOrder,
		})
	}

	task, err := s.client.Index("products").AddDocuments(docs, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed %d products, task id: %d", len(docs), task.TaskUID)
	return nil
}

func (s *searchService) Search(query, index string, limit int64) ([]map[string]any, error) {
	if index != "achievements" && index != "products" {
		index = "achievements"
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	res, err := s.client.Index(index).Search(query, &meilisearch.SearchRequest{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return decodeHits(res.Hits), nil
}

// decodeHits unmarshals the raw hit fields into plain documents. Fields that
// fail to decode are dropped rather than failing the whole result.
func decodeHits(hits meilisearch.Hits) []map[string]any {
	docs := make([]map[string]any, 0, len(hits))
	for _, hit := range hits {
		doc := make(map[string]any, len(hit))
		for field, raw := range hit {
			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				continue
			}
			doc[field] = value
		}
		docs = append(docs, doc)
	}
	return docs
}

func strPtr(s string) *string {
	return &s
}
