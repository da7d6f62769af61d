package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

// Embedder converts texts into embedding vectors. Satisfied by llm.Client.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Result is one search hit with its resolved item.
type Result struct {
	Item  *domain.Item
	Score float64
}

// Service indexes items and answers semantic queries over them.
type Service struct {
	store    *VecStore
	embedder Embedder
	items    repository.ItemRepo
}

func NewService(store *VecStore, embedder Embedder, items repository.ItemRepo) *Service {
	return &Service{store: store, embedder: embedder, items: items}
}

// embeddingText builds the text that represents an item in the index.
func embeddingText(i *domain.Item) string {
	if strings.TrimSpace(i.Notes) == "" {
		return i.Title
	}
	return i.Title + "\n" + i.Notes
}

// Index embeds an item and stores its vector. Re-indexing an item
// replaces its previous embedding.
func (s *Service) Index(ctx context.Context, item *domain.Item) error {
	vecs, err := s.embedder.Embed(ctx, []string{embeddingText(item)})
	if err != nil {
		return fmt.Errorf("embedding item %s: %w", item.DisplayID(), err)
	}
	return s.store.Upsert(ctx, item.ID, vecs[0])
}

// IndexAll rebuilds the index for every item, returning the number indexed.
func (s *Service) IndexAll(ctx context.Context) (int, error) {
	items, err := s.items.ListAll(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("listing items to index: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = embeddingText(it)
	}
	vecs, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embedding items: %w", err)
	}

	for i, it := range items {
		if err := s.store.Upsert(ctx, it.ID, vecs[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

// Query embeds the query text and returns the top-K matching items.
// Vectors whose items no longer exist are skipped.
func (s *Service) Query(ctx context.Context, query string, limit int) ([]Result, error) {
	vecs, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	var results []Result
	for _, hit := range s.store.Search(vecs[0], limit) {
		item, err := s.items.GetByID(ctx, hit.ItemID)
		if err != nil {
			continue
		}
		results = append(results, Result{Item: item, Score: hit.Score})
	}
	return results, nil
}

// Remove deletes an item's embedding from the index.
func (s *Service) Remove(ctx context.Context, itemID string) error {
	return s.store.Delete(ctx, itemID)
}
