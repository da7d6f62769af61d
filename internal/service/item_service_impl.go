package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

type itemService struct {
	items repository.ItemRepo
}

func NewItemService(items repository.ItemRepo) ItemService {
	return &itemService{items: items}
}

func (s *itemService) Create(ctx context.Context, i *domain.Item) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	if i.Kind == "" {
		i.Kind = domain.KindTask
	}
	if i.Status == "" {
		i.Status = domain.ItemOpen
	}
	if i.Priority == "" {
		i.Priority = domain.PriorityNormal
	}
	if err := i.ValidateSchedule(); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return s.items.Create(ctx, i)
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) ListAll(ctx context.Context, includeClosed bool) ([]*domain.Item, error) {
	return s.items.ListAll(ctx, includeClosed)
}

func (s *itemService) Update(ctx context.Context, i *domain.Item) error {
	if err := i.ValidateSchedule(); err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	i.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, i)
}

func (s *itemService) MarkDone(ctx context.Context, id string) error {
	i, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if err := i.MarkDone(now); err != nil {
		return err
	}
	i.UpdatedAt = now
	return s.items.Update(ctx, i)
}

func (s *itemService) Drop(ctx context.Context, id string) error {
	i, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	i.Status = domain.ItemDropped
	i.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, i)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
