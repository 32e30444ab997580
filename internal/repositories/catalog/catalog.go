// Package catalog implements the product document store on Redis.
// Products are JSON documents keyed by id, with a set per category as
// the partition index and a global set for full scans.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mall/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrProductNotFound = errors.New("product not found")

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Store provides CRUD over catalog documents. There are no
// transactional guarantees; index sets and documents are written
// independently.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

const allKey = "produtos:todos"

func productKey(id string) string { return "produto:" + id }

func categoryKey(category string) string { return "produto:categoria:" + category }

func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]models.Product, error) {
	ids, err := s.client.SMembers(ctx, allKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	return s.fetchAll(ctx, ids)
}

func (s *Store) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	ids, err := s.client.SMembers(ctx, categoryKey(category)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list category ids: %w", err)
	}
	return s.fetchAll(ctx, ids)
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.Product, error) {
	data, err := s.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &product, nil
}

// FindByName returns the first product whose name matches exactly.
func (s *Store) FindByName(ctx context.Context, name string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Name == name {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *Store) Create(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		ID:          uuid.NewString(),
		Category:    input.Category,
		Name:        input.Name,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Description: input.Description,
	}
	if err := s.write(ctx, product); err != nil {
		return nil, err
	}
	if err := s.client.SAdd(ctx, allKey, product.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to index product: %w", err)
	}
	if err := s.client.SAdd(ctx, categoryKey(product.Category), product.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to index product category: %w", err)
	}
	return product, nil
}

func (s *Store) Update(ctx context.Context, id string, input models.CreateProductInput) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != "" && input.Category != product.Category {
		if err := s.client.SRem(ctx, categoryKey(product.Category), id).Err(); err != nil {
			return nil, fmt.Errorf("failed to reindex product category: %w", err)
		}
		if err := s.client.SAdd(ctx, categoryKey(input.Category), id).Err(); err != nil {
			return nil, fmt.Errorf("failed to reindex product category: %w", err)
		}
		product.Category = input.Category
	}
	if input.Name != "" {
		product.Name = input.Name
	}
	if !input.Price.IsZero() {
		product.Price = input.Price
	}
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	if input.Description != "" {
		product.Description = input.Description
	}

	if err := s.write(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, productKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.client.SRem(ctx, allKey, id)
	s.client.SRem(ctx, categoryKey(product.Category), id)
	return nil
}

func (s *Store) write(ctx context.Context, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	if err := s.client.Set(ctx, productKey(product.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write product: %w", err)
	}
	return nil
}

func (s *Store) fetchAll(ctx context.Context, ids []string) ([]models.Product, error) {
	products := make([]models.Product, 0, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a document; skip it.
			continue
		}
		var product models.Product
		if err := json.Unmarshal([]byte(raw), &product); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product: %w", err)
		}
		products = append(products, product)
	}
	return products, nil
}
