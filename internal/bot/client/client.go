// Package client is the bot's HTTP client for the store API. Calls
// use a fixed timeout and are not retried; a failure is surfaced
// immediately to the conversation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mall/internal/models"
	"mall/internal/services/authorization"
	"mall/internal/validation"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict")
)

const defaultTimeout = 30 * time.Second

// Client talks to the store API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// FindUserByCPF scans the user list for a matching tax id, comparing
// digits only. The API has no direct CPF lookup.
func (c *Client) FindUserByCPF(ctx context.Context, cpf string) (*models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/usuario", &users); err != nil {
		return nil, err
	}

	wanted := validation.Digits(cpf)
	for i := range users {
		if users[i].CPF != nil && validation.Digits(*users[i].CPF) == wanted {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (c *Client) GetCardByNumber(ctx context.Context, number string) (*models.Card, error) {
	var card models.Card
	if err := c.get(ctx, "/cartao/numero/"+number, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/produto", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/produto/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Authorize runs the authorization sequence. Declines come back as a
// result, not an error; the result message explains the refusal.
func (c *Client) Authorize(ctx context.Context, userID uint, req authorization.Request) (*authorization.Result, error) {
	path := fmt.Sprintf("/cartao/authorize/usuario/%d", userID)
	resp, err := c.send(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusBadRequest, http.StatusNotFound:
		var result authorization.Result
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode authorization result: %w", err)
		}
		return &result, nil
	default:
		return nil, fmt.Errorf("authorization request failed with status %d", resp.StatusCode)
	}
}

func (c *Client) CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	resp, err := c.send(ctx, http.MethodPost, "/pedido", input)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("order creation failed with status %d", resp.StatusCode)
	}
	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &order, nil
}

func (c *Client) ListOrdersByCard(ctx context.Context, cardID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, fmt.Sprintf("/pedido/cartao/%d", cardID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateEnrollment(ctx context.Context, input models.CreateEnrollmentInput) (*models.Enrollment, error) {
	resp, err := c.send(ctx, http.MethodPost, "/api/matriculas", input)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var enrollment models.Enrollment
		if err := json.NewDecoder(resp.Body).Decode(&enrollment); err != nil {
			return nil, fmt.Errorf("failed to decode enrollment: %w", err)
		}
		return &enrollment, nil
	case http.StatusConflict:
		return nil, ErrConflict
	default:
		return nil, fmt.Errorf("enrollment creation failed with status %d", resp.StatusCode)
	}
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("request to %s failed with status %d", path, resp.StatusCode)
	}
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	return resp, nil
}
