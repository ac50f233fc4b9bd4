package remote

import (
	"context"

	"fuel-console/internal/models"
)

func (c *Client) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := c.get(ctx, "/sales", "/sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) CreateSale(ctx context.Context, sale models.Sale) (*models.Sale, error) {
	var created models.Sale
	if err := c.post(ctx, "/sales", "/sales", sale, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSale(ctx context.Context, id string, sale models.Sale) (*models.Sale, error) {
	var updated models.Sale
	if err := c.put(ctx, "/sales/{id}", byID("/sales", id), sale, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSale(ctx context.Context, id string) error {
	return c.delete(ctx, "/sales/{id}", byID("/sales", id))
}
