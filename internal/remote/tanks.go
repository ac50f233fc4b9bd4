package remote

import (
	"context"

	"fuel-console/internal/models"
)

func (c *Client) ListTanks(ctx context.Context) ([]models.TankEntry, error) {
	var entries []models.TankEntry
	if err := c.get(ctx, "/tanks", "/tanks", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CreateTank(ctx context.Context, entry models.TankEntry) (*models.TankEntry, error) {
	var created models.TankEntry
	if err := c.post(ctx, "/tanks", "/tanks", entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTank(ctx context.Context, id string, entry models.TankEntry) (*models.TankEntry, error) {
	var updated models.TankEntry
	if err := c.put(ctx, "/tanks/{id}", byID("/tanks", id), entry, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ListTankMasters(ctx context.Context) ([]models.TankMaster, error) {
	var masters []models.TankMaster
	if err := c.get(ctx, "/tank-master", "/tank-master", nil, &masters); err != nil {
		return nil, err
	}
	return masters, nil
}

func (c *Client) CreateTankMaster(ctx context.Context, tm models.TankMaster) (*models.TankMaster, error) {
	var created models.TankMaster
	if err := c.post(ctx, "/tank-master", "/tank-master", tm, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
