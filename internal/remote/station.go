package remote

import (
	"context"
	"net/url"

	"fuel-console/internal/models"
)

// Fuel rates

// GetFuelRates returns the current rates. A station that never saved rates
// answers 404; check with IsNotFound.
func (c *Client) GetFuelRates(ctx context.Context) (*models.FuelRates, error) {
	var rates models.FuelRates
	if err := c.get(ctx, "/fuel-rates", "/fuel-rates", nil, &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

func (c *Client) SaveFuelRates(ctx context.Context, rates models.FuelRates) error {
	return c.post(ctx, "/fuel-rates", "/fuel-rates", rates, nil)
}

// Pumps

func (c *Client) ListPumps(ctx context.Context) ([]models.Pump, error) {
	var pumps []models.Pump
	if err := c.get(ctx, "/pumps", "/pumps", nil, &pumps); err != nil {
		return nil, err
	}
	return pumps, nil
}

func (c *Client) CreatePump(ctx context.Context, p models.Pump) (*models.Pump, error) {
	var created models.Pump
	if err := c.post(ctx, "/pumps", "/pumps", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeletePump(ctx context.Context, id string) error {
	return c.delete(ctx, "/pumps/{id}", byID("/pumps", id))
}

// Shifts

func (c *Client) ListShifts(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := c.get(ctx, "/shifts", "/shifts", nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (c *Client) CreateShift(ctx context.Context, s models.Shift) (*models.Shift, error) {
	var created models.Shift
	if err := c.post(ctx, "/shifts", "/shifts", s, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateShift(ctx context.Context, id string, s models.Shift) (*models.Shift, error) {
	var updated models.Shift
	if err := c.put(ctx, "/shifts/{id}", byID("/shifts", id), s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteShift(ctx context.Context, id string) error {
	return c.delete(ctx, "/shifts/{id}", byID("/shifts", id))
}

// Fuel tests

func (c *Client) ListFuelTests(ctx context.Context) ([]models.FuelTest, error) {
	var tests []models.FuelTest
	if err := c.get(ctx, "/fueltest", "/fueltest", nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (c *Client) CreateFuelTest(ctx context.Context, t models.FuelTest) (*models.FuelTest, error) {
	var created models.FuelTest
	if err := c.post(ctx, "/fueltest", "/fueltest", t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// FuelTestsByDate lists the tests drawn from one pump on a YYYY-MM-DD date.
func (c *Client) FuelTestsByDate(ctx context.Context, pumpID, date string) ([]models.FuelTest, error) {
	q := url.Values{}
	q.Set("pumpId", pumpID)
	q.Set("date", date)
	var tests []models.FuelTest
	if err := c.get(ctx, "/fueltest/by-date", "/fueltest/by-date", q, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// Live payments

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.get(ctx, "/payments", "/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	var created models.Payment
	if err := c.post(ctx, "/payments", "/payments", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Dashboard

func (c *Client) GetDashboard(ctx context.Context) (*models.DashboardData, error) {
	var data models.DashboardData
	if err := c.get(ctx, "/dashboard", "/dashboard", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
