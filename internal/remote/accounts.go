package remote

import (
	"context"

	"fuel-console/internal/models"
)

// Finance

func (c *Client) ListFinance(ctx context.Context) ([]models.FinanceEntry, error) {
	var entries []models.FinanceEntry
	if err := c.get(ctx, "/finance", "/finance", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) FinanceSummary(ctx context.Context) (*models.FinanceSummary, error) {
	var summary models.FinanceSummary
	if err := c.get(ctx, "/finance/summary", "/finance/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) CreateFinance(ctx context.Context, entry models.FinanceEntry) (*models.FinanceEntry, error) {
	var created models.FinanceEntry
	if err := c.post(ctx, "/finance", "/finance", entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateFinance(ctx context.Context, id string, entry models.FinanceEntry) (*models.FinanceEntry, error) {
	var updated models.FinanceEntry
	if err := c.put(ctx, "/finance/{id}", byID("/finance", id), entry, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteFinance(ctx context.Context, id string) error {
	return c.delete(ctx, "/finance/{id}", byID("/finance", id))
}

// Payroll

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.get(ctx, "/payroll/employee", "/payroll/employee", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, emp models.Employee) (*models.Employee, error) {
	var created models.Employee
	if err := c.post(ctx, "/payroll/employee", "/payroll/employee", emp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := c.get(ctx, "/payroll/attendance", "/payroll/attendance", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateAttendance(ctx context.Context, a models.Attendance) (*models.Attendance, error) {
	var created models.Attendance
	if err := c.post(ctx, "/payroll/attendance", "/payroll/attendance", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteAttendance(ctx context.Context, id string) error {
	return c.delete(ctx, "/payroll/attendance/{id}", byID("/payroll/attendance", id))
}

// Credit

func (c *Client) ListCreditAccounts(ctx context.Context) ([]models.CreditAccount, error) {
	var accounts []models.CreditAccount
	if err := c.get(ctx, "/credit", "/credit", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) CreateCreditAccount(ctx context.Context, acc models.CreditAccount) (*models.CreditAccount, error) {
	var created models.CreditAccount
	if err := c.post(ctx, "/credit", "/credit", acc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteCreditAccount(ctx context.Context, id string) error {
	return c.delete(ctx, "/credit/{id}", byID("/credit", id))
}

func (c *Client) CreateCreditTransaction(ctx context.Context, tx models.CreditTransactionRequest) error {
	return c.post(ctx, "/credit/transaction", "/credit/transaction", tx, nil)
}

// Admin

func (c *Client) ListAdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.get(ctx, "/admin/users", "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateAdminUser(ctx context.Context, req models.CreateAdminUserRequest) error {
	return c.post(ctx, "/admin/user", "/admin/user", req, nil)
}

func (c *Client) DeleteAdminUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/user/{id}", byID("/admin/user", id))
}

func (c *Client) ListAdminLogs(ctx context.Context) ([]models.AdminLog, error) {
	var logs []models.AdminLog
	if err := c.get(ctx, "/admin/logs", "/admin/logs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
