package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

const (
	customersTable        = "customers c"
	customerAccountsTable = "customer_accounts ca"
)

type CustomerRepository interface {
	ListActive() ([]*domain.Customer, error)
	GetBySlug(slug string) (*domain.Customer, error)
	ListAccounts(customerID int64) ([]*domain.CustomerAccount, error)
	ListAccountsByPlatform(customerID int64, platform domain.Platform) ([]*domain.CustomerAccount, error)
	GetCustomerForAccount(accountID string, platform domain.Platform) (*domain.Customer, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) ListActive() ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.slug, c.is_active").
		From(customersTable).
		Where(squirrel.Eq{"c.is_active": true}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := &domain.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Slug, &customer.Active); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) GetBySlug(slug string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.slug, c.is_active").
		From(customersTable).
		Where(squirrel.Eq{"c.slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer := &domain.Customer{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&customer.ID, &customer.Name, &customer.Slug, &customer.Active); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) ListAccounts(customerID int64) ([]*domain.CustomerAccount, error) {
	return r.listAccounts(squirrel.Eq{"ca.customer_id": customerID})
}

func (r *customerRepository) ListAccountsByPlatform(customerID int64, platform domain.Platform) ([]*domain.CustomerAccount, error) {
	return r.listAccounts(squirrel.Eq{"ca.customer_id": customerID, "ca.platform": string(platform)})
}

func (r *customerRepository) listAccounts(where squirrel.Eq) ([]*domain.CustomerAccount, error) {
	query, args, err := squirrel.
		Select("ca.customer_id, ca.account_id, ca.platform, ca.display_name").
		From(customerAccountsTable).
		Where(where).
		OrderBy("ca.account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.CustomerAccount, 0)
	for rows.Next() {
		account := &domain.CustomerAccount{}
		if err := rows.Scan(&account.CustomerID, &account.AccountID, &account.Platform, &account.DisplayName); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta do cliente: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// GetCustomerForAccount resolve o dono de uma conta orgânica via a tabela de
// vínculo. Uma conta pertence a no máximo um cliente por vez; sem vínculo o
// resultado é nil, nunca erro.
func (r *customerRepository) GetCustomerForAccount(accountID string, platform domain.Platform) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.slug, c.is_active").
		From(customersTable).
		Join("customer_accounts ca ON ca.customer_id = c.id").
		Where(squirrel.Eq{"ca.account_id": accountID, "ca.platform": string(platform)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer := &domain.Customer{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&customer.ID, &customer.Name, &customer.Slug, &customer.Active); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}
