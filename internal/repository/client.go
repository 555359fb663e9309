package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	convErrors "github.com/developer-sourabh28/VISA-CRM-sub000/internal/errors"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/pkg/db/transactor"
)

const uniqueViolationCode = "23505"

// ClientRepository provides access to client records. The email column is
// unique; the store's uniqueness check is the single ordering authority for
// concurrent conversions of the same email.
type ClientRepository interface {
	FindByID(context.Context, string) (*model.Client, error)
	FindAll(context.Context) ([]*model.Client, error)
	// FindByEmail matches on the normalized email exactly.
	FindByEmail(context.Context, string) (*model.Client, error)
	// Create inserts a brand-new client. A lost check-then-act race
	// surfaces as *errors.UniqueViolationErr, never as a raw driver error.
	Create(context.Context, *model.Client) error
	// MergeEnquirySource appends the enquiry to the client's source set and
	// claims the assignment only if none is set yet. Idempotent: repeating
	// it neither duplicates the enquiry id nor reassigns.
	MergeEnquirySource(ctx context.Context, clientID string, enquiryID string, teamMemberID string) (*model.Client, error)
}

type postgresClientRepository struct {
	trx transactor.PgxTransactor
}

func NewPostgresClientRepository(trx transactor.PgxTransactor) ClientRepository {
	return &postgresClientRepository{trx: trx}
}

const clientColumns = `id, client_code, first_name, last_name, email, phone, alternate_phone,
                 nationality, visa_type, destination_country, assigned_to, source_enquiry_ids, created_at`

func (r *postgresClientRepository) FindByID(ctx context.Context, id string) (*model.Client, error) {
	q := "SELECT " + clientColumns + " FROM clients WHERE id = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresClientRepository) FindAll(ctx context.Context) ([]*model.Client, error) {
	q := "SELECT " + clientColumns + " FROM clients ORDER BY created_at"
	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*model.Client, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *postgresClientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	q := "SELECT " + clientColumns + " FROM clients WHERE email = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, model.NormalizeEmail(email))
	return r.scanRow(row)
}

func (r *postgresClientRepository) Create(ctx context.Context, c *model.Client) error {
	q := `INSERT INTO clients(` + clientColumns + `)
          VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.trx.Executor(ctx).Exec(ctx, q,
		c.ID, c.ClientCode, c.FirstName, c.LastName, model.NormalizeEmail(c.Email), c.Phone,
		c.AlternatePhone, c.Nationality, c.VisaType, c.DestinationCountry, c.AssignedTo,
		c.SourceEnquiryIDs, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return &convErrors.UniqueViolationErr{Email: model.NormalizeEmail(c.Email)}
		}
		return err
	}
	return nil
}

func (r *postgresClientRepository) MergeEnquirySource(ctx context.Context, clientID string, enquiryID string, teamMemberID string) (*model.Client, error) {
	// The store arbitrates both race-sensitive fields in one statement:
	// the source set never gains duplicates and the first assignment wins.
	q := `UPDATE clients
             SET source_enquiry_ids = CASE
                     WHEN source_enquiry_ids @> ARRAY[$2]::text[] THEN source_enquiry_ids
                     ELSE array_append(source_enquiry_ids, $2)
                 END,
                 assigned_to = CASE
                     WHEN assigned_to = '' THEN $3
                     ELSE assigned_to
                 END
           WHERE id = $1
       RETURNING ` + clientColumns
	row := r.trx.Executor(ctx).QueryRow(ctx, q, clientID, enquiryID, teamMemberID)
	return r.scanRow(row)
}

func (r *postgresClientRepository) scanRow(row pgx.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.ClientCode, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.AlternatePhone, &c.Nationality, &c.VisaType, &c.DestinationCountry, &c.AssignedTo,
		&c.SourceEnquiryIDs, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
