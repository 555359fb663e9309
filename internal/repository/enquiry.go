package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/pkg/db/transactor"
)

// EnquiryRepository provides access to enquiry records.
type EnquiryRepository interface {
	FindByID(context.Context, string) (*model.Enquiry, error)
	FindAll(context.Context) ([]*model.Enquiry, error)
	Create(context.Context, *model.Enquiry) error
	// MarkConverted performs the single transition the conversion engine
	// owns: is_client false->true with client_id set. It reports whether
	// the row actually transitioned, so a repeated call is a no-op.
	MarkConverted(ctx context.Context, id string, clientID string) (bool, error)
}

type postgresEnquiryRepository struct {
	trx transactor.PgxTransactor
}

func NewPostgresEnquiryRepository(trx transactor.PgxTransactor) EnquiryRepository {
	return &postgresEnquiryRepository{trx: trx}
}

func (r *postgresEnquiryRepository) FindByID(ctx context.Context, id string) (*model.Enquiry, error) {
	q := `SELECT id, enquiry_id, first_name, last_name, email, phone, alternate_phone, nationality,
                 visa_type, destination_country, enquiry_source, branch_id, enquiry_status,
                 assigned_consultant, is_client, client_id, created_at
            FROM enquiries WHERE id = $1`
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresEnquiryRepository) FindAll(ctx context.Context) ([]*model.Enquiry, error) {
	q := `SELECT id, enquiry_id, first_name, last_name, email, phone, alternate_phone, nationality,
                 visa_type, destination_country, enquiry_source, branch_id, enquiry_status,
                 assigned_consultant, is_client, client_id, created_at
            FROM enquiries ORDER BY created_at`
	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enquiries := make([]*model.Enquiry, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (r *postgresEnquiryRepository) Create(ctx context.Context, e *model.Enquiry) error {
	q := `INSERT INTO enquiries(id, enquiry_id, first_name, last_name, email, phone, alternate_phone,
                 nationality, visa_type, destination_country, enquiry_source, branch_id,
                 enquiry_status, assigned_consultant, is_client, client_id, created_at)
          VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.trx.Executor(ctx).Exec(ctx, q,
		e.ID, e.EnquiryID, e.FirstName, e.LastName, e.Email, e.Phone, e.AlternatePhone,
		e.Nationality, e.VisaType, e.DestinationCountry, e.EnquirySource, e.BranchID,
		string(e.EnquiryStatus), e.AssignedConsultant, e.IsClient, e.ClientID, e.CreatedAt,
	)
	return err
}

func (r *postgresEnquiryRepository) MarkConverted(ctx context.Context, id string, clientID string) (bool, error) {
	q := "UPDATE enquiries SET is_client = true, client_id = $2 WHERE id = $1 AND is_client = false"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id, clientID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresEnquiryRepository) scanRow(row pgx.Row) (*model.Enquiry, error) {
	var e model.Enquiry
	var status string
	err := row.Scan(&e.ID, &e.EnquiryID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.AlternatePhone, &e.Nationality, &e.VisaType, &e.DestinationCountry, &e.EnquirySource,
		&e.BranchID, &status, &e.AssignedConsultant, &e.IsClient, &e.ClientID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	e.EnquiryStatus = model.ParseEnquiryStatus(status)
	return &e, nil
}
