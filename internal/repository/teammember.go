package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
)

// TeamMemberRepository is a read-only view of the team-member collection
// owned by the staff-management module. The conversion engine only needs a
// just-in-time lookup of assignment targets.
type TeamMemberRepository interface {
	FindAll(context.Context) ([]*model.TeamMember, error)
	FindByID(context.Context, string) (*model.TeamMember, error)
}

type postgresTeamMemberRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTeamMemberRepository(p *pgxpool.Pool) TeamMemberRepository {
	return &postgresTeamMemberRepository{pool: p}
}

func (r *postgresTeamMemberRepository) FindAll(ctx context.Context) ([]*model.TeamMember, error) {
	q := "SELECT id, display_name FROM team_members ORDER BY display_name"
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*model.TeamMember, 0)
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.DisplayName); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *postgresTeamMemberRepository) FindByID(ctx context.Context, id string) (*model.TeamMember, error) {
	var m model.TeamMember
	q := "SELECT id, display_name FROM team_members WHERE id = $1"
	row := r.pool.QueryRow(ctx, q, id)
	if err := row.Scan(&m.ID, &m.DisplayName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
