package service

import (
	"context"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/repository"
)

// TeamMemberService lists assignment targets for the conversion UI.
type TeamMemberService interface {
	FindAll(context.Context) ([]*model.TeamMember, error)
}

type teamMemberService struct {
	teamRepo repository.TeamMemberRepository
}

func NewTeamMemberService(teamRepo repository.TeamMemberRepository) TeamMemberService {
	return &teamMemberService{teamRepo: teamRepo}
}

func (s *teamMemberService) FindAll(ctx context.Context) ([]*model.TeamMember, error) {
	return s.teamRepo.FindAll(ctx)
}
