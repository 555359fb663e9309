package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/repository"
)

// EnquiryService is the thin intake/read surface around enquiries. Status
// transitions besides conversion belong to the CRUD editor and are not
// exposed here.
type EnquiryService interface {
	FindByID(context.Context, string) (*model.Enquiry, error)
	FindAll(context.Context) ([]*model.Enquiry, error)
	Create(context.Context, *model.Enquiry) (*model.Enquiry, error)
}

type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
}

func NewEnquiryService(enquiryRepo repository.EnquiryRepository) EnquiryService {
	return &enquiryService{enquiryRepo: enquiryRepo}
}

func (s *enquiryService) FindByID(ctx context.Context, id string) (*model.Enquiry, error) {
	return s.enquiryRepo.FindByID(ctx, id)
}

func (s *enquiryService) FindAll(ctx context.Context) ([]*model.Enquiry, error) {
	return s.enquiryRepo.FindAll(ctx)
}

func (s *enquiryService) Create(ctx context.Context, e *model.Enquiry) (*model.Enquiry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.EnquiryStatus = model.ParseEnquiryStatus(string(e.EnquiryStatus))
	if e.EnquiryStatus == "" {
		e.EnquiryStatus = model.StatusNew
	}
	e.IsClient = false
	e.ClientID = nil
	e.CreatedAt = time.Now().UTC()

	if err := s.enquiryRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
