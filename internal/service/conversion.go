package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/cache"
	convErrors "github.com/developer-sourabh28/VISA-CRM-sub000/internal/errors"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/repository"
	"github.com/developer-sourabh28/VISA-CRM-sub000/pkg/db/transactor"
)

// ConvertOptions carries the caller's decisions for a conversion attempt.
type ConvertOptions struct {
	// AllowDuplicate skips the duplicate pre-check entirely (legacy escape
	// hatch). The unique email index still holds, so a collision under this
	// flag is repaired through reconciliation like any lost race.
	AllowDuplicate bool
	// ConfirmMerge is the user's explicit merge confirmation after a
	// duplicate was detected. Without it a match aborts the attempt.
	ConfirmMerge bool
}

// ConversionService promotes enquiries into client records while keeping
// at most one client per normalized email, even under concurrent attempts.
type ConversionService interface {
	// CheckDuplicate is the first half of the two-call workflow: it answers
	// the merge-vs-abort decision point without performing any write.
	CheckDuplicate(ctx context.Context, enquiryID string) (*model.DuplicateCheck, error)
	// Convert validates the enquiry, resolves identity and commits the new
	// or merged client together with the enquiry's terminal mark.
	Convert(ctx context.Context, enquiryID string, teamMemberID string, opts ConvertOptions) (*model.ConversionResult, error)
	// Reconcile repairs a conversion that lost the uniqueness race by
	// merging the enquiry into the client that won. Idempotent; also the
	// operator entry point after a ConflictUnresolved outcome.
	Reconcile(ctx context.Context, enquiryID string, teamMemberID string) (*model.ConversionResult, error)
}

type conversionService struct {
	enquiryRepo repository.EnquiryRepository
	clientRepo  repository.ClientRepository
	teamRepo    repository.TeamMemberRepository
	matcher     IdentityMatcher
	clientCache cache.ClientCache
	trx         transactor.Transactor
}

func NewConversionService(
	enquiryRepo repository.EnquiryRepository,
	clientRepo repository.ClientRepository,
	teamRepo repository.TeamMemberRepository,
	matcher IdentityMatcher,
	clientCache cache.ClientCache,
	trx transactor.Transactor,
) ConversionService {
	return &conversionService{
		enquiryRepo: enquiryRepo,
		clientRepo:  clientRepo,
		teamRepo:    teamRepo,
		matcher:     matcher,
		clientCache: clientCache,
		trx:         trx,
	}
}

func (s *conversionService) CheckDuplicate(ctx context.Context, enquiryID string) (*model.DuplicateCheck, error) {
	e, err := s.loadConvertible(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	return s.matcher.Match(ctx, e.Email)
}

func (s *conversionService) Convert(ctx context.Context, enquiryID string, teamMemberID string, opts ConvertOptions) (*model.ConversionResult, error) {
	e, err := s.loadConvertible(ctx, enquiryID)
	if err != nil {
		return nil, err
	}

	if e.FirstName == "" {
		return nil, convErrors.NewValidationErr("firstName", "enquiry has no first name, it cannot seed a client record")
	}
	if e.LastName == "" {
		return nil, convErrors.NewValidationErr("lastName", "enquiry has no last name, it cannot seed a client record")
	}
	if model.NormalizeEmail(e.Email) == "" {
		return nil, convErrors.NewValidationErr("email", "enquiry has no email, identity matching is impossible")
	}

	if teamMemberID == "" {
		return nil, &convErrors.AssignmentRequiredErr{}
	}

	tm, err := s.teamRepo.FindByID(ctx, teamMemberID)
	if err != nil {
		return nil, convErrors.NewTransportErr(err)
	}
	if tm == nil {
		return nil, convErrors.NewEntryNotFoundErr(fmt.Sprintf("team member %s does not exist", teamMemberID))
	}

	if !opts.AllowDuplicate {
		check, err := s.matcher.Match(ctx, e.Email)
		if err != nil {
			return nil, err
		}

		if check.Exists {
			if !opts.ConfirmMerge {
				// decision point, not a failure: the caller routes the
				// user to the existing record or asks for confirmation
				return &model.ConversionResult{
					Status:          model.ConversionAborted,
					MatchedClientID: check.MatchedClientID,
				}, nil
			}
			return s.merge(ctx, e, check.MatchedClientID, teamMemberID)
		}
	}

	client := s.seedClient(e, teamMemberID)

	err = s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return err
		}

		transitioned, err := s.enquiryRepo.MarkConverted(ctx, e.ID, client.ID)
		if err != nil {
			return err
		}
		if !transitioned {
			// another attempt converted this very enquiry in between;
			// roll the fresh client back instead of orphaning it
			return &convErrors.AlreadyConvertedErr{EnquiryID: e.ID, ClientID: client.ID}
		}
		return nil
	})

	if err != nil {
		var uniqueErr *convErrors.UniqueViolationErr
		if errors.As(err, &uniqueErr) {
			logrus.Infof("enquiry %s lost the conversion race for %s, reconciling into the winner", e.ID, uniqueErr.Email)
			return s.Reconcile(ctx, e.ID, teamMemberID)
		}

		var convertedErr *convErrors.AlreadyConvertedErr
		if errors.As(err, &convertedErr) {
			return nil, err
		}
		return nil, convErrors.NewTransportErr(err)
	}

	return &model.ConversionResult{Status: model.ConversionConverted, ClientID: client.ID}, nil
}

func (s *conversionService) Reconcile(ctx context.Context, enquiryID string, teamMemberID string) (*model.ConversionResult, error) {
	e, err := s.loadConvertible(ctx, enquiryID)
	if err != nil {
		return nil, err
	}

	// the matcher is authoritative now: the conflicting write has landed
	check, err := s.matcher.Match(ctx, e.Email)
	if err != nil {
		return nil, err
	}
	if !check.Exists {
		// read-after-write visibility gap; the enquiry stays unconverted
		return nil, &convErrors.ConflictUnresolvedErr{Email: model.NormalizeEmail(e.Email)}
	}

	return s.merge(ctx, e, check.MatchedClientID, teamMemberID)
}

func (s *conversionService) merge(ctx context.Context, e *model.Enquiry, clientID string, teamMemberID string) (*model.ConversionResult, error) {
	var merged *model.Client

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		merged, err = s.clientRepo.MergeEnquirySource(ctx, clientID, e.ID, teamMemberID)
		if err != nil {
			return err
		}
		if merged == nil {
			return &convErrors.ConflictUnresolvedErr{Email: model.NormalizeEmail(e.Email)}
		}

		// transition may already have happened on a reconciliation re-run,
		// which is fine as long as the merge above stayed idempotent
		if _, err := s.enquiryRepo.MarkConverted(ctx, e.ID, merged.ID); err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		var unresolvedErr *convErrors.ConflictUnresolvedErr
		if errors.As(err, &unresolvedErr) {
			return nil, err
		}
		return nil, convErrors.NewTransportErr(err)
	}

	if err := s.clientCache.EvictByID(ctx, merged.ID); err != nil {
		logrus.Warnf("failed to evict merged client %s from cache - %v", merged.ID, err)
	}

	logrus.Infof("enquiry %s merged into client %s", e.ID, merged.ID)
	return &model.ConversionResult{Status: model.ConversionMerged, ClientID: merged.ID}, nil
}

func (s *conversionService) loadConvertible(ctx context.Context, enquiryID string) (*model.Enquiry, error) {
	e, err := s.enquiryRepo.FindByID(ctx, enquiryID)
	if err != nil {
		return nil, convErrors.NewTransportErr(err)
	}
	if e == nil {
		return nil, convErrors.NewEntryNotFoundErr(fmt.Sprintf("enquiry %s does not exist", enquiryID))
	}

	if e.IsClient {
		var clientID string
		if e.ClientID != nil {
			clientID = *e.ClientID
		}
		return nil, &convErrors.AlreadyConvertedErr{EnquiryID: e.ID, ClientID: clientID}
	}
	return e, nil
}

func (s *conversionService) seedClient(e *model.Enquiry, teamMemberID string) *model.Client {
	return &model.Client{
		ID:                 uuid.NewString(),
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              model.NormalizeEmail(e.Email),
		Phone:              e.Phone,
		AlternatePhone:     e.AlternatePhone,
		Nationality:        e.Nationality,
		VisaType:           e.VisaType,
		DestinationCountry: e.DestinationCountry,
		AssignedTo:         teamMemberID,
		SourceEnquiryIDs:   []string{e.ID},
		CreatedAt:          time.Now().UTC(),
	}
}
