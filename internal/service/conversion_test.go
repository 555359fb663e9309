package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	cacheMocks "github.com/developer-sourabh28/VISA-CRM-sub000/internal/cache/mocks"
	convErrors "github.com/developer-sourabh28/VISA-CRM-sub000/internal/errors"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	rpsMocks "github.com/developer-sourabh28/VISA-CRM-sub000/internal/repository/mocks"
	"github.com/developer-sourabh28/VISA-CRM-sub000/pkg/db/transactor"
)

type conversionTestData struct {
	ctx        context.Context
	enquiry    *model.Enquiry
	teamMember *model.TeamMember
}

type conversionServiceTestSuite struct {
	suite.Suite
	convSvc         ConversionService
	enquiryRpsMock  *rpsMocks.EnquiryRepository
	clientRpsMock   *rpsMocks.ClientRepository
	teamRpsMock     *rpsMocks.TeamMemberRepository
	clientCacheMock *cacheMocks.ClientCache
	testData        *conversionTestData
}

func (s *conversionServiceTestSuite) SetupSuite() {
	s.testData = &conversionTestData{
		ctx: context.Background(),
		enquiry: &model.Enquiry{
			ID:            "0c6b4b2a-95e1-40b2-b03e-bfc61dcd50b0",
			EnquiryID:     "ENQ-0001",
			FirstName:     "Aman",
			LastName:      "Verma",
			Email:         "Aman.Verma@somemail.com",
			Phone:         "+91-9800000001",
			EnquiryStatus: model.StatusQualified,
		},
		teamMember: &model.TeamMember{
			ID:          "70b0e6a4-6a51-4b85-b1db-0147d92e3f66",
			DisplayName: "Priya Nair",
		},
	}
}

func (s *conversionServiceTestSuite) SetupTest() {
	t := s.T()
	s.enquiryRpsMock = rpsMocks.NewEnquiryRepository(t)
	s.clientRpsMock = rpsMocks.NewClientRepository(t)
	s.teamRpsMock = rpsMocks.NewTeamMemberRepository(t)
	s.clientCacheMock = cacheMocks.NewClientCache(t)

	matcher := NewIdentityMatcher(s.clientRpsMock)
	s.convSvc = NewConversionService(s.enquiryRpsMock, s.clientRpsMock, s.teamRpsMock, matcher, s.clientCacheMock, transactor.Nop())
}

func (s *conversionServiceTestSuite) TestConvertCreatesNewClient() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry
	teamMember := s.testData.teamMember

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.teamRpsMock.On("FindByID", ctx, teamMember.ID).Return(teamMember, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(nil, nil).Once()

	var created *model.Client
	s.clientRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Client")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.Client)
	}).Return(nil).Once()
	s.enquiryRpsMock.On("MarkConverted", ctx, enquiry.ID, mock.AnythingOfType("string")).Return(true, nil).Once()

	s.T().Log("no client holds the email, so a new client must be committed")
	{
		res, err := s.convSvc.Convert(ctx, enquiry.ID, teamMember.ID, ConvertOptions{})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(model.ConversionConverted, res.Status, "outcome must be Converted")
		s.Assert().Equal(created.ID, res.ClientID, "result must point at the created client")
		s.Assert().Equal([]string{enquiry.ID}, created.SourceEnquiryIDs, "enquiry must be the sole source")
		s.Assert().Equal(teamMember.ID, created.AssignedTo, "assignment must be taken from the attempt")
		s.Assert().Equal("aman.verma@somemail.com", created.Email, "email must be stored normalized")
	}
}

func (s *conversionServiceTestSuite) TestConvertAlreadyConverted() {
	ctx := s.testData.ctx

	clientID := "a2a3c2a7-91cf-4087-a4d4-a3cbd8a33cf3"
	converted := *s.testData.enquiry
	converted.IsClient = true
	converted.ClientID = &clientID

	s.enquiryRpsMock.On("FindByID", ctx, converted.ID).Return(&converted, nil).Once()

	s.T().Log("a second conversion call must not create a second client")
	{
		_, err := s.convSvc.Convert(ctx, converted.ID, s.testData.teamMember.ID, ConvertOptions{})
		var convertedErr *convErrors.AlreadyConvertedErr
		s.Assert().ErrorAs(err, &convertedErr, "AlreadyConverted must be raised")
		s.Assert().Equal(clientID, convertedErr.ClientID, "error must carry the existing client id")
		s.clientRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Client"))
	}
}

func (s *conversionServiceTestSuite) TestConvertAssignmentRequired() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()

	s.T().Log("conversion with no team member selected must be rejected before any write")
	{
		_, err := s.convSvc.Convert(ctx, enquiry.ID, "", ConvertOptions{})
		var assignmentErr *convErrors.AssignmentRequiredErr
		s.Assert().ErrorAs(err, &assignmentErr, "AssignmentRequired must be raised")
		s.clientRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Client"))
		s.enquiryRpsMock.AssertNotCalled(s.T(), "MarkConverted", ctx, enquiry.ID, mock.AnythingOfType("string"))
	}
}

func (s *conversionServiceTestSuite) TestConvertMissingNameValidation() {
	ctx := s.testData.ctx

	nameless := *s.testData.enquiry
	nameless.LastName = ""

	s.enquiryRpsMock.On("FindByID", ctx, nameless.ID).Return(&nameless, nil).Once()

	s.T().Log("an enquiry without the minimum viable identity must fail validation")
	{
		_, err := s.convSvc.Convert(ctx, nameless.ID, s.testData.teamMember.ID, ConvertOptions{})
		var validationErr *convErrors.ValidationErr
		s.Assert().ErrorAs(err, &validationErr, "ValidationErr must be raised")
		s.clientRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Client"))
	}
}

func (s *conversionServiceTestSuite) TestConvertDuplicateDetectedAborts() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry
	teamMember := s.testData.teamMember

	existing := &model.Client{
		ID:    "7e508cbd-4d2c-44ec-a3a5-0f3f7a63a0fb",
		Email: "aman.verma@somemail.com",
	}

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.teamRpsMock.On("FindByID", ctx, teamMember.ID).Return(teamMember, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(existing, nil).Once()

	s.T().Log("a detected duplicate without merge confirmation must abort with the match info")
	{
		res, err := s.convSvc.Convert(ctx, enquiry.ID, teamMember.ID, ConvertOptions{})
		s.Assert().NoError(err, "duplicate detection is a decision point, not an error")
		s.Assert().Equal(model.ConversionAborted, res.Status, "outcome must be Aborted")
		s.Assert().Equal(existing.ID, res.MatchedClientID, "match info must be returned to the caller")
		s.clientRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Client"))
		s.clientRpsMock.AssertNotCalled(s.T(), "MergeEnquirySource", ctx, existing.ID, enquiry.ID, teamMember.ID)
	}
}

func (s *conversionServiceTestSuite) TestConvertConfirmedMerge() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry
	teamMember := s.testData.teamMember

	existing := &model.Client{
		ID:               "7e508cbd-4d2c-44ec-a3a5-0f3f7a63a0fb",
		Email:            "aman.verma@somemail.com",
		AssignedTo:       "someone-else",
		SourceEnquiryIDs: []string{"earlier-enquiry"},
	}
	merged := *existing
	merged.SourceEnquiryIDs = append(merged.SourceEnquiryIDs, enquiry.ID)

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.teamRpsMock.On("FindByID", ctx, teamMember.ID).Return(teamMember, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(existing, nil).Once()
	s.clientRpsMock.On("MergeEnquirySource", ctx, existing.ID, enquiry.ID, teamMember.ID).Return(&merged, nil).Once()
	s.enquiryRpsMock.On("MarkConverted", ctx, enquiry.ID, existing.ID).Return(true, nil).Once()
	s.clientCacheMock.On("EvictByID", ctx, existing.ID).Return(nil).Once()

	s.T().Log("a confirmed merge must attach the enquiry to the matched client")
	{
		res, err := s.convSvc.Convert(ctx, enquiry.ID, teamMember.ID, ConvertOptions{ConfirmMerge: true})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(model.ConversionMerged, res.Status, "outcome must be Merged")
		s.Assert().Equal(existing.ID, res.ClientID, "result must point at the matched client")
		s.clientRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Client"))
	}
}

func (s *conversionServiceTestSuite) TestConvertLostRaceIsReconciled() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry
	teamMember := s.testData.teamMember

	winner := &model.Client{
		ID:               "52c1cbb6-0fa5-4ae5-8b54-252bbb6fe81a",
		Email:            "aman.verma@somemail.com",
		AssignedTo:       "rival-team-member",
		SourceEnquiryIDs: []string{"rival-enquiry"},
	}
	merged := *winner
	merged.SourceEnquiryIDs = append(merged.SourceEnquiryIDs, enquiry.ID)

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Twice()
	s.teamRpsMock.On("FindByID", ctx, teamMember.ID).Return(teamMember, nil).Once()
	// pre-check sees no client, the commit loses the race, the reconciler
	// re-reads and finds the winner
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(nil, nil).Once()
	s.clientRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Client")).
		Return(&convErrors.UniqueViolationErr{Email: "aman.verma@somemail.com"}).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(winner, nil).Once()
	s.clientRpsMock.On("MergeEnquirySource", ctx, winner.ID, enquiry.ID, teamMember.ID).Return(&merged, nil).Once()
	s.enquiryRpsMock.On("MarkConverted", ctx, enquiry.ID, winner.ID).Return(true, nil).Once()
	s.clientCacheMock.On("EvictByID", ctx, winner.ID).Return(nil).Once()

	s.T().Log("losing the uniqueness race must repair into a merge, not fail")
	{
		res, err := s.convSvc.Convert(ctx, enquiry.ID, teamMember.ID, ConvertOptions{})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(model.ConversionMerged, res.Status, "outcome must be Merged onto the winner")
		s.Assert().Equal(winner.ID, res.ClientID, "result must point at the race winner")
	}
}

func (s *conversionServiceTestSuite) TestConvertTransportFailureLeavesNoState() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry
	teamMember := s.testData.teamMember

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.teamRpsMock.On("FindByID", ctx, teamMember.ID).Return(teamMember, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(nil, errors.New("connection reset")).Once()

	s.T().Log("a failed identity lookup must surface as retryable, never as no-match")
	{
		_, err := s.convSvc.Convert(ctx, enquiry.ID, teamMember.ID, ConvertOptions{})
		var transportErr *convErrors.TransportErr
		s.Assert().ErrorAs(err, &transportErr, "TransportErr must be raised")
		s.Assert().True(transportErr.Retryable(), "transport failures are retryable")
		s.clientRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Client"))
		s.enquiryRpsMock.AssertNotCalled(s.T(), "MarkConverted", ctx, enquiry.ID, mock.AnythingOfType("string"))
	}
}

func (s *conversionServiceTestSuite) TestReconcileUnresolvedWhenWinnerInvisible() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry
	teamMember := s.testData.teamMember

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(nil, nil).Once()

	s.T().Log("the winner not being visible yet must keep the enquiry unconverted")
	{
		_, err := s.convSvc.Reconcile(ctx, enquiry.ID, teamMember.ID)
		var unresolvedErr *convErrors.ConflictUnresolvedErr
		s.Assert().ErrorAs(err, &unresolvedErr, "ConflictUnresolved must be raised")
		s.Assert().True(unresolvedErr.Retryable(), "the outcome is transient and retryable")
		s.enquiryRpsMock.AssertNotCalled(s.T(), "MarkConverted", ctx, enquiry.ID, mock.AnythingOfType("string"))
	}
}

func (s *conversionServiceTestSuite) TestReconcileIsIdempotent() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry
	teamMember := s.testData.teamMember

	winner := &model.Client{
		ID:    "52c1cbb6-0fa5-4ae5-8b54-252bbb6fe81a",
		Email: "aman.verma@somemail.com",
		// the enquiry is already merged in from a previous reconciliation run
		SourceEnquiryIDs: []string{"rival-enquiry", enquiry.ID},
		AssignedTo:       "rival-team-member",
	}

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(winner, nil).Once()
	s.clientRpsMock.On("MergeEnquirySource", ctx, winner.ID, enquiry.ID, teamMember.ID).Return(winner, nil).Once()
	s.enquiryRpsMock.On("MarkConverted", ctx, enquiry.ID, winner.ID).Return(false, nil).Once()
	s.clientCacheMock.On("EvictByID", ctx, winner.ID).Return(nil).Once()

	s.T().Log("re-running reconciliation for the same enquiry must succeed without new writes")
	{
		res, err := s.convSvc.Reconcile(ctx, enquiry.ID, teamMember.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(model.ConversionMerged, res.Status, "outcome must stay Merged")
		s.Assert().Equal(winner.ID, res.ClientID, "result must keep pointing at the same client")
	}
}

func (s *conversionServiceTestSuite) TestCheckDuplicateFindsMatch() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry

	existing := &model.Client{
		ID:    "7e508cbd-4d2c-44ec-a3a5-0f3f7a63a0fb",
		Email: "aman.verma@somemail.com",
		Phone: "+91-9800000077",
	}

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(existing, nil).Once()

	s.T().Log("the duplicate check must report the matched identity without writes")
	{
		check, err := s.convSvc.CheckDuplicate(ctx, enquiry.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().True(check.Exists, "the match must be reported")
		s.Assert().Equal(existing.ID, check.MatchedClientID, "matched client id must be carried")
		s.Assert().Equal(existing.Phone, check.MatchedPhone, "phone is informational for the decision")
	}
}

func (s *conversionServiceTestSuite) TestCheckDuplicateNoMatch() {
	ctx := s.testData.ctx
	enquiry := s.testData.enquiry

	s.enquiryRpsMock.On("FindByID", ctx, enquiry.ID).Return(enquiry, nil).Once()
	s.clientRpsMock.On("FindByEmail", ctx, "aman.verma@somemail.com").Return(nil, nil).Once()

	s.T().Log("no client with the email means no duplicate")
	{
		check, err := s.convSvc.CheckDuplicate(ctx, enquiry.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().False(check.Exists, "no match must be reported")
	}
}

func (s *conversionServiceTestSuite) TestConvertEnquiryMissing() {
	ctx := s.testData.ctx

	s.enquiryRpsMock.On("FindByID", ctx, "unknown").Return(nil, nil).Once()

	s.T().Log("a missing enquiry must fail fast")
	{
		_, err := s.convSvc.Convert(ctx, "unknown", s.testData.teamMember.ID, ConvertOptions{})
		var notFoundErr *convErrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "EntryNotFound must be raised")
	}
}

// start conversion service test suite
func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(conversionServiceTestSuite))
}
