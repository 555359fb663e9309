package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/service"
)

type newEnquiry struct {
	EnquiryID          string  `json:"enquiryId"`
	FirstName          string  `json:"firstName" validate:"required"`
	LastName           string  `json:"lastName" validate:"required"`
	Email              string  `json:"email" validate:"required,email"`
	Phone              string  `json:"phone"`
	AlternatePhone     *string `json:"alternatePhone"`
	Nationality        string  `json:"nationality"`
	VisaType           string  `json:"visaType"`
	DestinationCountry string  `json:"destinationCountry"`
	EnquirySource      string  `json:"enquirySource"`
	BranchID           string  `json:"branchId"`
	EnquiryStatus      string  `json:"enquiryStatus"`
	AssignedConsultant *string `json:"assignedConsultant"`
}

type convertEnquiry struct {
	TeamMemberID   string `json:"teamMemberId"`
	AllowDuplicate bool   `json:"allowDuplicate"`
	ConfirmMerge   bool   `json:"confirmMerge"`
}

type reconcileEnquiry struct {
	TeamMemberID string `json:"teamMemberId"`
}

// EnquiryHTTPHandler is http handler for enquiry endpoints
type EnquiryHTTPHandler struct {
	enquirySvc service.EnquiryService
}

// NewEnquiryHTTPHandler builds new EnquiryHTTPHandler
func NewEnquiryHTTPHandler(enquirySvc service.EnquiryService) *EnquiryHTTPHandler {
	return &EnquiryHTTPHandler{enquirySvc: enquirySvc}
}

// Get returns single enquiry
// @Summary     Get enquiry
// @Tags        enquiries
// @Produce     json
// @Param       id     path     string true "Enquiry id"
// @Success     200    {object} model.Enquiry
// @Failure     404    {object} echo.HTTPError
// @Router      /api/v1/enquiries/{id} [get]
func (h *EnquiryHTTPHandler) Get(c echo.Context) error {
	e, err := h.enquirySvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if e == nil {
		return echo.NewHTTPError(http.StatusNotFound, "enquiry does not exist")
	}
	return c.JSON(http.StatusOK, e)
}

// GetAll returns all enquiries
// @Summary     List enquiries
// @Tags        enquiries
// @Produce     json
// @Success     200 {array} model.Enquiry
// @Router      /api/v1/enquiries [get]
func (h *EnquiryHTTPHandler) GetAll(c echo.Context) error {
	enquiries, err := h.enquirySvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enquiries)
}

// Post creates new enquiry
// @Summary     Create enquiry
// @Tags        enquiries
// @Accept      json
// @Produce     json
// @Param       enquiry body     newEnquiry true "New enquiry data"
// @Success     201     {object} model.Enquiry
// @Failure     400     {object} validation.PayloadError
// @Router      /api/v1/enquiries [post]
func (h *EnquiryHTTPHandler) Post(c echo.Context) error {
	var ne newEnquiry
	if err := c.Bind(&ne); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ne); err != nil {
		return err
	}

	e, err := h.enquirySvc.Create(c.Request().Context(), &model.Enquiry{
		EnquiryID:          ne.EnquiryID,
		FirstName:          ne.FirstName,
		LastName:           ne.LastName,
		Email:              ne.Email,
		Phone:              ne.Phone,
		AlternatePhone:     ne.AlternatePhone,
		Nationality:        ne.Nationality,
		VisaType:           ne.VisaType,
		DestinationCountry: ne.DestinationCountry,
		EnquirySource:      ne.EnquirySource,
		BranchID:           ne.BranchID,
		EnquiryStatus:      model.EnquiryStatus(ne.EnquiryStatus),
		AssignedConsultant: ne.AssignedConsultant,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

// ConversionHTTPHandler is http handler for the conversion workflow
type ConversionHTTPHandler struct {
	convSvc service.ConversionService
}

// NewConversionHTTPHandler builds new ConversionHTTPHandler
func NewConversionHTTPHandler(convSvc service.ConversionService) *ConversionHTTPHandler {
	return &ConversionHTTPHandler{convSvc: convSvc}
}

// CheckDuplicate answers the merge-vs-abort decision point without writes
// @Summary     Check enquiry for an existing client with the same identity
// @Tags        conversion
// @Produce     json
// @Param       id     path     string true "Enquiry id"
// @Success     200    {object} model.DuplicateCheck
// @Failure     404    {object} echo.HTTPError
// @Router      /api/v1/enquiries/{id}/duplicate [get]
func (h *ConversionHTTPHandler) CheckDuplicate(c echo.Context) error {
	check, err := h.convSvc.CheckDuplicate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, check)
}

// Convert promotes the enquiry into a new or merged client
// @Summary     Convert enquiry to client
// @Description Creates a client from the enquiry or, with confirmation, merges it into the matched one
// @Tags        conversion
// @Accept      json
// @Produce     json
// @Param       id         path     string         true "Enquiry id"
// @Param       conversion body     convertEnquiry true "Conversion decisions"
// @Success     200        {object} model.ConversionResult
// @Failure     400        {object} echo.HTTPError
// @Failure     409        {object} echo.HTTPError
// @Router      /api/v1/enquiries/{id}/convert [post]
func (h *ConversionHTTPHandler) Convert(c echo.Context) error {
	var ce convertEnquiry
	if err := c.Bind(&ce); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.convSvc.Convert(c.Request().Context(), c.Param("id"), ce.TeamMemberID, service.ConvertOptions{
		AllowDuplicate: ce.AllowDuplicate,
		ConfirmMerge:   ce.ConfirmMerge,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Reconcile re-runs duplicate-conflict repair for an enquiry
// @Summary     Reconcile a conversion that lost the uniqueness race
// @Tags        conversion
// @Accept      json
// @Produce     json
// @Param       id            path     string           true "Enquiry id"
// @Param       reconciliation body    reconcileEnquiry true "Assignment for the merge"
// @Success     200           {object} model.ConversionResult
// @Failure     409           {object} echo.HTTPError
// @Router      /api/v1/enquiries/{id}/reconcile [post]
func (h *ConversionHTTPHandler) Reconcile(c echo.Context) error {
	var re reconcileEnquiry
	if err := c.Bind(&re); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.convSvc.Reconcile(c.Request().Context(), c.Param("id"), re.TeamMemberID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// ClientHTTPHandler is http handler for client endpoints
type ClientHTTPHandler struct {
	clientSvc service.ClientService
}

// NewClientHTTPHandler builds new ClientHTTPHandler
func NewClientHTTPHandler(clientSvc service.ClientService) *ClientHTTPHandler {
	return &ClientHTTPHandler{clientSvc: clientSvc}
}

// Get returns single client
// @Summary     Get client
// @Tags        clients
// @Produce     json
// @Param       id     path     string true "Client id"
// @Success     200    {object} model.Client
// @Failure     404    {object} echo.HTTPError
// @Router      /api/v1/clients/{id} [get]
func (h *ClientHTTPHandler) Get(c echo.Context) error {
	client, err := h.clientSvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if client == nil {
		return echo.NewHTTPError(http.StatusNotFound, "client does not exist")
	}
	return c.JSON(http.StatusOK, client)
}

// GetAll returns all clients
// @Summary     List clients
// @Tags        clients
// @Produce     json
// @Success     200 {array} model.Client
// @Router      /api/v1/clients [get]
func (h *ClientHTTPHandler) GetAll(c echo.Context) error {
	clients, err := h.clientSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// TeamMemberHTTPHandler is http handler for team member lookups
type TeamMemberHTTPHandler struct {
	teamSvc service.TeamMemberService
}

// NewTeamMemberHTTPHandler builds new TeamMemberHTTPHandler
func NewTeamMemberHTTPHandler(teamSvc service.TeamMemberService) *TeamMemberHTTPHandler {
	return &TeamMemberHTTPHandler{teamSvc: teamSvc}
}

// GetAll returns the assignment targets for conversion
// @Summary     List team members
// @Tags        team-members
// @Produce     json
// @Success     200 {array} model.TeamMember
// @Router      /api/v1/team-members [get]
func (h *TeamMemberHTTPHandler) GetAll(c echo.Context) error {
	members, err := h.teamSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}
