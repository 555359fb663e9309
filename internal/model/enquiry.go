package model

import (
	"strings"
	"time"
)

// Enquiry is a sales lead. The conversion engine treats its contact fields
// as immutable inputs once conversion starts and is only ever allowed to
// flip IsClient false->true together with setting ClientID, exactly once.
type Enquiry struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	EnquiryID          string        `json:"enquiryId" bson:"enquiryId"`
	FirstName          string        `json:"firstName" bson:"firstName"`
	LastName           string        `json:"lastName" bson:"lastName"`
	Email              string        `json:"email" bson:"email"`
	Phone              string        `json:"phone" bson:"phone"`
	AlternatePhone     *string       `json:"alternatePhone" bson:"alternatePhone"`
	Nationality        string        `json:"nationality" bson:"nationality"`
	VisaType           string        `json:"visaType" bson:"visaType"`
	DestinationCountry string        `json:"destinationCountry" bson:"destinationCountry"`
	EnquirySource      string        `json:"enquirySource" bson:"enquirySource"`
	BranchID           string        `json:"branchId" bson:"branchId"`
	EnquiryStatus      EnquiryStatus `json:"enquiryStatus" bson:"enquiryStatus"`
	AssignedConsultant *string       `json:"assignedConsultant" bson:"assignedConsultant"`
	IsClient           bool          `json:"isClient" bson:"isClient"`
	ClientID           *string       `json:"clientId" bson:"clientId"`
	CreatedAt          time.Time     `json:"createdAt" bson:"createdAt"`
}

// NormalizeEmail brings an email to the form used for identity matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
