package model

import "time"

// Client is a durable client record. Email is the natural identity key and
// is unique across clients; SourceEnquiryIDs keeps the ordered set of
// enquiries that were merged into this record.
type Client struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	ClientCode         *string   `json:"clientCode" bson:"clientCode"`
	FirstName          string    `json:"firstName" bson:"firstName"`
	LastName           string    `json:"lastName" bson:"lastName"`
	Email              string    `json:"email" bson:"email"`
	Phone              string    `json:"phone" bson:"phone"`
	AlternatePhone     *string   `json:"alternatePhone" bson:"alternatePhone"`
	Nationality        string    `json:"nationality" bson:"nationality"`
	VisaType           string    `json:"visaType" bson:"visaType"`
	DestinationCountry string    `json:"destinationCountry" bson:"destinationCountry"`
	AssignedTo         string    `json:"assignedTo" bson:"assignedTo"`
	SourceEnquiryIDs   []string  `json:"sourceEnquiryIds" bson:"sourceEnquiryIds"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
}

// TeamMember is the assignment target for a converted client. The set of
// team members is owned by an external module; this service only reads it.
type TeamMember struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	DisplayName string `json:"displayName" bson:"displayName"`
}
