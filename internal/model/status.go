package model

import "strings"

// EnquiryStatus is the working status of an enquiry. The historical data
// carries a loose, case-inconsistent vocabulary, so unrecognized values are
// preserved verbatim instead of being rejected.
type EnquiryStatus string

const (
	StatusNew        EnquiryStatus = "New"
	StatusContacted  EnquiryStatus = "Contacted"
	StatusQualified  EnquiryStatus = "Qualified"
	StatusProcessing EnquiryStatus = "Processing"
	StatusClosed     EnquiryStatus = "Closed"
	StatusLost       EnquiryStatus = "Lost"
	StatusActive     EnquiryStatus = "active"
	StatusNotConnect EnquiryStatus = "not connect"
	StatusConfirmed  EnquiryStatus = "confirmed"
	StatusCancelled  EnquiryStatus = "cancelled"
	StatusOffLeads   EnquiryStatus = "off leads"
	StatusReferral   EnquiryStatus = "referral"
)

var canonicalStatuses = []EnquiryStatus{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusProcessing,
	StatusClosed,
	StatusLost,
	StatusActive,
	StatusNotConnect,
	StatusConfirmed,
	StatusCancelled,
	StatusOffLeads,
	StatusReferral,
}

// ParseEnquiryStatus normalizes raw status values to their canonical form.
// Matching is case-insensitive and ignores surrounding whitespace. Values
// outside the known vocabulary are returned as-is and report IsLegacy.
func ParseEnquiryStatus(raw string) EnquiryStatus {
	norm := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range canonicalStatuses {
		if norm == strings.ToLower(string(s)) {
			return s
		}
	}
	return EnquiryStatus(strings.TrimSpace(raw))
}

// IsLegacy reports whether the status is outside the canonical vocabulary.
func (s EnquiryStatus) IsLegacy() bool {
	for _, c := range canonicalStatuses {
		if s == c {
			return false
		}
	}
	return true
}
