package model

// ConversionStatus is the terminal outcome of a conversion attempt.
type ConversionStatus string

const (
	// ConversionConverted means a brand-new client was created.
	ConversionConverted ConversionStatus = "Converted"
	// ConversionMerged means the enquiry was attached to an existing client.
	ConversionMerged ConversionStatus = "Merged"
	// ConversionAborted means a duplicate was detected and the caller has
	// not confirmed a merge; no writes happened.
	ConversionAborted ConversionStatus = "Aborted"
)

// ConversionResult is what a conversion attempt resolves to.
type ConversionResult struct {
	Status ConversionStatus `json:"status"`
	// ClientID is set for Converted and Merged outcomes.
	ClientID string `json:"clientId,omitempty"`
	// MatchedClientID is set for Aborted outcomes so the caller can route
	// the user to the existing record.
	MatchedClientID string `json:"matchedClientId,omitempty"`
}

// DuplicateCheck is the identity matcher's answer for an enquiry's email.
// Phone is carried for display only, it is not an independent match key.
type DuplicateCheck struct {
	Exists          bool   `json:"exists"`
	MatchedClientID string `json:"matchedClientId,omitempty"`
	MatchedEmail    string `json:"matchedEmail,omitempty"`
	MatchedPhone    string `json:"matchedPhone,omitempty"`
}
