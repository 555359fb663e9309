package service

import (
	"context"

	convErrors "github.com/developer-sourabh28/VISA-CRM-sub000/internal/errors"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/repository"
)

// IdentityMatcher answers whether a client already exists for a contact
// identity. Matching is exact on the normalized email; phone is carried for
// display but is not an independent match key.
type IdentityMatcher interface {
	Match(ctx context.Context, email string) (*model.DuplicateCheck, error)
}

type identityMatcher struct {
	clientRepo repository.ClientRepository
}

func NewIdentityMatcher(clientRepo repository.ClientRepository) IdentityMatcher {
	return &identityMatcher{clientRepo: clientRepo}
}

func (m *identityMatcher) Match(ctx context.Context, email string) (*model.DuplicateCheck, error) {
	c, err := m.clientRepo.FindByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		// A failed lookup must never be read as "no match": surfacing the
		// error is what keeps a transport blip from minting a duplicate.
		return nil, convErrors.NewTransportErr(err)
	}

	if c == nil {
		return &model.DuplicateCheck{Exists: false}, nil
	}

	return &model.DuplicateCheck{
		Exists:          true,
		MatchedClientID: c.ID,
		MatchedEmail:    c.Email,
		MatchedPhone:    c.Phone,
	}, nil
}
