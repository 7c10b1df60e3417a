package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	"github.com/clipcraft/fulfillment/common"
	"github.com/clipcraft/fulfillment/customers/dal"
	"github.com/clipcraft/fulfillment/customers/domain"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/logger"
)

// CustomerCreator creates customer profiles on the payment gateway.
type CustomerCreator interface {
	NewCustomer(ctx context.Context, params *stripe.CustomerParams) (*stripe.Customer, error)
}

// EmailLookupFn resolves the email address of an internal user.
type EmailLookupFn func(ctx context.Context, userID string) (string, error)

type CustomerDirectoryService struct {
	loggerProvider logger.Provider
	mappingsDAL    dal.CustomerMappings
	payments       CustomerCreator
	emailLookup    EmailLookupFn
}

func NewCustomerDirectoryService(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	payments CustomerCreator,
	emailLookup EmailLookupFn,
) *CustomerDirectoryService {
	return &CustomerDirectoryService{
		loggerProvider,
		dal.NewCustomerMappingsFirestoreWithClient(conn.Firestore),
		payments,
		emailLookup,
	}
}

// ResolveCustomer returns the payment gateway customer id for the given user,
// creating the gateway profile and the mapping on first use. Once a mapping
// exists the same id is always returned. Concurrent first-time checkouts are
// resolved by the mapping store's uniqueness on user id: the loser of the
// insert race re-reads and uses the winner's profile.
func (s *CustomerDirectoryService) ResolveCustomer(ctx context.Context, userID string) (string, error) {
	l := s.loggerProvider(ctx)

	if userID == "" {
		return "", ErrInvalidUserID
	}

	mapping, err := s.mappingsDAL.GetByUserID(ctx, userID)
	if err == nil {
		return mapping.ExternalCustomerID, nil
	}

	if !errors.Is(err, dal.ErrCustomerMappingNotFound) {
		return "", fmt.Errorf("%w: %s", ErrDirectoryUnavailable, err)
	}

	email := s.resolveEmail(ctx, userID)

	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.AddMetadata("user_id", userID)
	params.SetIdempotencyKey(userID)

	customer, err := s.payments.NewCustomer(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCreateCustomer, err)
	}

	newMapping := &domain.CustomerMapping{
		UserID:             userID,
		ExternalCustomerID: customer.ID,
		Email:              email,
	}

	if err := s.mappingsDAL.Create(ctx, newMapping); err != nil {
		if errors.Is(err, dal.ErrCustomerMappingExists) {
			winner, err := s.mappingsDAL.GetByUserID(ctx, userID)
			if err != nil {
				return "", fmt.Errorf("%w: %s", ErrDirectoryUnavailable, err)
			}

			l.Warningf("customer directory: lost mapping race for user %s, dropping profile %s in favor of %s",
				userID, customer.ID, winner.ExternalCustomerID)

			return winner.ExternalCustomerID, nil
		}

		return "", fmt.Errorf("%w: %s", ErrDirectoryUnavailable, err)
	}

	return customer.ID, nil
}

// resolveEmail returns the user's email address for the gateway profile.
// Guests never have an identity to look up; lookup failures degrade to the
// placeholder instead of failing the checkout.
func (s *CustomerDirectoryService) resolveEmail(ctx context.Context, userID string) string {
	if userID == common.GuestUserID {
		return common.GuestEmail
	}

	email, err := s.emailLookup(ctx, userID)
	if err != nil || email == "" {
		s.loggerProvider(ctx).Warningf("customer directory: email lookup failed for user %s: %v", userID, err)
		return common.GuestEmail
	}

	return email
}
