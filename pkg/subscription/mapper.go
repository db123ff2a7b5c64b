package subscription

// RequestMapper turns a validated CreateRequest into a new Subscription.
type RequestMapper interface {
	Map(req CreateRequest) (Subscription, error)
}

// CreateRequestMapper is the default RequestMapper.
type CreateRequestMapper struct{}

func NewCreateRequestMapper() CreateRequestMapper {
	return CreateRequestMapper{}
}

// Map returns an ACTIVE subscription without an identity.
// It fails with ErrInvalidProvider when the provider text is not recognised,
// which cannot happen for requests that passed validation.
func (CreateRequestMapper) Map(req CreateRequest) (Subscription, error) {
	provider, err := ParseProvider(req.Provider)
	if err != nil {
		return Subscription{}, err
	}

	var userID int64
	if req.UserID != nil {
		userID = *req.UserID
	}

	return Subscription{
		UserID:         userID,
		Name:           req.Name,
		Provider:       provider,
		ExpirationDate: req.ExpirationDate,
		Status:         StatusActive,
	}, nil
}
