package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/rs/zerolog"
)

// LabelService fetches Easy Delivery labels and attaches them to pickings:
// resolve credentials → build payload → call API → store attachments.
type LabelService struct {
	params  domain.ParameterStore
	api     domain.LabelAPI
	store   domain.AttachmentStore
	company domain.Partner
	log     zerolog.Logger
}

func NewLabelService(
	params domain.ParameterStore,
	api domain.LabelAPI,
	store domain.AttachmentStore,
	company domain.Partner,
	log zerolog.Logger,
) *LabelService {
	return &LabelService{
		params:  params,
		api:     api,
		store:   store,
		company: company,
		log:     log,
	}
}

// ResolveCredentials reads the API URL and token from params.
// Either one missing or empty is a *domain.ConfigurationError.
func ResolveCredentials(params domain.ParameterStore) (domain.Credentials, error) {
	apiURL, _ := params.Param(domain.ParamAPIURL)
	token, _ := params.Param(domain.ParamAuthToken)

	creds := domain.Credentials{APIURL: apiURL, AuthToken: token}
	if err := creds.Validate(); err != nil {
		return domain.Credentials{}, err
	}
	return creds, nil
}

// BuildPayload returns the order payload for p without calling the API.
func (s *LabelService) BuildPayload(p domain.Picking) domain.ShipmentRequest {
	return domain.BuildShipmentRequest(p, s.company)
}

// GenerateLabel requests a label for p and stores the returned PDF or ZPL
// files as attachments of the picking. Every call creates a fresh set of
// attachments.
func (s *LabelService) GenerateLabel(ctx context.Context, p domain.Picking) (*domain.LabelResult, error) {
	log := s.log.With().Int64("picking_id", p.ID).Logger()

	creds, err := ResolveCredentials(s.params)
	if err != nil {
		log.Error().Msg("Easy Delivery API credentials are missing")
		return nil, err
	}

	body, err := s.api.CreateOrder(ctx, creds, s.BuildPayload(p))
	if err != nil {
		return nil, fmt.Errorf("requesting label for %s: %w", p.Name, err)
	}

	resp, err := domain.DecodeLabelResponse(body)
	if err != nil {
		var lge *domain.LabelGenerationError
		if errors.As(err, &lge) && lge.Detail != nil {
			log.Debug().Err(lge.Detail).Msg("malformed error object in API response")
		}
		log.Error().Err(err).Msg("label generation refused")
		return nil, err
	}

	attachments, err := domain.BuildAttachments(resp, p.ID)
	if err != nil {
		log.Error().Err(err).Msg("label generation refused")
		return nil, err
	}

	// Attachments stored before a failure stay in place.
	stored := make([]domain.Attachment, 0, len(attachments))
	for _, a := range attachments {
		created, err := s.store.Create(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("storing attachment %s (%d of %d stored): %w", a.Name, len(stored), len(attachments), err)
		}
		stored = append(stored, created)
	}

	log.Info().
		Str("kind", string(resp.Kind)).
		Int("attachments", len(stored)).
		Msg("Easy Delivery label retrieval completed")

	return &domain.LabelResult{
		PickingID:   p.ID,
		PickingName: p.Name,
		Kind:        resp.Kind,
		Attachments: stored,
	}, nil
}

// Attachments lists what is attached to the picking with the given id.
func (s *LabelService) Attachments(ctx context.Context, pickingID int64) ([]domain.Attachment, error) {
	out, err := s.store.List(ctx, domain.PickingModel, pickingID)
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}
	return out, nil
}

// EnsureLabelCarrier reports an error unless p ships with an Easy Delivery
// carrier. Inbound adapters call it before GenerateLabel unless forced.
func EnsureLabelCarrier(p domain.Picking) error {
	if p.Carrier.SupportsLabelFetch() {
		return nil
	}
	if p.Carrier == nil {
		return fmt.Errorf("picking %s has no carrier", p.Name)
	}
	return fmt.Errorf("carrier %q of picking %s uses delivery type %q, not %q",
		p.Carrier.Name, p.Name, p.Carrier.DeliveryType, domain.DeliveryTypeEasyDelivery)
}
