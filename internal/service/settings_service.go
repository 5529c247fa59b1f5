package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/redisclient"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
	"github.com/lazaroperez207/agro-en-casa/internal/util"
)

// ErrNotAnImage rejects a logo upload that is not an image file
var ErrNotAnImage = errors.New("Por favor, selecciona un archivo de imagen válido.")

var nonDigits = regexp.MustCompile(`\D`)

// SettingsService manages administrator-editable configuration. The logo
// and social links blobs are persisted to Redis and reloaded at startup;
// the rest is memory-only, like the catalog.
type SettingsService struct {
	store  *store.Store
	redis  *redisclient.Client
	logger *zap.Logger
}

// NewSettingsService creates a new settings service. redis may be nil,
// in which case the persisted blobs degrade to memory-only.
func NewSettingsService(store *store.Store, redis *redisclient.Client) *SettingsService {
	return &SettingsService{
		store:  store,
		redis:  redis,
		logger: util.GetLogger(),
	}
}

// LoadPersisted restores the logo and social links blobs from Redis
func (s *SettingsService) LoadPersisted(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}

	logo, err := s.redis.LoadLogo(ctx)
	if err != nil {
		return err
	}
	if logo != "" {
		s.store.SetLogoURL(logo)
	}

	links, ok, err := s.redis.LoadSocialLinks(ctx)
	if err != nil {
		return err
	}
	if ok {
		s.store.SetSocialLinks(links)
	}

	return nil
}

// StorefrontSettings is the public settings view consumed by the
// storefront and footer
type StorefrontSettings struct {
	PaymentMethods []models.PaymentMethod `json:"payment_methods"`
	PaymentDetails models.PaymentDetails  `json:"payment_details"`
	SocialLinks    models.SocialLinks     `json:"social_links"`
	LogoURL        string                 `json:"logo_url"`
	WhatsAppLink   string                 `json:"whatsapp_link,omitempty"`
}

// Storefront returns the settings view with only enabled payment methods
func (s *SettingsService) Storefront() StorefrontSettings {
	var enabled []models.PaymentMethod
	for _, m := range s.store.GetPaymentMethods() {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}

	return StorefrontSettings{
		PaymentMethods: enabled,
		PaymentDetails: s.store.GetPaymentDetails(),
		SocialLinks:    s.store.GetSocialLinks(),
		LogoURL:        s.store.GetLogoURL(),
		WhatsAppLink:   s.WhatsAppLink(),
	}
}

// WhatsAppLink builds the wa.me deep link from the configured number,
// stripping every non-digit character. Empty when no number is set.
func (s *SettingsService) WhatsAppLink() string {
	number := nonDigits.ReplaceAllString(s.store.GetSocialLinks().WhatsApp, "")
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number
}

// PaymentMethods returns every method, including disabled ones
func (s *SettingsService) PaymentMethods() []models.PaymentMethod {
	return s.store.GetPaymentMethods()
}

// UpdatePaymentMethods replaces the payment method toggles
func (s *SettingsService) UpdatePaymentMethods(methods []models.PaymentMethod) {
	s.store.SetPaymentMethods(methods)
}

// UpdatePaymentDetails replaces the payment account blob
func (s *SettingsService) UpdatePaymentDetails(details models.PaymentDetails) {
	s.store.SetPaymentDetails(details)
}

// UpdateSocialLinks replaces the footer links and persists them
func (s *SettingsService) UpdateSocialLinks(ctx context.Context, links models.SocialLinks) {
	s.store.SetSocialLinks(links)
	if s.redis != nil {
		if err := s.redis.SaveSocialLinks(ctx, links); err != nil {
			s.logger.Warn("Failed to persist social links", zap.Error(err))
		}
	}
}

// UpdateLogo converts an uploaded image to a data URL, stores it and
// persists it. Non-image uploads are rejected.
func (s *SettingsService) UpdateLogo(ctx context.Context, data []byte, contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	s.store.SetLogoURL(dataURL)

	if s.redis != nil {
		if err := s.redis.SaveLogo(ctx, dataURL); err != nil {
			s.logger.Warn("Failed to persist logo", zap.Error(err))
		}
	}
	return nil
}

// DeliveryZones returns the configured zones
func (s *SettingsService) DeliveryZones() []models.DeliveryZone {
	return s.store.GetDeliveryZones()
}

// CreateDeliveryZone adds a zone
func (s *SettingsService) CreateDeliveryZone(zone *models.DeliveryZone) {
	s.store.CreateDeliveryZone(zone)
}

// UpdateDeliveryZone replaces a zone's fields
func (s *SettingsService) UpdateDeliveryZone(zone models.DeliveryZone) error {
	return s.store.UpdateDeliveryZone(zone)
}

// DeleteDeliveryZone removes a zone
func (s *SettingsService) DeleteDeliveryZone(id int64) error {
	return s.store.DeleteDeliveryZone(id)
}
