package store

import "github.com/lazaroperez207/agro-en-casa/internal/models"

// GetDeliveryZones returns the configured zones
func (s *Store) GetDeliveryZones() []models.DeliveryZone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DeliveryZone, len(s.zones))
	copy(out, s.zones)
	return out
}

// CreateDeliveryZone assigns an ID and appends the zone
func (s *Store) CreateDeliveryZone(zone *models.DeliveryZone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone.ID = s.allocZoneID()
	s.zones = append(s.zones, *zone)
}

// UpdateDeliveryZone replaces a zone's fields
func (s *Store) UpdateDeliveryZone(zone models.DeliveryZone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.zones {
		if s.zones[i].ID == zone.ID {
			s.zones[i] = zone
			return nil
		}
	}
	return notFound("delivery zone", zone.ID)
}

// DeleteDeliveryZone removes a zone
func (s *Store) DeleteDeliveryZone(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.zones {
		if s.zones[i].ID == id {
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			return nil
		}
	}
	return notFound("delivery zone", id)
}

// GetPaymentMethods returns every configured payment method
func (s *Store) GetPaymentMethods() []models.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PaymentMethod, len(s.paymentMethods))
	copy(out, s.paymentMethods)
	return out
}

// SetPaymentMethods replaces the payment method list
func (s *Store) SetPaymentMethods(methods []models.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paymentMethods = make([]models.PaymentMethod, len(methods))
	copy(s.paymentMethods, methods)
}

// GetPaymentDetails returns the payment account blob
func (s *Store) GetPaymentDetails() models.PaymentDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paymentDetails
}

// SetPaymentDetails replaces the payment account blob
func (s *Store) SetPaymentDetails(details models.PaymentDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentDetails = details
}

// GetSocialLinks returns the footer links
func (s *Store) GetSocialLinks() models.SocialLinks {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.socialLinks
}

// SetSocialLinks replaces the footer links
func (s *Store) SetSocialLinks(links models.SocialLinks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.socialLinks = links
}

// GetLogoURL returns the current logo (URL or data URL)
func (s *Store) GetLogoURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logoURL
}

// SetLogoURL replaces the logo
func (s *Store) SetLogoURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoURL = url
}
