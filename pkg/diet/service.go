package diet

import (
	"errors"
	"fmt"

	"github.com/Baptiste68/recette/pkg/logger"
	"github.com/Baptiste68/recette/pkg/storage"
)

const prefsKeyPrefix = "prefs:"

// Service persists dietary preferences per user
type Service struct {
	store *storage.Store
	log   *logger.Logger
}

// NewService creates a new diet service
func NewService(store *storage.Store, log *logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// GetPreferences loads the preferences for a user, returning an empty set
// when none have been saved yet
func (s *Service) GetPreferences(userID string) (*Preferences, error) {
	prefs := NewPreferences()
	err := s.store.Get(prefsKeyPrefix+userID, prefs)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewPreferences(), nil
		}
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	// JSON round-trips of empty maps can come back nil
	if prefs.Regimes == nil {
		prefs.Regimes = make(map[Regime]bool)
	}
	if prefs.Allergies == nil {
		prefs.Allergies = make(map[Allergy]bool)
	}
	return prefs, nil
}

// SavePreferences stores the preferences for a user
func (s *Service) SavePreferences(userID string, prefs *Preferences) error {
	err := s.store.Set(prefsKeyPrefix+userID, prefs)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// AddRegime adds a regime for a user. It returns false when the regime
// conflicts with an already active one; nothing is persisted in that case.
func (s *Service) AddRegime(userID string, regime Regime) (bool, error) {
	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return false, err
	}

	if !prefs.AddRegime(regime) {
		s.log.Info("Regime %s rejected for user %s: conflicts with active set", regime, userID)
		return false, nil
	}

	if err := s.SavePreferences(userID, prefs); err != nil {
		return false, err
	}
	s.log.Info("Regime %s added for user %s", regime, userID)
	return true, nil
}

// RemoveRegime removes a regime for a user
func (s *Service) RemoveRegime(userID string, regime Regime) error {
	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return err
	}
	prefs.RemoveRegime(regime)
	return s.SavePreferences(userID, prefs)
}

// AddAllergy adds an allergy for a user, along with its linked regime
func (s *Service) AddAllergy(userID string, allergy Allergy) error {
	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return err
	}
	prefs.AddAllergy(allergy)
	if err := s.SavePreferences(userID, prefs); err != nil {
		return err
	}
	s.log.Info("Allergy %s added for user %s", allergy, userID)
	return nil
}

// RemoveAllergy removes an allergy for a user
func (s *Service) RemoveAllergy(userID string, allergy Allergy) error {
	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return err
	}
	prefs.RemoveAllergy(allergy)
	return s.SavePreferences(userID, prefs)
}

// SetNutrition updates the nutritional bounds for a user
func (s *Service) SetNutrition(userID string, nutrition Nutrition) error {
	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return err
	}
	prefs.Nutrition = nutrition
	return s.SavePreferences(userID, prefs)
}

// ResetPreferences clears all preferences for a user
func (s *Service) ResetPreferences(userID string) error {
	prefs := NewPreferences()
	if err := s.SavePreferences(userID, prefs); err != nil {
		return err
	}
	s.log.Info("Preferences reset for user %s", userID)
	return nil
}
