package service

import (
	"errors"
	"strings"

	"qr-dish-reality/internal/domain"
)

var (
	ErrRestaurantExists  = errors.New("owner already has a restaurant")
	ErrInvalidRestaurant = errors.New("restaurant name is required")
)

type RestaurantService struct {
	repo      RestaurantRepository
	qrEncoder QRGenerator
}

func NewRestaurantService(repo RestaurantRepository, qr QRGenerator) *RestaurantService {
	return &RestaurantService{repo: repo, qrEncoder: qr}
}

// Setup creates the owner's restaurant. Each owner has at most one.
func (s *RestaurantService) Setup(ownerID int, name, location string) (*domain.Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidRestaurant
	}
	if existing, err := s.repo.GetRestaurantByOwner(ownerID); err == nil && existing != nil {
		return nil, ErrRestaurantExists
	}

	rest := &domain.Restaurant{OwnerID: ownerID, Name: name, Location: location}
	if err := s.repo.CreateRestaurant(rest); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(rest.ID); err == nil {
			_ = s.repo.SaveQRCode(rest.ID, qr)
		}
	}

	return rest, nil
}

func (s *RestaurantService) ByOwner(ownerID int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurantByOwner(ownerID)
}

// Update edits name and location. Restaurants are never deleted in-app.
func (s *RestaurantService) Update(ownerID int, name, location string) (*domain.Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidRestaurant
	}
	rest, err := s.repo.GetRestaurantByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	rest.Name = name
	rest.Location = location
	if err := s.repo.UpdateRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// QRCode returns the stored menu QR PNG, regenerating it when missing.
func (s *RestaurantService) QRCode(restaurantID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(restaurantID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(restaurantID); err == nil {
			_ = s.repo.SaveQRCode(restaurantID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}
