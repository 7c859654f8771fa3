package services

import (
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type GigService interface {
	CreateGig(ownerID string, req *dto.CreateGigRequest) (*dto.GigResponse, error)
	GetGig(gigID string) (*dto.GigResponse, error)
	ListGigs(criteria repositories.GigCriteria) (*dto.GigListResponse, error)
	GetMyGigs(ownerID string) ([]*dto.GigResponse, error)
	UpdateGig(ownerID, gigID string, req *dto.UpdateGigRequest) (*dto.GigResponse, error)
	UpdateStatus(ownerID, gigID string, req *dto.UpdateGigStatusRequest) (*dto.GigResponse, error)
	DeleteGig(ownerID, gigID string) error
}

type gigService struct {
	gigRepo repositories.GigRepository
}

func NewGigService(gigRepo repositories.GigRepository) GigService {
	return &gigService{
		gigRepo: gigRepo,
	}
}

func (s *gigService) CreateGig(ownerID string, req *dto.CreateGigRequest) (*dto.GigResponse, error) {
	gig := &models.Gig{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Status:      models.GigStatusOpen,
	}

	if err := s.gigRepo.Create(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildGigResponse(gig), nil
}

func (s *gigService) GetGig(gigID string) (*dto.GigResponse, error) {
	gig, err := s.findGig(gigID)
	if err != nil {
		return nil, err
	}
	return buildGigResponse(gig), nil
}

func (s *gigService) ListGigs(criteria repositories.GigCriteria) (*dto.GigListResponse, error) {
	gigs, total, err := s.gigRepo.FindAll(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var gigResponses []*dto.GigResponse
	for i := range gigs {
		gigResponses = append(gigResponses, buildGigResponse(&gigs[i]))
	}

	return &dto.GigListResponse{
		Gigs:       gigResponses,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: calculateTotalPages(total, criteria.PageSize),
	}, nil
}

func (s *gigService) GetMyGigs(ownerID string) ([]*dto.GigResponse, error) {
	gigs, err := s.gigRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	gigResponses := make([]*dto.GigResponse, 0, len(gigs))
	for i := range gigs {
		gigResponses = append(gigResponses, buildGigResponse(&gigs[i]))
	}
	return gigResponses, nil
}

func (s *gigService) UpdateGig(ownerID, gigID string, req *dto.UpdateGigRequest) (*dto.GigResponse, error) {
	gig, err := s.findGig(gigID)
	if err != nil {
		return nil, err
	}

	if gig.OwnerID != ownerID {
		return nil, apperrors.ErrNotGigOwner
	}

	// Assigned gigs are frozen; the hired freelancer agreed to the
	// posted terms.
	if gig.Status == models.GigStatusAssigned {
		return nil, apperrors.ErrGigAlreadyAssigned
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Budget != nil {
		gig.Budget = *req.Budget
	}

	if err := s.gigRepo.Update(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildGigResponse(gig), nil
}

// UpdateStatus covers the open/closed toggle. Assigning is done only by
// the hire flow, which serializes winners at the storage layer.
func (s *gigService) UpdateStatus(ownerID, gigID string, req *dto.UpdateGigStatusRequest) (*dto.GigResponse, error) {
	gig, err := s.findGig(gigID)
	if err != nil {
		return nil, err
	}

	if gig.OwnerID != ownerID {
		return nil, apperrors.ErrNotGigOwner
	}

	if gig.Status == req.Status {
		return buildGigResponse(gig), nil
	}

	if !gig.Status.CanTransition(req.Status) {
		return nil, apperrors.ErrGigStatusTransition
	}

	if err := s.gigRepo.UpdateStatus(gigID, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	gig.Status = req.Status
	return buildGigResponse(gig), nil
}

func (s *gigService) DeleteGig(ownerID, gigID string) error {
	gig, err := s.findGig(gigID)
	if err != nil {
		return err
	}

	if gig.OwnerID != ownerID {
		return apperrors.ErrNotGigOwner
	}

	if gig.Status == models.GigStatusAssigned {
		return apperrors.ErrGigAlreadyAssigned
	}

	if err := s.gigRepo.Delete(gigID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *gigService) findGig(gigID string) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func buildGigResponse(gig *models.Gig) *dto.GigResponse {
	return &dto.GigResponse{
		ID:          gig.ID,
		OwnerID:     gig.OwnerID,
		Title:       gig.Title,
		Description: gig.Description,
		Budget:      gig.Budget,
		Status:      gig.Status,
		HiredBidID:  gig.HiredBidID,
		CreatedAt:   gig.CreatedAt,
		UpdatedAt:   gig.UpdatedAt,
	}
}
