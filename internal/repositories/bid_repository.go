package repositories

import (
	"errors"
	"time"

	"gigflow_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBidNotFound  = errors.New("bid not found")
	ErrDuplicateBid = errors.New("bid already placed on this gig")
)

type BidRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) BidRepository

	Create(bid *models.Bid) error
	FindByID(id string) (*models.Bid, error)
	FindByGig(gigID string) ([]models.Bid, error)
	FindByGigAndFreelancer(gigID, freelancerID string) ([]models.Bid, error)
	FindByFreelancer(freelancerID string) ([]models.Bid, error)
	Exists(gigID, freelancerID string) (bool, error)
	UpdateStatus(id string, status models.BidStatus) error

	// RejectOthers marks every pending bid on the gig except the winner
	// as rejected. Returns the number of bids affected.
	RejectOthers(gigID, winningBidID string) (int64, error)
}

type BidRepositoryImpl struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) BidRepository {
	return &BidRepositoryImpl{db: db}
}

func (r *BidRepositoryImpl) WithTx(tx *gorm.DB) BidRepository {
	return &BidRepositoryImpl{db: tx}
}

func (r *BidRepositoryImpl) Create(bid *models.Bid) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	err := db.Create(bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBid
		}
		return err
	}
	return nil
}

func (r *BidRepositoryImpl) FindByID(id string) (*models.Bid, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var bid models.Bid
	err := db.First(&bid, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) FindByGig(gigID string) ([]models.Bid, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var bids []models.Bid
	err := db.Preload("Freelancer").
		Where("gig_id = ?", gigID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) FindByGigAndFreelancer(gigID, freelancerID string) ([]models.Bid, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var bids []models.Bid
	err := db.Preload("Freelancer").
		Where("gig_id = ? AND freelancer_id = ?", gigID, freelancerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) FindByFreelancer(freelancerID string) ([]models.Bid, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var bids []models.Bid
	err := db.Preload("Gig").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) Exists(gigID, freelancerID string) (bool, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var count int64
	err := db.Model(&models.Bid{}).
		Where("gig_id = ? AND freelancer_id = ?", gigID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *BidRepositoryImpl) UpdateStatus(id string, status models.BidStatus) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Model(&models.Bid{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBidNotFound
	}
	return nil
}

func (r *BidRepositoryImpl) RejectOthers(gigID, winningBidID string) (int64, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Model(&models.Bid{}).
		Where("gig_id = ? AND id <> ? AND status = ?", gigID, winningBidID, models.BidStatusPending).
		Updates(map[string]interface{}{
			"status":     models.BidStatusRejected,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
