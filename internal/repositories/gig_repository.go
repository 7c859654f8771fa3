package repositories

import (
	"errors"
	"strings"
	"time"

	"gigflow_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrGigNotFound = errors.New("gig not found")
	// ErrGigNotOpen reports that a conditional update found the gig in a
	// status other than the one required.
	ErrGigNotOpen = errors.New("gig is not open")
)

type GigRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) GigRepository

	Create(gig *models.Gig) error
	FindByID(id string) (*models.Gig, error)
	FindByIDWithBids(id string) (*models.Gig, error)
	FindAll(criteria GigCriteria) ([]models.Gig, int64, error)
	FindByOwner(ownerID string) ([]models.Gig, error)
	Update(gig *models.Gig) error
	UpdateStatus(id string, status models.GigStatus) error
	Delete(id string) error

	// Assign flips the gig from open to assigned and records the winning
	// bid in one conditional UPDATE. Returns ErrGigNotOpen when the row
	// was not in the open status, which is how concurrent hires lose.
	Assign(gigID, bidID string) error
}

// Search criteria for gig listings.
type GigCriteria struct {
	Status    string  `form:"status"`
	OwnerID   string  `form:"owner_id"`
	Search    string  `form:"search"`
	MinBudget float64 `form:"min_budget"`
	Page      int     `form:"page" binding:"min=1"`
	PageSize  int     `form:"page_size" binding:"min=1,max=100"`
}

type GigRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: db}
}

func (r *GigRepositoryImpl) WithTx(tx *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: tx}
}

func (r *GigRepositoryImpl) Create(gig *models.Gig) error {
	db, cancel := withTimeout(r.db)
	defer cancel()
	return db.Create(gig).Error
}

func (r *GigRepositoryImpl) FindByID(id string) (*models.Gig, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var gig models.Gig
	err := db.First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) FindByIDWithBids(id string) (*models.Gig, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var gig models.Gig
	err := db.Preload("Bids").First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) FindAll(criteria GigCriteria) ([]models.Gig, int64, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var gigs []models.Gig
	query := db.Model(&models.Gig{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.OwnerID != "" {
		query = query.Where("owner_id = ?", criteria.OwnerID)
	}
	if criteria.Search != "" {
		// LOWER + LIKE is portable across postgres and sqlite.
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(criteria.Search)+"%")
	}
	if criteria.MinBudget > 0 {
		query = query.Where("budget >= ?", criteria.MinBudget)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&gigs).Error

	return gigs, total, err
}

func (r *GigRepositoryImpl) FindByOwner(ownerID string) ([]models.Gig, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var gigs []models.Gig
	err := db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) Update(gig *models.Gig) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Model(gig).Updates(map[string]interface{}{
		"title":       gig.Title,
		"description": gig.Description,
		"budget":      gig.Budget,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

func (r *GigRepositoryImpl) UpdateStatus(id string, status models.GigStatus) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Model(&models.Gig{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

func (r *GigRepositoryImpl) Delete(id string) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Where("id = ?", id).Delete(&models.Gig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

func (r *GigRepositoryImpl) Assign(gigID, bidID string) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Model(&models.Gig{}).
		Where("id = ? AND status = ?", gigID, models.GigStatusOpen).
		Updates(map[string]interface{}{
			"status":       models.GigStatusAssigned,
			"hired_bid_id": bidID,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotOpen
	}
	return nil
}
