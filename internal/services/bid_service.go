package services

import (
	"fmt"

	"gorm.io/gorm"

	"gigflow_backend/internal/config"
	"gigflow_backend/internal/email"
	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/internal/workers"
	"gigflow_backend/pkg/apperrors"
	"gigflow_backend/ws"
)

type BidService interface {
	PlaceBid(freelancerID string, req *dto.PlaceBidRequest) (*dto.BidResponse, error)
	GetGigBids(requesterID, gigID string) ([]*dto.BidResponse, error)
	GetMyBids(freelancerID string) ([]*dto.BidResponse, error)

	// Hire awards the bid's gig to that bid. The status flips, the
	// rejection of competing bids and the bid_accepted notification
	// commit in a single transaction; email and realtime push follow
	// after commit.
	Hire(ownerID, bidID string) (*dto.HireResponse, error)
}

type bidService struct {
	db               *gorm.DB
	gigRepo          repositories.GigRepository
	bidRepo          repositories.BidRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
	realtime         RealtimePublisher
	dispatcher       *workers.Dispatcher
}

func NewBidService(
	db *gorm.DB,
	gigRepo repositories.GigRepository,
	bidRepo repositories.BidRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
	realtime RealtimePublisher,
	dispatcher *workers.Dispatcher,
) BidService {
	return &bidService{
		db:               db,
		gigRepo:          gigRepo,
		bidRepo:          bidRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
		realtime:         realtime,
		dispatcher:       dispatcher,
	}
}

func (s *bidService) PlaceBid(freelancerID string, req *dto.PlaceBidRequest) (*dto.BidResponse, error) {
	gig, err := s.gigRepo.FindByID(req.GigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if gig.Status != models.GigStatusOpen {
		return nil, apperrors.ErrGigNotOpen
	}

	if gig.OwnerID == freelancerID {
		return nil, apperrors.ErrOwnGigBid
	}

	exists, err := s.bidRepo.Exists(req.GigID, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateBid
	}

	bid := &models.Bid{
		GigID:        req.GigID,
		FreelancerID: freelancerID,
		Amount:       req.Amount,
		Message:      req.Message,
		Status:       models.BidStatusPending,
	}

	if err := s.bidRepo.Create(bid); err != nil {
		// The unique index backstops the Exists check under races.
		if apperrors.Is(err, repositories.ErrDuplicateBid) {
			return nil, apperrors.ErrDuplicateBid
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyNewBid(gig, bid)

	return buildBidResponse(bid), nil
}

func (s *bidService) GetGigBids(requesterID, gigID string) ([]*dto.BidResponse, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// The owner sees every bid; anyone else sees only their own.
	var bids []models.Bid
	if gig.OwnerID == requesterID {
		bids, err = s.bidRepo.FindByGig(gigID)
	} else {
		bids, err = s.bidRepo.FindByGigAndFreelancer(gigID, requesterID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	bidResponses := make([]*dto.BidResponse, 0, len(bids))
	for i := range bids {
		bidResponses = append(bidResponses, buildBidResponse(&bids[i]))
	}
	return bidResponses, nil
}

func (s *bidService) GetMyBids(freelancerID string) ([]*dto.BidResponse, error) {
	bids, err := s.bidRepo.FindByFreelancer(freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	bidResponses := make([]*dto.BidResponse, 0, len(bids))
	for i := range bids {
		resp := buildBidResponse(&bids[i])
		if bids[i].Gig != nil {
			resp.Gig = buildGigResponse(bids[i].Gig)
		}
		bidResponses = append(bidResponses, resp)
	}
	return bidResponses, nil
}

func (s *bidService) Hire(ownerID, bidID string) (*dto.HireResponse, error) {
	// Preconditions in order: bid exists, its gig exists, the caller
	// owns the gig, the gig is still open.
	bid, err := s.bidRepo.FindByID(bidID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBidNotFound) {
			return nil, apperrors.ErrBidNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	gigID := bid.GigID
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if gig.OwnerID != ownerID {
		return nil, apperrors.ErrNotGigOwner
	}

	if gig.Status != models.GigStatusOpen {
		return nil, apperrors.ErrGigAlreadyAssigned
	}

	var rejected int64
	var notification *models.Notification

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The conditional update is the single point of serialization:
		// of two concurrent hires exactly one sees the gig open.
		if err := s.gigRepo.WithTx(tx).Assign(gigID, bidID); err != nil {
			if apperrors.Is(err, repositories.ErrGigNotOpen) {
				return apperrors.ErrGigAlreadyAssigned
			}
			return err
		}

		if err := s.bidRepo.WithTx(tx).UpdateStatus(bidID, models.BidStatusHired); err != nil {
			return err
		}

		var err error
		rejected, err = s.bidRepo.WithTx(tx).RejectOthers(gigID, bidID)
		if err != nil {
			return err
		}

		notification, err = s.notificationRepo.WithTx(tx).CreateBidAcceptedNotification(
			bid.FreelancerID, ownerID, gigID, bidID, gig.Title)
		return err
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.TransactionError(err, "hire")
	}

	gig.Status = models.GigStatusAssigned
	gig.HiredBidID = &bid.ID
	bid.Status = models.BidStatusHired

	s.notifyHired(gig, bid, notification)

	return &dto.HireResponse{
		Gig:          buildGigResponse(gig),
		HiredBid:     buildBidResponse(bid),
		RejectedBids: rejected,
	}, nil
}

// notifyNewBid records the owner's notification and queues the push and
// email. Failures here never undo the bid; they are logged and dropped.
func (s *bidService) notifyNewBid(gig *models.Gig, bid *models.Bid) {
	freelancer, err := s.userRepo.FindByID(bid.FreelancerID)
	if err != nil {
		logger.Warn("new bid notification skipped, freelancer lookup failed", "error", err.Error())
		return
	}

	notification, err := s.notificationRepo.CreateNewBidNotification(
		gig.OwnerID, bid.FreelancerID, gig.ID, bid.ID, freelancer.Name, bid.Amount)
	if err != nil {
		logger.Warn("new bid notification not persisted", "gig_id", gig.ID, "error", err.Error())
		return
	}

	ownerID := gig.OwnerID
	s.dispatcher.Submit(workers.Task{
		Name: "new_bid_push",
		Run: func() error {
			s.realtime.PublishToUser(ownerID, ws.Event{
				Type:    EventNotification,
				Payload: buildNotificationResponse(notification),
			})
			return nil
		},
	})

	owner, err := s.userRepo.FindByID(gig.OwnerID)
	if err != nil {
		logger.Warn("new bid email skipped, owner lookup failed", "gig_id", gig.ID, "error", err.Error())
		return
	}

	gigURL := fmt.Sprintf("%s/dashboard/gigs/%s/bids", config.GetConfig().Client.BaseURL, gig.ID)
	to, ownerName, freelancerName := owner.Email, owner.Name, freelancer.Name
	gigTitle, amount, message := gig.Title, bid.Amount, bid.Message
	s.dispatcher.Submit(workers.Task{
		Name: "new_bid_email",
		Run: func() error {
			return s.emailProvider.SendNewBid(to, ownerName, freelancerName, gigTitle, gigURL, amount, message)
		},
	})
}

func (s *bidService) notifyHired(gig *models.Gig, bid *models.Bid, notification *models.Notification) {
	freelancerID := bid.FreelancerID
	s.dispatcher.Submit(workers.Task{
		Name: "bid_accepted_push",
		Run: func() error {
			s.realtime.PublishToUser(freelancerID, ws.Event{
				Type:    EventNotification,
				Payload: buildNotificationResponse(notification),
			})
			return nil
		},
	})

	freelancer, err := s.userRepo.FindByID(bid.FreelancerID)
	if err != nil {
		logger.Warn("bid accepted email skipped, freelancer lookup failed", "gig_id", gig.ID, "error", err.Error())
		return
	}
	owner, err := s.userRepo.FindByID(gig.OwnerID)
	if err != nil {
		logger.Warn("bid accepted email skipped, owner lookup failed", "gig_id", gig.ID, "error", err.Error())
		return
	}

	gigURL := fmt.Sprintf("%s/gigs/%s", config.GetConfig().Client.BaseURL, gig.ID)
	to, freelancerName, clientName := freelancer.Email, freelancer.Name, owner.Name
	gigTitle := gig.Title
	s.dispatcher.Submit(workers.Task{
		Name: "bid_accepted_email",
		Run: func() error {
			return s.emailProvider.SendBidAccepted(to, freelancerName, clientName, gigTitle, gigURL)
		},
	})
}

func buildBidResponse(bid *models.Bid) *dto.BidResponse {
	response := &dto.BidResponse{
		ID:           bid.ID,
		GigID:        bid.GigID,
		FreelancerID: bid.FreelancerID,
		Amount:       bid.Amount,
		Message:      bid.Message,
		Status:       bid.Status,
		CreatedAt:    bid.CreatedAt,
	}
	if bid.Freelancer != nil {
		response.FreelancerName = bid.Freelancer.Name
	}
	return response
}
