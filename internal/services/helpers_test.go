package services

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gigflow_backend/internal/config"
	"gigflow_backend/internal/email"
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/internal/workers"
	"gigflow_backend/ws"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and visible
	// to every transaction.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Bid{},
		&models.Notification{},
	))

	return db
}

func setupTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Client.BaseURL = "http://localhost:5173"
	config.AppConfig = cfg
}

// recordingEmailProvider captures outgoing mail instead of sending it.
type recordingEmailProvider struct {
	mu    sync.Mutex
	sent  []string // template names in send order
	fail  bool
	calls int
}

func (p *recordingEmailProvider) record(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.fail {
		return assertAnError
	}
	p.sent = append(p.sent, name)
	return nil
}

func (p *recordingEmailProvider) Sent() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.sent))
	copy(out, p.sent)
	return out
}

func (p *recordingEmailProvider) Send(msg *email.Email) error { return p.record("raw") }
func (p *recordingEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	return p.record(templateName)
}
func (p *recordingEmailProvider) SendWelcome(to, name, dashboardURL string) error {
	return p.record("welcome")
}
func (p *recordingEmailProvider) SendNewBid(to, ownerName, freelancerName, gigTitle, gigURL string, amount float64, message string) error {
	return p.record("new_bid")
}
func (p *recordingEmailProvider) SendBidAccepted(to, freelancerName, clientName, gigTitle, gigURL string) error {
	return p.record("bid_accepted")
}
func (p *recordingEmailProvider) Validate() error { return nil }
func (p *recordingEmailProvider) Close() error    { return nil }

var assertAnError = errDeliberate{}

type errDeliberate struct{}

func (errDeliberate) Error() string { return "deliberate failure" }

// recordingPublisher captures realtime pushes per user.
type recordingPublisher struct {
	mu     sync.Mutex
	events map[string][]ws.Event
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(map[string][]ws.Event)}
}

func (p *recordingPublisher) PublishToUser(userID string, event ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[userID] = append(p.events[userID], event)
}

func (p *recordingPublisher) EventsFor(userID string) []ws.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ws.Event(nil), p.events[userID]...)
}

type testEnv struct {
	db         *gorm.DB
	services   *ServiceContainer
	email      *recordingEmailProvider
	publisher  *recordingPublisher
	dispatcher *workers.Dispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	setupTestConfig(t)

	db := setupTestDB(t)
	emailProvider := &recordingEmailProvider{}
	publisher := newRecordingPublisher()
	dispatcher := workers.NewDispatcher(64)
	dispatcher.Start()

	return &testEnv{
		db:         db,
		services:   NewServiceContainer(db, emailProvider, publisher, dispatcher),
		email:      emailProvider,
		publisher:  publisher,
		dispatcher: dispatcher,
	}
}

// drain waits until queued side-effect tasks have run.
func (e *testEnv) drain() {
	e.dispatcher.Stop()
}

func (e *testEnv) createUser(t *testing.T, name, emailAddr string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        emailAddr,
		PasswordHash: "x",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createGig(t *testing.T, ownerID, title string) *dto.GigResponse {
	t.Helper()
	gig, err := e.services.GigService.CreateGig(ownerID, &dto.CreateGigRequest{
		Title:  title,
		Budget: 500,
	})
	require.NoError(t, err)
	return gig
}

func notificationCriteria(page, pageSize int) repositories.NotificationCriteria {
	return repositories.NotificationCriteria{Page: page, PageSize: pageSize}
}

func (e *testEnv) placeBid(t *testing.T, freelancerID, gigID string, amount float64) *dto.BidResponse {
	t.Helper()
	bid, err := e.services.BidService.PlaceBid(freelancerID, &dto.PlaceBidRequest{
		GigID:  gigID,
		Amount: amount,
	})
	require.NoError(t, err)
	return bid
}
