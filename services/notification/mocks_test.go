package notification

import (
	"context"

	"eventra/models"
)

type mockUserRepo struct {
	CreateFn     func(ctx context.Context, u *models.User) error
	GetByIDFn    func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*models.User, error)
	UpdateFn     func(ctx context.Context, u *models.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error { return m.CreateFn(ctx, u) }
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(ctx, email)
}
func (m *mockUserRepo) Update(ctx context.Context, u *models.User) error { return m.UpdateFn(ctx, u) }

type mockOfferingRepo struct {
	CreateFn          func(ctx context.Context, svc *models.OfferedService) error
	GetByIDFn         func(ctx context.Context, id string) (*models.OfferedService, error)
	UpdateFn          func(ctx context.Context, svc *models.OfferedService) error
	SetAvailabilityFn func(ctx context.Context, id string, available bool) error
	ListByProviderFn  func(ctx context.Context, providerID string) ([]models.OfferedService, error)
	ListAvailableFn   func(ctx context.Context) ([]models.OfferedService, error)
}

func (m *mockOfferingRepo) Create(ctx context.Context, svc *models.OfferedService) error {
	return m.CreateFn(ctx, svc)
}
func (m *mockOfferingRepo) GetByID(ctx context.Context, id string) (*models.OfferedService, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockOfferingRepo) Update(ctx context.Context, svc *models.OfferedService) error {
	return m.UpdateFn(ctx, svc)
}
func (m *mockOfferingRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	return m.SetAvailabilityFn(ctx, id, available)
}
func (m *mockOfferingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.OfferedService, error) {
	return m.ListByProviderFn(ctx, providerID)
}
func (m *mockOfferingRepo) ListAvailable(ctx context.Context) ([]models.OfferedService, error) {
	return m.ListAvailableFn(ctx)
}

type mockNotificationRepo struct {
	CreateFn          func(ctx context.Context, n *models.Notification) error
	GetByIDFn         func(ctx context.Context, id string) (*models.Notification, error)
	ListByRecipientFn func(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkReadFn        func(ctx context.Context, id string) error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return m.CreateFn(ctx, n)
}
func (m *mockNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return m.ListByRecipientFn(ctx, recipientID)
}
func (m *mockNotificationRepo) MarkRead(ctx context.Context, id string) error {
	return m.MarkReadFn(ctx, id)
}

// recordingNotificationService captures every notification the subscriber
// asks it to persist.
type recordingNotificationService struct {
	created []models.Notification
	err     error
}

func (r *recordingNotificationService) CreateNotification(ctx context.Context, recipientID string, t models.NotificationType, subject, body, bookingReference string) (*models.Notification, error) {
	if r.err != nil {
		return nil, r.err
	}
	n := models.Notification{
		RecipientID:      recipientID,
		Type:             t,
		Subject:          subject,
		Body:             body,
		BookingReference: bookingReference,
	}
	r.created = append(r.created, n)
	return &n, nil
}

func (r *recordingNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (r *recordingNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return nil
}
