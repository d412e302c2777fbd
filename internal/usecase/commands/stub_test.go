//go:build unit

package commands_test

import (
	"context"
	"time"

	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/care"
	"stable-booking-api/internal/domain/notification"
	"stable-booking-api/internal/domain/service"
	"stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/infra"
	"stable-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory doubles for the unit of work. Each repo records calls and lets
// tests force outcomes.

type stubReads struct {
	usersByID     map[uuid.UUID]*shared.UserSnapshot
	usersByEmail  map[string]*shared.UserSnapshot
	services      map[uuid.UUID]*shared.ServiceSnapshot
	arenaBookings map[uuid.UUID]*shared.BookingSnapshot
	careBookings  map[uuid.UUID]*shared.BookingSnapshot
}

func newStubReads() *stubReads {
	return &stubReads{
		usersByID:     map[uuid.UUID]*shared.UserSnapshot{},
		usersByEmail:  map[string]*shared.UserSnapshot{},
		services:      map[uuid.UUID]*shared.ServiceSnapshot{},
		arenaBookings: map[uuid.UUID]*shared.BookingSnapshot{},
		careBookings:  map[uuid.UUID]*shared.BookingSnapshot{},
	}
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr("duplicate key", nil, infra.KindDuplicateKey)
}

func (s *stubReads) addUser(u *shared.UserSnapshot) {
	s.usersByID[u.ID] = u
	s.usersByEmail[u.Email] = u
}

func (s *stubReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if u, ok := s.usersByID[id]; ok {
		return u, nil
	}
	return nil, notFound("user")
}

func (s *stubReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	if u, ok := s.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, notFound("user")
}

func (s *stubReads) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, notFound("service")
}

func (s *stubReads) ArenaBookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if b, ok := s.arenaBookings[id]; ok {
		return b, nil
	}
	return nil, notFound("arena booking")
}

func (s *stubReads) CareBookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if b, ok := s.careBookings[id]; ok {
		return b, nil
	}
	return nil, notFound("care booking")
}

type reviewCall struct {
	id      uuid.UUID
	to      booking.Status
	adminID uuid.UUID
	at      time.Time
}

type stubArenaRepo struct {
	reserveErr error
	reserved   []*booking.Booking
	reviewOK   bool
	reviewErr  error
	reviews    []reviewCall
}

func (r *stubArenaRepo) Reserve(_ context.Context, b *booking.Booking) error {
	if r.reserveErr != nil {
		return r.reserveErr
	}
	r.reserved = append(r.reserved, b)
	return nil
}

func (r *stubArenaRepo) MarkReviewed(_ context.Context, id uuid.UUID, to booking.Status, adminID uuid.UUID, at time.Time) (bool, error) {
	if r.reviewErr != nil {
		return false, r.reviewErr
	}
	r.reviews = append(r.reviews, reviewCall{id: id, to: to, adminID: adminID, at: at})
	return r.reviewOK, nil
}

type stubCareRepo struct {
	createErr error
	created   []*care.Booking
	reviewOK  bool
	reviews   []reviewCall
}

func (r *stubCareRepo) Create(_ context.Context, b *care.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, b)
	return nil
}

func (r *stubCareRepo) MarkReviewed(_ context.Context, id uuid.UUID, to booking.Status, adminID uuid.UUID, at time.Time) (bool, error) {
	r.reviews = append(r.reviews, reviewCall{id: id, to: to, adminID: adminID, at: at})
	return r.reviewOK, nil
}

type statusCall struct {
	id      uuid.UUID
	status  user.Status
	adminID uuid.UUID
}

type stubUserRepo struct {
	createErr error
	created   []*user.User
	updateOK  bool
	updates   []statusCall
	deleteOK  bool
	deleted   []uuid.UUID
}

func (r *stubUserRepo) Create(_ context.Context, u *user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, u)
	return nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id uuid.UUID, status user.Status, adminID uuid.UUID, _ time.Time) (bool, error) {
	r.updates = append(r.updates, statusCall{id: id, status: status, adminID: adminID})
	return r.updateOK, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.deleted = append(r.deleted, id)
	return r.deleteOK, nil
}

type stubServiceRepo struct {
	created     []*service.Service
	updateOK    bool
	updated     []*service.Service
	setActiveOK bool
	setActive   []uuid.UUID
}

func (r *stubServiceRepo) Create(_ context.Context, s *service.Service) error {
	r.created = append(r.created, s)
	return nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *service.Service) (bool, error) {
	r.updated = append(r.updated, s)
	return r.updateOK, nil
}

func (r *stubServiceRepo) SetActive(_ context.Context, id uuid.UUID, _ bool) (bool, error) {
	r.setActive = append(r.setActive, id)
	return r.setActiveOK, nil
}

type stubNotificationRepo struct {
	created    []notification.Notification
	markReadOK bool
	markedRead []uuid.UUID
	markedAll  []uuid.UUID
}

func (r *stubNotificationRepo) Create(_ context.Context, n notification.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, _ uuid.UUID) (bool, error) {
	r.markedRead = append(r.markedRead, id)
	return r.markReadOK, nil
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	r.markedAll = append(r.markedAll, userID)
	return nil
}

type stubTx struct {
	arena         *stubArenaRepo
	care          *stubCareRepo
	users         *stubUserRepo
	services      *stubServiceRepo
	notifications *stubNotificationRepo
	reads         *stubReads
}

func (t *stubTx) ArenaBookings() shared.ArenaBookingRepository { return t.arena }
func (t *stubTx) CareBookings() shared.CareBookingRepository   { return t.care }
func (t *stubTx) Users() shared.UserRepository                 { return t.users }
func (t *stubTx) Services() shared.ServiceRepository           { return t.services }
func (t *stubTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *stubTx) Reads() shared.CommandReads                   { return t.reads }

type stubUoW struct {
	tx        *stubTx
	withinErr error
}

func newStubUoW() *stubUoW {
	return &stubUoW{
		tx: &stubTx{
			arena:         &stubArenaRepo{reviewOK: true},
			care:          &stubCareRepo{reviewOK: true},
			users:         &stubUserRepo{updateOK: true, deleteOK: true},
			services:      &stubServiceRepo{updateOK: true, setActiveOK: true},
			notifications: &stubNotificationRepo{markReadOK: true},
			reads:         newStubReads(),
		},
	}
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.tx)
}

func (u *stubUoW) Reads() shared.CommandReads {
	return u.tx.reads
}

type stubPublisher struct {
	events []shared.ReviewedEvent
	err    error
}

func (p *stubPublisher) PublishReviewed(_ context.Context, event shared.ReviewedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type stubTokenStore struct {
	stored  map[string]uuid.UUID
	revoked []string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{stored: map[string]uuid.UUID{}}
}

func (s *stubTokenStore) Store(_ context.Context, jti string, userID uuid.UUID, _ time.Duration) error {
	s.stored[jti] = userID
	return nil
}

func (s *stubTokenStore) Valid(_ context.Context, jti string, userID uuid.UUID) (bool, error) {
	id, ok := s.stored[jti]
	return ok && id == userID, nil
}

func (s *stubTokenStore) Revoke(_ context.Context, jti string) error {
	delete(s.stored, jti)
	s.revoked = append(s.revoked, jti)
	return nil
}
