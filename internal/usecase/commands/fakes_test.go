//go:build unit

package commands_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/customer"
	"neko-hotel/internal/domain/history"
	"neko-hotel/internal/domain/rate"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/infra"
	"neko-hotel/internal/pkg/clock"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is the in-memory backing for the fake unit of work.
type memStore struct {
	reservations map[uuid.UUID]*booking.Reservation
	history      []*history.Entry
	customers    map[uuid.UUID]*customer.Customer
	cats         map[uuid.UUID]*customer.Cat
	rates        map[room.Type]*rate.RoomRate
}

func newMemStore() *memStore {
	return &memStore{
		reservations: map[uuid.UUID]*booking.Reservation{},
		customers:    map[uuid.UUID]*customer.Customer{},
		cats:         map[uuid.UUID]*customer.Cat{},
		rates:        map[room.Type]*rate.RoomRate{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.cats {
		c.cats[k] = v
	}
	for k, v := range s.rates {
		c.rates[k] = v
	}
	c.history = append(c.history, s.history...)
	return c
}

func (s *memStore) seedRates(nightlyCents int64, now time.Time) {
	for _, t := range room.Types {
		rr, _ := rate.NewRoomRate(t, booking.NewMoney(nightlyCents), now)
		s.rates[t] = rr
	}
}

// fakeUoW mimics transactional semantics: commands run against a copy
// and the copy only replaces the store when the function succeeds.
type fakeUoW struct {
	store *memStore
}

func newFakeUoW(store *memStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	working := u.store.clone()
	if err := fn(ctx, &memTx{store: working}); err != nil {
		return err
	}
	*u.store = *working
	return nil
}

func (u *fakeUoW) Reads() shared.Tx {
	return &memTx{store: u.store}
}

type memTx struct {
	store *memStore
}

func (t *memTx) Reservations() shared.ReservationRepository { return &memReservations{t.store} }
func (t *memTx) History() shared.HistoryRepository          { return &memHistory{t.store} }
func (t *memTx) Customers() shared.CustomerRepository       { return &memCustomers{t.store} }
func (t *memTx) Cats() shared.CatRepository                 { return &memCats{t.store} }
func (t *memTx) Rates() shared.RateRepository               { return &memRates{t.store} }

type memReservations struct{ store *memStore }

func (r *memReservations) ListAll(_ context.Context) ([]*booking.Reservation, error) {
	all := make([]*booking.Reservation, 0, len(r.store.reservations))
	for _, res := range r.store.reservations {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt().After(all[j].CreatedAt())
	})
	return all, nil
}

func (r *memReservations) FindByID(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r *memReservations) Insert(_ context.Context, res *booking.Reservation) error {
	r.store.reservations[res.ID()] = res
	return nil
}

func (r *memReservations) Update(_ context.Context, res *booking.Reservation) error {
	if _, ok := r.store.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.store.reservations[res.ID()] = res
	return nil
}

func (r *memReservations) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.store.reservations, id)
	return nil
}

type memHistory struct{ store *memStore }

func (h *memHistory) Append(_ context.Context, entry *history.Entry) error {
	h.store.history = append(h.store.history, entry)
	return nil
}

func (h *memHistory) ListRecent(_ context.Context, limit int) ([]*history.Entry, error) {
	entries := append([]*history.Entry(nil), h.store.history...)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp().After(entries[j].Timestamp())
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type memCustomers struct{ store *memStore }

func (c *memCustomers) List(_ context.Context) ([]*customer.Customer, error) {
	all := make([]*customer.Customer, 0, len(c.store.customers))
	for _, cust := range c.store.customers {
		all = append(all, cust)
	}
	return all, nil
}

func (c *memCustomers) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	cust, ok := c.store.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return cust, nil
}

func (c *memCustomers) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	for _, cust := range c.store.customers {
		if strings.EqualFold(cust.Email(), email) {
			return cust, nil
		}
	}
	return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
}

func (c *memCustomers) Insert(_ context.Context, cust *customer.Customer) error {
	for _, existing := range c.store.customers {
		if existing.Email() != "" && strings.EqualFold(existing.Email(), cust.Email()) {
			return infra.WrapRepoErr("customer email already registered", nil, infra.KindDuplicateKey)
		}
	}
	c.store.customers[cust.ID()] = cust
	return nil
}

func (c *memCustomers) Update(_ context.Context, cust *customer.Customer) error {
	if _, ok := c.store.customers[cust.ID()]; !ok {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	c.store.customers[cust.ID()] = cust
	return nil
}

func (c *memCustomers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := c.store.customers[id]; !ok {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	delete(c.store.customers, id)
	return nil
}

type memCats struct{ store *memStore }

func (c *memCats) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*customer.Cat, error) {
	var owned []*customer.Cat
	for _, cat := range c.store.cats {
		if cat.OwnerID() == ownerID {
			owned = append(owned, cat)
		}
	}
	return owned, nil
}

func (c *memCats) Insert(_ context.Context, cat *customer.Cat) error {
	c.store.cats[cat.ID()] = cat
	return nil
}

func (c *memCats) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := c.store.cats[id]; !ok {
		return infra.WrapRepoErr("cat not found", nil, infra.KindNotFound)
	}
	delete(c.store.cats, id)
	return nil
}

type memRates struct{ store *memStore }

func (r *memRates) All(_ context.Context) ([]*rate.RoomRate, error) {
	all := make([]*rate.RoomRate, 0, len(r.store.rates))
	for _, rr := range r.store.rates {
		all = append(all, rr)
	}
	return all, nil
}

func (r *memRates) FindByType(_ context.Context, t room.Type) (*rate.RoomRate, error) {
	rr, ok := r.store.rates[t]
	if !ok {
		return nil, infra.WrapRepoErr("rate not found", nil, infra.KindNotFound)
	}
	return rr, nil
}

func (r *memRates) Update(_ context.Context, rr *rate.RoomRate) error {
	if _, ok := r.store.rates[rr.RoomType()]; !ok {
		return infra.WrapRepoErr("rate not found", nil, infra.KindNotFound)
	}
	r.store.rates[rr.RoomType()] = rr
	return nil
}

var testClock = clock.NewMockClock(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))
