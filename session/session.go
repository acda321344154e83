// Package session owns the per-visitor storefront state: one cart, one order
// history, the signed-in profile and the chosen language. Every method takes
// the session lock, so checkout is observed either fully applied or not at all.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mayarj/Ecommerceclientappdesign/cart"
	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/orders"
	"github.com/mayarj/Ecommerceclientappdesign/pricing"
)

const DefaultCountryCode = "+963"

var (
	ErrNotSignedIn   = errors.New("not signed in")
	ErrPhoneRequired = errors.New("phone number is required")
	ErrCodeRequired  = errors.New("verification code is required")
	ErrNoPendingCode = errors.New("no verification code was requested")
)

// subscriberBuffer is how many unread orders a slow listener may lag behind
// before further orders are dropped for it.
const subscriberBuffer = 8

type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	cart     *cart.Cart
	history  orders.History
	user     *models.User
	locale   i18n.Locale
	lastSeen time.Time

	pendingPhone string

	fees pricing.DeliveryFees
	now  func() time.Time

	subs   map[int]chan models.Order
	nextID int
}

func newSession(id string, fees pricing.DeliveryFees, now func() time.Time, seed []models.Order) *Session {
	ts := now()
	s := &Session{
		ID:        id,
		CreatedAt: ts,
		cart:      cart.New(),
		locale:    i18n.English,
		lastSeen:  ts,
		fees:      fees,
		now:       now,
		subs:      make(map[int]chan models.Order),
	}
	// seed is newest first
	for i := len(seed) - 1; i >= 0; i-- {
		s.history.Prepend(seed[i])
	}
	return s
}

// New returns a standalone session with default fees and no order history.
func New(id string) *Session {
	return newSession(id, pricing.DefaultDeliveryFees(), time.Now, nil)
}

func (s *Session) touch() {
	s.lastSeen = s.now()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) Fees() pricing.DeliveryFees {
	return s.fees
}

// --- cart ---

func (s *Session) AddItem(item models.CartItem) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.cart.AddItem(item)
}

func (s *Session) UpdateItem(id string, patch models.CartItemPatch) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.cart.UpdateItem(id, patch)
}

func (s *Session) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.cart.RemoveItem(id)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cart.Clear()
}

func (s *Session) ImportCart(lines []models.CartItem) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cart.Import(lines)
	return s.cart.Items()
}

// CartItem looks a line up the way UpdateItem and RemoveItem do.
func (s *Session) CartItem(id string) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Get(id)
}

// Cart returns a snapshot of the cart lines.
func (s *Session) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartSummary returns the lines together with their totals, read under one lock.
func (s *Session) CartSummary() ([]models.CartItem, pricing.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.cart.Items()
	return items, pricing.Summarize(items, s.fees)
}

// --- orders ---

// PlaceOrder checks out the cart: on success the new order heads the history
// and the cart is empty. On error neither changes.
func (s *Session) PlaceOrder(address, method string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	order, err := orders.Build(s.cart.Items(), address, method, s.fees, s.now())
	if err != nil {
		return models.Order{}, err
	}
	s.history.Prepend(order)
	s.cart.Clear()
	s.publish(order)
	return order.Clone(), nil
}

func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.List()
}

func (s *Session) Order(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Get(id)
}

// Subscribe delivers every order placed after the call. The returned func
// must be called to release the subscription; it closes the channel.
func (s *Session) Subscribe() (<-chan models.Order, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan models.Order, subscriberBuffer)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

func (s *Session) publish(order models.Order) {
	for _, ch := range s.subs {
		select {
		case ch <- order.Clone():
		default:
		}
	}
}

// --- profile and language ---

func (s *Session) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// ProfileUpdate holds the editable profile fields; nil fields stay as they are.
type ProfileUpdate struct {
	Name    *string
	Email   *string
	Address *string
}

func (s *Session) UpdateProfile(u ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.user == nil {
		return models.User{}, ErrNotSignedIn
	}
	if u.Name != nil {
		s.user.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		s.user.Email = strings.TrimSpace(*u.Email)
	}
	if u.Address != nil {
		s.user.Address = strings.TrimSpace(*u.Address)
	}
	return *s.user, nil
}

// RequestCode starts the phone sign-in. No code is actually sent.
func (s *Session) RequestCode(countryCode, number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", ErrPhoneRequired
	}
	countryCode = strings.TrimSpace(countryCode)
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.pendingPhone = countryCode + number
	return s.pendingPhone, nil
}

// Verify completes the phone sign-in. Any non-empty code is accepted and the
// session gets the demo profile for the pending phone number.
func (s *Session) Verify(code string) (models.User, error) {
	if strings.TrimSpace(code) == "" {
		return models.User{}, ErrCodeRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.pendingPhone == "" {
		return models.User{}, ErrNoPendingCode
	}
	s.user = &models.User{
		ID:        s.ID,
		Phone:     s.pendingPhone,
		Name:      "User Name",
		Email:     "user@example.com",
		Address:   "Damascus, Syria",
		CreatedAt: s.now(),
	}
	s.pendingPhone = ""
	return *s.user, nil
}

func (s *Session) Locale() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

func (s *Session) SetLocale(l i18n.Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.locale = l
}

func (s *Session) ToggleLocale() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.locale = s.locale.Toggle()
	return s.locale
}

// Info is the admin view of a session.
type Info struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	LastSeen  time.Time `json:"lastSeen"`
	SignedIn  bool      `json:"signedIn"`
	Locale    string    `json:"locale"`
	CartLines int       `json:"cartLines"`
	Orders    int       `json:"orders"`
}

func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		LastSeen:  s.lastSeen,
		SignedIn:  s.user != nil,
		Locale:    s.locale.String(),
		CartLines: s.cart.Len(),
		Orders:    s.history.Len(),
	}
}
