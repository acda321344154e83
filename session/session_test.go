package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mayarj/Ecommerceclientappdesign/i18n"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/orders"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jeans() models.Product {
	return models.Product{
		ID:           "5",
		Name:         "Denim Jeans",
		Category:     models.CategoryCloth,
		PriceUSD:     decimal.RequireFromString("49.99"),
		PriceSYP:     decimal.NewFromInt(1250000),
		Discount:     30,
		Images:       []string{"jeans"},
		Colors:       []string{"Blue", "Black"},
		Sizes:        []string{"30", "32"},
		QuantityType: models.QuantityUnit,
	}
}

func withItem(t *testing.T) *Session {
	t.Helper()
	s := New("s1")
	s.AddItem(models.NewCartItem(jeans(), 2, "Blue", "32"))
	require.Len(t, s.Cart(), 1)
	return s
}

func TestPlaceOrderClearsCartAndPrependsOrder(t *testing.T) {
	s := withItem(t)
	s.history.Prepend(models.Order{ID: "older"})

	order, err := s.PlaceOrder("Damascus, Syria", "cash")
	require.NoError(t, err)

	assert.Empty(t, s.Cart())
	history := s.Orders()
	require.Len(t, history, 2)
	assert.Equal(t, order.ID, history[0].ID)
	assert.Equal(t, "older", history[1].ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2.0, order.Items[0].Quantity)
}

func TestOrderItemsSurviveLaterCartChanges(t *testing.T) {
	s := withItem(t)
	order, err := s.PlaceOrder("Damascus", "syriatelCash")
	require.NoError(t, err)

	s.AddItem(models.NewCartItem(jeans(), 5, "Blue", "32"))
	for _, line := range s.Cart() {
		s.UpdateItem(line.CartItemID, models.CartItemPatch{Quantity: ptr(9.0)})
	}

	stored, err := s.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, stored.Items[0].Quantity)
	assert.Equal(t, order.Items, stored.Items)
}

func TestPlaceOrderValidationLeavesStateUntouched(t *testing.T) {
	for _, address := range []string{"", "   \t"} {
		s := withItem(t)
		cartBefore := s.Cart()

		_, err := s.PlaceOrder(address, "cash")

		var verr *orders.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "address", verr.Field)
		assert.Equal(t, cartBefore, s.Cart())
		assert.Empty(t, s.Orders())
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	s := New("s1")

	_, err := s.PlaceOrder("Damascus", "cash")

	assert.ErrorIs(t, err, orders.ErrEmptyCart)
	assert.Empty(t, s.Orders())
}

func TestCheckoutIsAtomicUnderConcurrentReaders(t *testing.T) {
	s := withItem(t)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			items, _ := s.CartSummary()
			n := len(s.Orders())
			// cart is read before history, so once the order is visible
			// any earlier cart read may still be full, never the reverse
			if len(items) == 0 {
				assert.Equal(t, 1, n)
			}
		}
	}()

	_, err := s.PlaceOrder("Damascus", "cash")
	require.NoError(t, err)
	close(stop)
	wg.Wait()
}

func TestSubscribeReceivesPlacedOrders(t *testing.T) {
	s := withItem(t)
	ch, cancel := s.Subscribe()

	order, err := s.PlaceOrder("Damascus", "cash")
	require.NoError(t, err)

	select {
	case got := <-ch:
		assert.Equal(t, order.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("no order delivered")
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestPhoneSignIn(t *testing.T) {
	s := New("s1")

	_, err := s.Verify("1234")
	assert.ErrorIs(t, err, ErrNoPendingCode)

	_, err = s.RequestCode("", "  ")
	assert.ErrorIs(t, err, ErrPhoneRequired)

	phone, err := s.RequestCode("", "944123456")
	require.NoError(t, err)
	assert.Equal(t, "+963944123456", phone)

	_, err = s.Verify("")
	assert.ErrorIs(t, err, ErrCodeRequired)

	user, err := s.Verify("0000")
	require.NoError(t, err)
	assert.Equal(t, "+963944123456", user.Phone)
	assert.Equal(t, "Damascus, Syria", user.Address)

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestUpdateProfile(t *testing.T) {
	s := New("s1")
	_, err := s.UpdateProfile(ProfileUpdate{Name: ptr("Lina")})
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = s.RequestCode("+971", "501234567")
	require.NoError(t, err)
	_, err = s.Verify("1")
	require.NoError(t, err)

	user, err := s.UpdateProfile(ProfileUpdate{Name: ptr(" Lina "), Address: ptr("3 Al-Midan Street")})
	require.NoError(t, err)
	assert.Equal(t, "Lina", user.Name)
	assert.Equal(t, "3 Al-Midan Street", user.Address)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "+971501234567", user.Phone)
}

func TestLocale(t *testing.T) {
	s := New("s1")
	assert.Equal(t, i18n.English, s.Locale())

	assert.Equal(t, i18n.Arabic, s.ToggleLocale())
	assert.Equal(t, i18n.English, s.ToggleLocale())

	s.SetLocale(i18n.Arabic)
	assert.Equal(t, "ar", s.Info().Locale)
}

func TestCartSummary(t *testing.T) {
	s := withItem(t)

	items, summary := s.CartSummary()

	require.Len(t, items, 1)
	// 49.99 * 0.7 * 2 = 69.986
	assert.True(t, decimal.RequireFromString("69.986").Equal(summary.USD.Subtotal), "got %s", summary.USD.Subtotal)
	assert.True(t, decimal.RequireFromString("71.986").Equal(summary.USD.Total))
	assert.True(t, decimal.NewFromInt(1800000).Equal(summary.SYP.Total))
}

func ptr[T any](v T) *T {
	return &v
}
