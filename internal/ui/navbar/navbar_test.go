package navbar_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/ui/events"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/ui/navbar"
)

type fakeSession struct {
	user      *entities.User
	logoutErr error
	logouts   int
}

func (s *fakeSession) User() *entities.User { return s.user }

func (s *fakeSession) Logout(context.Context) error {
	s.logouts++
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.user = nil
	return nil
}

type fakeCounters struct {
	cart, wishlist       int
	cartErr, wishlistErr error
	cartOwner            string
}

func (f *fakeCounters) CartCount(_ context.Context, owner string) (int, error) {
	f.cartOwner = owner
	return f.cart, f.cartErr
}

func (f *fakeCounters) WishlistCount(context.Context, string) (int, error) {
	return f.wishlist, f.wishlistErr
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fixture struct {
	bus      *events.Bus
	session  *fakeSession
	counters *fakeCounters
	nav      *navbar.Navbar
}

func newFixture(t *testing.T, user *entities.User, route string) *fixture {
	t.Helper()

	catalog, err := i18n.NewCatalog("en", quietLogger())
	require.NoError(t, err)

	f := &fixture{
		bus:      events.NewBus(),
		session:  &fakeSession{user: user},
		counters: &fakeCounters{},
	}
	f.nav = navbar.New(navbar.Deps{
		Cart:       f.counters,
		Wishlist:   f.counters,
		Session:    f.session,
		Translator: catalog.For("en"),
		Bus:        f.bus,
		Languages:  catalog.Languages(),
		Log:        quietLogger(),
	}, route, "guest-1")
	return f
}

func alice() *entities.User {
	return &entities.User{ID: "u1", Name: "Alice Liddell", FirstName: "Alice"}
}

func TestNavbar_OutsideClickClosesDropdown(t *testing.T) {
	f := newFixture(t, alice(), "/")

	f.nav.OpenDropdown()
	require.True(t, f.nav.DropdownOpen())
	assert.Equal(t, 1, f.bus.Count(events.PointerDown))

	// a press inside the menu keeps it open
	f.bus.Dispatch(events.Event{Kind: events.PointerDown, Target: f.nav.ToggleElement()})
	assert.True(t, f.nav.DropdownOpen())
	assert.Equal(t, 1, f.bus.Count(events.PointerDown))

	outside := events.NewElement("page", nil)
	f.bus.Dispatch(events.Event{Kind: events.PointerDown, Target: outside})
	assert.False(t, f.nav.DropdownOpen())
	assert.Zero(t, f.bus.Count(events.PointerDown))
}

func TestNavbar_RapidTogglesNeverDuplicateListener(t *testing.T) {
	f := newFixture(t, alice(), "/")

	for i := 0; i < 7; i++ {
		f.nav.ToggleDropdown()
		assert.LessOrEqual(t, f.bus.Count(events.PointerDown), 1)
	}
	assert.True(t, f.nav.DropdownOpen())
	assert.Equal(t, 1, f.bus.Count(events.PointerDown))

	f.nav.OpenDropdown()
	f.nav.OpenDropdown()
	assert.Equal(t, 1, f.bus.Count(events.PointerDown))

	f.nav.ToggleDropdown()
	assert.False(t, f.nav.DropdownOpen())
	assert.Zero(t, f.bus.Count(events.PointerDown))
}

func TestNavbar_UnmountReleasesEverySubscription(t *testing.T) {
	f := newFixture(t, alice(), "/")

	f.nav.Mount()
	f.nav.Mount()
	f.nav.OpenDropdown()
	assert.Equal(t, 1, f.bus.Count(events.Scroll))
	assert.Equal(t, 1, f.bus.Count(events.PointerDown))

	f.nav.Unmount()
	assert.Zero(t, f.bus.Count(events.Scroll))
	assert.Zero(t, f.bus.Count(events.PointerDown))
	assert.False(t, f.nav.DropdownOpen())
}

func TestNavbar_DropdownRequiresUser(t *testing.T) {
	f := newFixture(t, nil, "/")

	f.nav.OpenDropdown()
	assert.False(t, f.nav.DropdownOpen())
	assert.Zero(t, f.bus.Count(events.PointerDown))
}

func TestNavbar_ScrollThreshold(t *testing.T) {
	f := newFixture(t, nil, "/")
	f.nav.Mount()

	f.bus.Dispatch(events.Event{Kind: events.Scroll, ScrollY: 10})
	assert.False(t, f.nav.Scrolled())

	f.bus.Dispatch(events.Event{Kind: events.Scroll, ScrollY: 10.5})
	assert.True(t, f.nav.Scrolled())
	assert.True(t, f.nav.View(context.Background()).Scrolled)

	f.bus.Dispatch(events.Event{Kind: events.Scroll, ScrollY: 0})
	assert.False(t, f.nav.Scrolled())
}

func TestNavbar_AuthViewByRoute(t *testing.T) {
	cases := []struct {
		name  string
		user  *entities.User
		route string
		kind  navbar.AuthKind
		href  string
	}{
		{name: "signed in", user: alice(), route: "/signin", kind: navbar.AuthProfile, href: "/profile"},
		{name: "on sign in page", route: navbar.RouteSignIn, kind: navbar.AuthSignUp, href: navbar.RouteSignUp},
		{name: "on sign up page", route: navbar.RouteSignUp, kind: navbar.AuthSignIn, href: navbar.RouteSignIn},
		{name: "elsewhere", route: "/products", kind: navbar.AuthSignIn, href: navbar.RouteSignIn},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.user, tc.route)
			auth := f.nav.View(context.Background()).Auth
			assert.Equal(t, tc.kind, auth.Kind)
			assert.Equal(t, tc.href, auth.Href)
		})
	}
}

func TestNavbar_UserLabel(t *testing.T) {
	f := newFixture(t, alice(), "/")
	assert.Equal(t, "Alice", f.nav.View(context.Background()).Auth.UserLabel)

	f = newFixture(t, &entities.User{ID: "u2", FirstName: "Bob"}, "/")
	assert.Equal(t, "Bob", f.nav.View(context.Background()).Auth.UserLabel)
}

func TestNavbar_Badges(t *testing.T) {
	f := newFixture(t, alice(), "/")
	f.counters.cart = 3
	f.counters.wishlist = 0

	vm := f.nav.View(context.Background())
	assert.True(t, vm.Cart.Visible)
	assert.Equal(t, "3", vm.Cart.Text)
	assert.False(t, vm.Wishlist.Visible)
	assert.Empty(t, vm.Wishlist.Text)
	assert.Equal(t, "guest-1", f.counters.cartOwner)

	f.counters.cartErr = errors.New("redis down")
	f.counters.wishlist = 12
	vm = f.nav.View(context.Background())
	assert.False(t, vm.Cart.Visible)
	assert.True(t, vm.Wishlist.Visible)
	assert.Equal(t, "12", vm.Wishlist.Text)
}

func TestNavbar_WishlistHiddenForAnonymous(t *testing.T) {
	f := newFixture(t, nil, "/")
	f.counters.wishlist = 5

	vm := f.nav.View(context.Background())
	assert.False(t, vm.Wishlist.Visible)
}

func TestNavbar_LinksAndLanguages(t *testing.T) {
	f := newFixture(t, nil, "/")

	vm := f.nav.View(context.Background())
	assert.Equal(t, navbar.Brand, vm.Brand)
	require.Len(t, vm.Links, 4)
	assert.Equal(t, navbar.Link{Label: "Home", Href: "/"}, vm.Links[0])
	assert.Equal(t, "/cart", vm.Links[3].Href)

	require.Len(t, vm.Languages, 2)
	assert.True(t, vm.Languages[0].Selected)

	assert.True(t, f.nav.SetLanguage("am"))
	assert.False(t, f.nav.SetLanguage("xx"))
	assert.Equal(t, "am", f.nav.Language())

	vm = f.nav.View(context.Background())
	assert.False(t, vm.Languages[0].Selected)
	assert.True(t, vm.Languages[1].Selected)
}

func TestNavbar_MobileMenu(t *testing.T) {
	f := newFixture(t, nil, "/")

	f.nav.ToggleMenu()
	assert.True(t, f.nav.MenuOpen())
	f.nav.FollowLink()
	assert.False(t, f.nav.MenuOpen())
}

func TestNavbar_LogoutClosesMenusEvenOnFailure(t *testing.T) {
	f := newFixture(t, alice(), "/")
	f.session.logoutErr = errors.New("network")

	f.nav.ToggleMenu()
	f.nav.OpenDropdown()

	err := f.nav.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, f.nav.MenuOpen())
	assert.False(t, f.nav.DropdownOpen())
	assert.Zero(t, f.bus.Count(events.PointerDown))
	assert.Equal(t, navbar.AuthProfile, f.nav.View(context.Background()).Auth.Kind)
}

func TestNavbar_LogoutSuccess(t *testing.T) {
	f := newFixture(t, alice(), "/")
	f.nav.OpenDropdown()

	require.NoError(t, f.nav.Logout(context.Background()))
	assert.Equal(t, 1, f.session.logouts)
	assert.False(t, f.nav.DropdownOpen())
	assert.Equal(t, navbar.AuthSignIn, f.nav.View(context.Background()).Auth.Kind)
}

func TestNavbar_NavigateProfileClosesDropdown(t *testing.T) {
	f := newFixture(t, alice(), "/")
	f.nav.OpenDropdown()

	f.nav.NavigateProfile()
	assert.False(t, f.nav.DropdownOpen())
	assert.Zero(t, f.bus.Count(events.PointerDown))
}
