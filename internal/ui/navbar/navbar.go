// Package navbar holds the storefront navigation bar: links, language
// selector, wishlist/cart badges and the auth-aware profile menu.
package navbar

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/ui/events"
)

// ScrollThreshold is the vertical offset after which the bar switches to its
// scrolled style.
const ScrollThreshold = 10

const (
	RouteSignIn = "/signin"
	RouteSignUp = "/signup"
)

type CartCounter interface {
	CartCount(ctx context.Context, ownerID string) (int, error)
}

type WishlistCounter interface {
	WishlistCount(ctx context.Context, userID string) (int, error)
}

// Session is the signed-in state of the current visitor.
type Session interface {
	User() *entities.User
	Logout(ctx context.Context) error
}

type Deps struct {
	Cart       CartCounter
	Wishlist   WishlistCounter
	Session    Session
	Translator i18n.Translator
	Bus        *events.Bus
	Languages  []i18n.Language
	Log        *logrus.Logger
}

type Navbar struct {
	deps      Deps
	route     string
	cartOwner string

	root     *events.Element
	dropdown *events.Element
	toggle   *events.Element

	mu           sync.Mutex
	mounted      bool
	menuOpen     bool
	dropdownOpen bool
	scrolled     bool
	language     string
	scrollSub    events.Subscription
	outsideSub   events.Subscription
}

// New builds a navbar for the given route. cartOwner identifies whose cart the
// badge counts (the user id, or the guest id for anonymous visitors).
func New(deps Deps, route, cartOwner string) *Navbar {
	if deps.Bus == nil {
		deps.Bus = events.NewBus()
	}

	root := events.NewElement("navbar", nil)
	dropdown := events.NewElement("profile-menu", root)

	n := &Navbar{
		deps:      deps,
		route:     route,
		cartOwner: cartOwner,
		root:      root,
		dropdown:  dropdown,
		toggle:    events.NewElement("profile-toggle", dropdown),
	}
	if deps.Translator != nil {
		n.language = deps.Translator.Locale()
	}
	return n
}

func (n *Navbar) Root() *events.Element           { return n.root }
func (n *Navbar) DropdownElement() *events.Element { return n.dropdown }
func (n *Navbar) ToggleElement() *events.Element   { return n.toggle }

// Mount starts listening to scroll events. Calling it twice is a no-op.
func (n *Navbar) Mount() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.mounted {
		return
	}
	n.mounted = true
	n.scrollSub = n.deps.Bus.Subscribe(events.Scroll, n.handleScroll)
}

// Unmount drops every subscription the navbar holds.
func (n *Navbar) Unmount() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.mounted = false
	n.dropdownOpen = false
	if n.scrollSub != nil {
		n.scrollSub.Unsubscribe()
		n.scrollSub = nil
	}
	n.releaseOutsideLocked()
}

func (n *Navbar) handleScroll(e events.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scrolled = e.ScrollY > ScrollThreshold
}

func (n *Navbar) handlePointerDown(e events.Event) {
	if n.dropdown.Contains(e.Target) {
		return
	}
	n.CloseDropdown()
}

func (n *Navbar) ToggleMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = !n.menuOpen
}

func (n *Navbar) CloseMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = false
}

// FollowLink is what happens when the visitor picks a link from the mobile menu.
func (n *Navbar) FollowLink() {
	n.CloseMenu()
}

func (n *Navbar) ToggleDropdown() {
	n.mu.Lock()
	open := n.dropdownOpen
	n.mu.Unlock()

	if open {
		n.CloseDropdown()
		return
	}
	n.OpenDropdown()
}

// OpenDropdown shows the profile menu and registers the outside-click
// listener. Only signed-in visitors have a profile menu.
func (n *Navbar) OpenDropdown() {
	if n.user() == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.dropdownOpen = true
	if n.outsideSub == nil {
		n.outsideSub = n.deps.Bus.Subscribe(events.PointerDown, n.handlePointerDown)
	}
}

func (n *Navbar) CloseDropdown() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.dropdownOpen = false
	n.releaseOutsideLocked()
}

// NavigateProfile follows the profile link, which also closes the menu.
func (n *Navbar) NavigateProfile() {
	n.CloseDropdown()
}

func (n *Navbar) releaseOutsideLocked() {
	if n.outsideSub != nil {
		n.outsideSub.Unsubscribe()
		n.outsideSub = nil
	}
}

// Logout signs the visitor out. The mobile menu and the profile menu are
// closed whether or not the logout succeeded.
func (n *Navbar) Logout(ctx context.Context) error {
	var err error
	if n.deps.Session != nil {
		err = n.deps.Session.Logout(ctx)
		if err != nil && n.deps.Log != nil {
			n.deps.Log.WithError(err).Warn("Navbar: logout failed")
		}
	}

	n.CloseMenu()
	n.CloseDropdown()
	return err
}

// SetLanguage switches the selected language. Unknown codes are ignored.
func (n *Navbar) SetLanguage(code string) bool {
	for _, l := range n.deps.Languages {
		if l.Code == code {
			n.mu.Lock()
			n.language = code
			n.mu.Unlock()
			return true
		}
	}
	return false
}

func (n *Navbar) MenuOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.menuOpen
}

func (n *Navbar) DropdownOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dropdownOpen
}

func (n *Navbar) Scrolled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.scrolled
}

func (n *Navbar) Language() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.language
}

func (n *Navbar) user() *entities.User {
	if n.deps.Session == nil {
		return nil
	}
	return n.deps.Session.User()
}
