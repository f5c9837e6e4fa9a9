package navbar

import (
	"context"
	"strconv"
)

const Brand = "TokoHobby"

type ViewModel struct {
	Brand        string           `json:"brand"`
	Links        []Link           `json:"links"`
	Languages    []LanguageOption `json:"languages"`
	Wishlist     Badge            `json:"wishlist"`
	Cart         Badge            `json:"cart"`
	Auth         AuthView         `json:"auth"`
	Scrolled     bool             `json:"scrolled"`
	MenuOpen     bool             `json:"menuOpen"`
	DropdownOpen bool             `json:"dropdownOpen"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type LanguageOption struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Badge is a counter bubble. It is only shown for counts above zero.
type Badge struct {
	Href    string `json:"href"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
	Text    string `json:"text,omitempty"`
}

type AuthKind string

const (
	AuthProfile AuthKind = "profile"
	AuthSignIn  AuthKind = "signin"
	AuthSignUp  AuthKind = "signup"
)

type AuthView struct {
	Kind         AuthKind `json:"kind"`
	Label        string   `json:"label"`
	Href         string   `json:"href"`
	UserLabel    string   `json:"userLabel,omitempty"`
	ProfileLabel string   `json:"profileLabel,omitempty"`
	LogoutLabel  string   `json:"logoutLabel,omitempty"`
}

// View renders the bar. Counter lookups that fail are logged and hide the badge.
func (n *Navbar) View(ctx context.Context) ViewModel {
	tr := n.deps.Translator

	n.mu.Lock()
	vm := ViewModel{
		Brand:        Brand,
		Scrolled:     n.scrolled,
		MenuOpen:     n.menuOpen,
		DropdownOpen: n.dropdownOpen,
	}
	language := n.language
	n.mu.Unlock()

	vm.Links = []Link{
		{Label: tr.T("home"), Href: "/"},
		{Label: tr.T("products"), Href: "/products"},
		{Label: tr.T("wishlist"), Href: "/wishlist"},
		{Label: tr.T("cart"), Href: "/cart"},
	}

	for _, l := range n.deps.Languages {
		vm.Languages = append(vm.Languages, LanguageOption{
			Code:     l.Code,
			Label:    l.Label,
			Selected: l.Code == language,
		})
	}

	user := n.user()

	wishlistCount := 0
	if user != nil && n.deps.Wishlist != nil {
		wishlistCount = n.count(func() (int, error) { return n.deps.Wishlist.WishlistCount(ctx, user.ID) }, "wishlist")
	}
	vm.Wishlist = newBadge("/wishlist", tr.T("wishlist"), wishlistCount)

	cartCount := 0
	if n.cartOwner != "" && n.deps.Cart != nil {
		cartCount = n.count(func() (int, error) { return n.deps.Cart.CartCount(ctx, n.cartOwner) }, "cart")
	}
	vm.Cart = newBadge("/cart", tr.T("cart"), cartCount)

	switch {
	case user != nil:
		vm.Auth = AuthView{
			Kind:         AuthProfile,
			Label:        tr.T("profile"),
			Href:         "/profile",
			UserLabel:    user.DisplayName(),
			ProfileLabel: tr.T("profile"),
			LogoutLabel:  tr.T("logout"),
		}
	case n.route == RouteSignIn:
		vm.Auth = AuthView{Kind: AuthSignUp, Label: tr.T("signUpHeader"), Href: RouteSignUp}
	default:
		vm.Auth = AuthView{Kind: AuthSignIn, Label: tr.T("signInHeader"), Href: RouteSignIn}
	}

	return vm
}

func (n *Navbar) count(fn func() (int, error), what string) int {
	c, err := fn()
	if err != nil {
		if n.deps.Log != nil {
			n.deps.Log.WithError(err).WithField("badge", what).Warn("Navbar: counter unavailable")
		}
		return 0
	}
	if c < 0 {
		return 0
	}
	return c
}

func newBadge(href, label string, count int) Badge {
	b := Badge{Href: href, Label: label}
	if count > 0 {
		b.Visible = true
		b.Text = strconv.Itoa(count)
	}
	return b
}
