package views

import (
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/ui/navbar"
)

// Page is what the layout template receives.
type Page struct {
	Title   string
	Lang    string
	Path    string
	CSRF    string
	T       i18n.Translator
	Nav     navbar.ViewModel
	Content interface{}
}

type ConfirmView struct {
	OrderID  string `json:"orderId"`
	Prompt   string `json:"prompt"`
	YesLabel string `json:"yesLabel"`
	NoLabel  string `json:"noLabel"`
}

type MessageView struct {
	Message   string `json:"message"`
	BackHref  string `json:"backHref,omitempty"`
	BackLabel string `json:"backLabel,omitempty"`
}
