package models

// CancelOrderForm is the answer to the cancel confirmation prompt.
type CancelOrderForm struct {
	Confirm string `form:"confirm" validate:"required,oneof=yes no"`
}

type LanguageForm struct {
	Language string `form:"language" validate:"required,oneof=en am"`
	Redirect string `form:"redirect"`
}
