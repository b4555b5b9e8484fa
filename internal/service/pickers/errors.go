package pickers

import "errors"

var (
	ErrPickerNotFound  = errors.New("picker not found")
	ErrDuplicatePicker = errors.New("picker already exists")
	ErrInvalidConfig   = errors.New("invalid picker configuration")
	ErrNotBuilt        = errors.New("pickers are not built yet")
)
