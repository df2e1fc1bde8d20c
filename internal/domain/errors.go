package domain

import "errors"

var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrEmptyInput      = errors.New("input file is empty")
	ErrInvalidFormat   = errors.New("could not decode JSON")
	ErrNoRecords       = errors.New("no records found")
	ErrUnexpectedShape = errors.New("input is in an unexpected format")
	ErrPincodeNotFound = errors.New("pincode not found")
	ErrInvalidPincode  = errors.New("pincode must be exactly 6 characters")
	ErrUploadFailed    = errors.New("artifact upload to storage failed")
)
