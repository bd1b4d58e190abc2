package models

// AssetCode is a registered crypto code. Code is always upper case.
type AssetCode struct {
	ID   int64
	Code string
}
