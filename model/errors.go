package model

import "errors"

var (
	// ErrConfiguration is a bad or missing credential profile or settings file.
	ErrConfiguration = errors.New("configuration error")
	// ErrCatalogParse is a pricing catalog entry that could not be decoded.
	ErrCatalogParse = errors.New("catalog parse error")
	// ErrInputFile is an unreadable import table.
	ErrInputFile = errors.New("input file error")
	// ErrSchemaMismatch is an import table whose header does not match the report columns.
	ErrSchemaMismatch = errors.New("report schema mismatch")
	// ErrMalformedRow is an import row missing its instance id or region.
	ErrMalformedRow = errors.New("malformed row")
	// ErrInventory is an inventory listing that failed in every region.
	ErrInventory = errors.New("inventory error")
	// ErrTagApply is a tag-set call rejected by the provider.
	ErrTagApply = errors.New("tag apply error")
)
