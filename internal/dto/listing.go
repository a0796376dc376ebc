package dto

import "github.com/noah-isme/simak-api/pkg/pagination"

// ListResult is a page of items plus the window it was cut from.
type ListResult[T any] struct {
	Items  []T
	Window pagination.Window
}

// MasterMeta is the meta block of reference-data listings.
type MasterMeta struct {
	TotalData int `json:"total_data"`
}
