package model

import "time"

// Service is a provider's published offering on the public browse pages.
type Service struct {
	ID          uint64     `json:"id"`
	ProviderID  uint64     `json:"provider_id"`
	CategoryID  uint64     `json:"category_id"`
	RegionID    uint64     `json:"region_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type Region struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
