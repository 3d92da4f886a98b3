package model

import "time"

type Brand struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BrandParams struct {
	Name string
}
