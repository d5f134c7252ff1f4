package request

// CreatePackageRequest represents a create package request
type CreatePackageRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gte=0"`
	Deliverables string  `json:"deliverables"`
	IsPopular    bool    `json:"is_popular"`
	Category     string  `json:"category" binding:"required"`
}

// UpdatePackageRequest represents an update package request
type UpdatePackageRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Deliverables *string  `json:"deliverables"`
	IsPopular    *bool    `json:"is_popular"`
	Category     *string  `json:"category"`
}

// CreateAddonRequest represents a create addon request
type CreateAddonRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	IsTaxable   bool    `json:"is_taxable"`
}

// UpdateAddonRequest represents an update addon request
type UpdateAddonRequest struct {
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=1"`
	IsTaxable   *bool    `json:"is_taxable"`
}
