package request

// CreateBookingRequest represents a create booking request. Dates use the
// YYYY-MM-DD form; package_ids and addon_ids are ordered and may repeat.
type CreateBookingRequest struct {
	ClientID      *string  `json:"client_id" binding:"omitempty,uuid"`
	ClientName    string   `json:"client_name"`
	ClientContact string   `json:"client_contact"`
	ClientAddress string   `json:"client_address"`
	EventDate     string   `json:"event_date" binding:"required"`
	Venue         string   `json:"venue"`
	EventType     string   `json:"event_type" binding:"required"`
	Description   *string  `json:"description"`
	TaxRate       float64  `json:"tax_rate" binding:"gte=0,lte=100"`
	AmountPaid    float64  `json:"amount_paid" binding:"gte=0"`
	AmountDue     float64  `json:"amount_due" binding:"gte=0"`
	DueDate       *string  `json:"due_date"`
	Status        string   `json:"status"`
	PackageIDs    []string `json:"package_ids" binding:"omitempty,dive,uuid"`
	AddonIDs      []string `json:"addon_ids" binding:"omitempty,dive,uuid"`
}

// UpdateBookingRequest represents an update booking request. When
// package_ids or addon_ids is present the reference lists are replaced
// wholesale in the submitted order.
type UpdateBookingRequest struct {
	ClientName    *string   `json:"client_name"`
	ClientContact *string   `json:"client_contact"`
	ClientAddress *string   `json:"client_address"`
	EventDate     *string   `json:"event_date"`
	Venue         *string   `json:"venue"`
	EventType     *string   `json:"event_type"`
	Description   *string   `json:"description"`
	TaxRate       *float64  `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
	AmountPaid    *float64  `json:"amount_paid" binding:"omitempty,gte=0"`
	AmountDue     *float64  `json:"amount_due" binding:"omitempty,gte=0"`
	DueDate       *string   `json:"due_date"`
	Status        *string   `json:"status"`
	PackageIDs    *[]string `json:"package_ids"`
	AddonIDs      *[]string `json:"addon_ids"`
}

// RecordPaymentRequest represents a record payment request
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method"`
	Note   *string `json:"note"`
	PaidAt *string `json:"paid_at"`
}
