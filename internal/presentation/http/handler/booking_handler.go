package handler

import (
	"strconv"

	"github.com/framelight/studio-api/internal/application/service"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/internal/domain/repository"
	"github.com/framelight/studio-api/internal/presentation/http/dto/request"
	"github.com/framelight/studio-api/internal/presentation/http/dto/response"
	"github.com/framelight/studio-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// List handles listing bookings with filters
func (h *BookingHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BookingFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.BookingStatus(statusStr)
		if !status.Valid() {
			response.BadRequest(c, "Unknown booking status")
			return
		}
		params.Status = &status
	}
	if paymentStr := c.Query("payment_status"); paymentStr != "" {
		paymentStatus := enum.PaymentStatus(paymentStr)
		params.PaymentStatus = &paymentStatus
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		params.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		params.To = &to
	}

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(bookings, pagination.NewPagination(page, perPage, total))
	response.SuccessWithPagination(c, 200, "Bookings retrieved successfully", result)
}

// Create handles creating a booking
func (h *BookingHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateBookingInput{
		UserID:        *userID,
		ClientName:    req.ClientName,
		ClientContact: req.ClientContact,
		ClientAddress: req.ClientAddress,
		EventDate:     eventDate,
		Venue:         req.Venue,
		EventType:     req.EventType,
		Description:   req.Description,
		TaxRate:       req.TaxRate,
		AmountPaid:    req.AmountPaid,
		AmountDue:     req.AmountDue,
		Status:        enum.BookingStatus(req.Status),
	}

	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		input.ClientID = &clientID
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
			return
		}
		input.DueDate = &dueDate
	}
	if input.PackageIDs, err = parseUUIDs(req.PackageIDs); err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}
	if input.AddonIDs, err = parseUUIDs(req.AddonIDs); err != nil {
		response.BadRequest(c, "Invalid addon ID")
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Booking created successfully", booking)
}

// Get handles getting a single booking
func (h *BookingHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking retrieved successfully", booking)
}

// Update handles updating a booking
func (h *BookingHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req request.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateBookingInput{
		UserID:        *userID,
		BookingID:     id,
		ClientName:    req.ClientName,
		ClientContact: req.ClientContact,
		ClientAddress: req.ClientAddress,
		Venue:         req.Venue,
		EventType:     req.EventType,
		Description:   req.Description,
		TaxRate:       req.TaxRate,
		AmountPaid:    req.AmountPaid,
		AmountDue:     req.AmountDue,
	}

	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
			return
		}
		input.EventDate = &eventDate
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
			return
		}
		input.DueDate = &dueDate
	}
	if req.Status != nil {
		status := enum.BookingStatus(*req.Status)
		input.Status = &status
	}
	if req.PackageIDs != nil {
		packageIDs, err := parseUUIDs(*req.PackageIDs)
		if err != nil {
			response.BadRequest(c, "Invalid package ID")
			return
		}
		input.PackageIDs = &packageIDs
	}
	if req.AddonIDs != nil {
		addonIDs, err := parseUUIDs(*req.AddonIDs)
		if err != nil {
			response.BadRequest(c, "Invalid addon ID")
			return
		}
		input.AddonIDs = &addonIDs
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking updated successfully", booking)
}

// Delete handles deleting a booking
func (h *BookingHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RecordPayment handles recording a payment against a booking
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.RecordPaymentInput{
		UserID:    *userID,
		BookingID: id,
		Amount:    req.Amount,
		Method:    req.Method,
		Note:      req.Note,
	}
	if req.PaidAt != nil {
		paidAt, err := parseDate(*req.PaidAt)
		if err != nil {
			response.BadRequest(c, "Invalid paid_at date, expected YYYY-MM-DD")
			return
		}
		input.PaidAt = &paidAt
	}

	booking, err := h.bookingService.RecordPayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", booking)
}

// ListPayments handles listing the payments recorded against a booking
func (h *BookingHandler) ListPayments(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	payments, err := h.bookingService.ListPayments(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}
