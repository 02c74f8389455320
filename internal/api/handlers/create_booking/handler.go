package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "please correct the highlighted fields"
	msgStudioNotFound     = "studio not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var fieldErrs domain.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			// Занятый слот отдаётся как конфликт, остальные ошибки формы как 422
			if fieldErrs[domain.FieldTimeSlot] == availability.MessageSlotNotAvailable {
				h.logger.Warn("POST /bookings - Slot not available: studio_id=%d, date=%s, time=%s",
					req.StudioID, req.Date, req.TimeSlot)
				handlers.RespondJSON(w, http.StatusConflict, handlers.ErrorResponse{
					Error:  availability.MessageSlotNotAvailable,
					Fields: fieldErrs,
				})
				return
			}
			h.logger.Warn("POST /bookings - Validation failed: studio_id=%d, %v", req.StudioID, err)
			handlers.RespondFieldErrors(w, msgValidationFailed, fieldErrs)

		case errors.Is(err, createBooking.ErrStudioNotFound):
			h.logger.Warn("POST /bookings - Studio not found: studio_id=%d", req.StudioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrSaveFailed):
			h.logger.Error("POST /bookings - Failed to save booking: studio_id=%d, error=%v", req.StudioID, err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, handlers.ErrorResponse{
				Error:  createBooking.MessageSaveFailed,
				Fields: map[string]string{domain.FieldSubmit: createBooking.MessageSaveFailed},
			})

		default:
			h.logger.Error("POST /bookings - Failed to create booking: studio_id=%d, error=%v", req.StudioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, studio_id=%d",
		result.Booking.ID, result.Booking.StudioID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
