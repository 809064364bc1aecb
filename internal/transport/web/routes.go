package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avstrong/hotel/internal/booking"
	"github.com/avstrong/hotel/internal/boost"
	"github.com/avstrong/hotel/internal/hotel"
)

const hotelsPrefix = "/api/hotels/v1"

type createHotelRequest struct {
	Name      string   `json:"name"       validate:"required"`
	BasePrice *float64 `json:"base_price" validate:"omitempty"`
}

type renameHotelRequest struct {
	Name string `json:"name" validate:"required"`
}

type basePriceRequest struct {
	BasePrice float64 `json:"base_price" validate:"gte=100"`
}

type rateRequest struct {
	Rate float64 `json:"rate" validate:"gte=0.5,lte=1.5"`
}

type addRoomRequest struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category" validate:"required"`
}

type bookRequest struct {
	Room         string `json:"room"          validate:"required"`
	Guest        string `json:"guest"         validate:"required"`
	CheckIn      int    `json:"check_in"      validate:"gte=1,lte=30"`
	CheckOut     int    `json:"check_out"     validate:"gtfield=CheckIn,lte=31"`
	DiscountCode string `json:"discount_code"`
}

type errorResponse struct {
	Error     string                    `json:"error"`
	Conflicts []booking.ReservationView `json:"conflicts,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if inputErr := booking.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if availabilityErr := hotel.IsAvailabilityError(err); availabilityErr != nil {
		conflicts := make([]booking.ReservationView, 0, len(availabilityErr.Conflicts()))
		for _, reservation := range availabilityErr.Conflicts() {
			conflicts = append(conflicts, booking.ReservationView{
				ID:        reservation.ID(),
				Room:      reservation.RoomName(),
				CheckIn:   reservation.CheckIn(),
				CheckOut:  reservation.CheckOut(),
				BasePrice: reservation.BasePrice(),
			})
		}

		s.writeJSON(w, http.StatusPreconditionFailed, errorResponse{Error: availabilityErr.Error(), Conflicts: conflicts})

		return
	}

	switch {
	case errors.Is(err, hotel.ErrInvalidInput):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()}) //nolint:exhaustruct
	case errors.Is(err, hotel.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()}) //nolint:exhaustruct
	case errors.Is(err, hotel.ErrConflict):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()}) //nolint:exhaustruct
	default:
		s.l.LogErrorf("Could not handle request: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// decode reads and validates a JSON body. It writes the 400 response itself and reports false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string][]string{"body": {"provide a valid JSON body"}})

		return false
	}

	if err := s.validate.Struct(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, validationFields(err))

		return false
	}

	return true
}

func (s *Server) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string][]string{name: {fmt.Sprintf("%s must be a number", name)}})

		return 0, false
	}

	return v, true
}

func (s *Server) createHotelHandler(w http.ResponseWriter, r *http.Request) {
	var req createHotelRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.bManager.CreateHotel(r.Context(), &booking.CreateHotelInput{Name: req.Name, BasePrice: req.BasePrice})
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) listHotelsHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.bManager.ListHotels(r.Context())
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) hotelDetailsHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.bManager.HotelDetails(r.Context(), r.PathValue("hotel"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) removeHotelHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.bManager.RemoveHotel(r.Context(), r.PathValue("hotel")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) renameHotelHandler(w http.ResponseWriter, r *http.Request) {
	var req renameHotelRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.bManager.RenameHotel(r.Context(), r.PathValue("hotel"), req.Name)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) basePriceHandler(w http.ResponseWriter, r *http.Request) {
	var req basePriceRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.bManager.ChangeBasePrice(r.Context(), r.PathValue("hotel"), req.BasePrice)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) rateHandler(w http.ResponseWriter, r *http.Request) {
	date, ok := s.pathInt(w, r, "date")
	if !ok {
		return
	}

	var req rateRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.bManager.SetDateRate(r.Context(), r.PathValue("hotel"), date, req.Rate)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) availabilityHandler(w http.ResponseWriter, r *http.Request) {
	date, ok := s.pathInt(w, r, "date")
	if !ok {
		return
	}

	out, err := s.bManager.Availability(r.Context(), r.PathValue("hotel"), date)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) addRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req addRoomRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.bManager.AddRoom(r.Context(), &booking.AddRoomInput{
		Hotel:    r.PathValue("hotel"),
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) roomDetailsHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.bManager.RoomDetails(r.Context(), r.PathValue("hotel"), r.PathValue("room"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) removeRoomHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.bManager.RemoveRoom(r.Context(), r.PathValue("hotel"), r.PathValue("room")); err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) bookHandler(w http.ResponseWriter, r *http.Request) {
	idempotencyKey := r.Header.Get("Idempotency-Key")
	if idempotencyKey == "" {
		http.Error(w, "Idempotency-Key header is missing", http.StatusBadRequest)

		return
	}

	var req bookRequest
	if !s.decode(w, r, &req) {
		return
	}

	ctx := booking.NewContextWithIdempotencyKey(r.Context(), idempotencyKey)

	out, err := s.bManager.Book(ctx, &booking.BookInput{
		Hotel:        r.PathValue("hotel"),
		Room:         req.Room,
		Guest:        req.Guest,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) findReservationsHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.bManager.FindReservations(r.Context(), r.PathValue("hotel"), r.PathValue("guest"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) cancelReservationHandler(w http.ResponseWriter, r *http.Request) {
	err := s.bManager.CancelReservation(r.Context(), r.PathValue("hotel"), r.PathValue("room"), r.PathValue("guest"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) discountCodesHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, boost.Codes())
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	handle := func(pattern string, handler http.HandlerFunc) {
		r.Handle(pattern, s.applyMiddlewares(handler, s.loggerMiddleware(), s.recoverMiddleware()))
	}

	handle("POST "+hotelsPrefix, s.createHotelHandler)
	handle("GET "+hotelsPrefix, s.listHotelsHandler)
	handle("GET "+hotelsPrefix+"/{hotel}", s.hotelDetailsHandler)
	handle("DELETE "+hotelsPrefix+"/{hotel}", s.removeHotelHandler)
	handle("PUT "+hotelsPrefix+"/{hotel}/name", s.renameHotelHandler)
	handle("PUT "+hotelsPrefix+"/{hotel}/base-price", s.basePriceHandler)
	handle("PUT "+hotelsPrefix+"/{hotel}/rates/{date}", s.rateHandler)
	handle("GET "+hotelsPrefix+"/{hotel}/availability/{date}", s.availabilityHandler)
	handle("POST "+hotelsPrefix+"/{hotel}/rooms", s.addRoomHandler)
	handle("GET "+hotelsPrefix+"/{hotel}/rooms/{room}", s.roomDetailsHandler)
	handle("DELETE "+hotelsPrefix+"/{hotel}/rooms/{room}", s.removeRoomHandler)
	handle("POST "+hotelsPrefix+"/{hotel}/reservations", s.bookHandler)
	handle("GET "+hotelsPrefix+"/{hotel}/reservations/{guest}", s.findReservationsHandler)
	handle("DELETE "+hotelsPrefix+"/{hotel}/rooms/{room}/reservations/{guest}", s.cancelReservationHandler)
	handle("GET /api/discounts/v1", s.discountCodesHandler)
	handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler)
}
