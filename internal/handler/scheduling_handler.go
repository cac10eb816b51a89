package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/middleware"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/service"
	"github.com/labstack/echo/v4"
)

type SchedulingHandler struct {
	svc service.SchedulingService
}

func NewSchedulingHandler(svc service.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{svc: svc}
}

func (h *SchedulingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/vendors", h.ListVendors)
	g.GET("/availability", h.GetAvailability)
	g.GET("/calendar", h.GetCalendar)
	g.POST("/tickets", h.CreateTicket)
	g.GET("/tickets", h.ListTickets)
}

func (h *SchedulingHandler) ListVendors(c echo.Context) error {
	vendors := h.svc.ListVendors(c.Request().Context())

	resp := make([]dto.VendorResponse, len(vendors))
	for i, v := range vendors {
		resp[i] = dto.ToVendorResponse(v)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SchedulingHandler) GetAvailability(c echo.Context) error {
	q, err := parseAvailabilityQuery(c)
	if err != nil {
		return err
	}

	res, err := h.svc.Availability(c.Request().Context(), q)
	if err != nil {
		return availabilityError(err)
	}

	resp := dto.AvailabilityResponse{
		Vendors: res.Vendors,
		Start:   res.Start.Format(dto.DateLayout),
		Days:    res.Days,
		Dates:   dto.ToDateStrings(res.Dates),
	}
	if res.Empty() {
		resp.Message = service.ErrNoAvailability.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SchedulingHandler) GetCalendar(c echo.Context) error {
	q, err := parseAvailabilityQuery(c)
	if err != nil {
		return err
	}

	days, err := h.svc.Calendar(c.Request().Context(), q)
	if err != nil {
		return availabilityError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCalendarResponse(days))
}

func (h *SchedulingHandler) CreateTicket(c echo.Context) error {
	var req dto.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var serviceDate *time.Time
	if s := strings.TrimSpace(req.ServiceDate); s != "" {
		d, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "service_date must be YYYY-MM-DD")
		}
		serviceDate = &d
	}

	ticket, err := h.svc.CreateTicket(c.Request().Context(), middleware.SessionID(c), service.TicketRequest{
		BoatName:    req.BoatName,
		BoatLength:  req.BoatLength,
		StorageType: models.StorageType(strings.TrimSpace(req.StorageType)),
		StorageID:   req.StorageID,
		Vendors:     req.Vendors,
		ServiceDate: serviceDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAvailability):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).SetInternal(err)
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *SchedulingHandler) ListTickets(c echo.Context) error {
	tickets := h.svc.ListTickets(c.Request().Context(), middleware.SessionID(c))

	resp := make([]dto.TicketResponse, len(tickets))
	for i := range tickets {
		resp[i] = dto.ToTicketResponse(&tickets[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// parseAvailabilityQuery accepts repeated ?vendor= params and/or a
// comma-separated ?vendors= list.
func parseAvailabilityQuery(c echo.Context) (service.AvailabilityQuery, error) {
	var q service.AvailabilityQuery

	params := c.QueryParams()
	q.Vendors = append(q.Vendors, params["vendor"]...)
	for _, list := range params["vendors"] {
		q.Vendors = append(q.Vendors, strings.Split(list, ",")...)
	}

	if s := c.QueryParam("start"); s != "" {
		start, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "start must be YYYY-MM-DD")
		}
		q.Start = &start
	}

	if s := c.QueryParam("days"); s != "" {
		days, err := strconv.Atoi(s)
		if err != nil || days < 1 {
			return q, echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		q.Days = days
	}
	return q, nil
}

func availabilityError(err error) error {
	switch {
	case errors.Is(err, service.ErrVendorNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
