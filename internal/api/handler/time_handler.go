package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockline/timetrack-api/internal/core/ports"
)

// TimeHandler handles HTTP requests for time entry operations.
type TimeHandler struct {
	service ports.TimeService
}

func NewTimeHandler(service ports.TimeService) *TimeHandler {
	return &TimeHandler{service: service}
}

func (h *TimeHandler) rangeInput(c echo.Context) (ports.TimeRangeInput, error) {
	actor, err := ctxActor(c)
	if err != nil {
		return ports.TimeRangeInput{}, err
	}

	var req listTimeRequest
	if err := c.Bind(&req); err != nil {
		return ports.TimeRangeInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return ports.TimeRangeInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ports.TimeRangeInput{Actor: actor, From: req.From, To: req.To}, nil
}

// List handles GET /v1/time.
//
// @Summary      List time entries of every user the actor outranks
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      200   {array}   timeEntryItemResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/time [get]
func (h *TimeHandler) List(c echo.Context) error {
	in, err := h.rangeInput(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTimeEntryItems(items))
}

// Export handles GET /v1/time/export.
//
// @Summary      Export visible time entries as a PDF
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      201   {object}  exportResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/time/export [get]
func (h *TimeHandler) Export(c echo.Context) error {
	in, err := h.rangeInput(c)
	if err != nil {
		return err
	}

	file, err := h.service.Export(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toExportResponse(file))
}

// ListMine handles GET /v1/time/me.
//
// @Summary      List the actor's own time entries
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      200   {array}   timeEntryItemResponse
// @Failure      401   {object}  map[string]string
// @Router       /v1/time/me [get]
func (h *TimeHandler) ListMine(c echo.Context) error {
	in, err := h.rangeInput(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListMine(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTimeEntryItems(items))
}

// ExportMine handles GET /v1/time/me/export.
//
// @Summary      Export the actor's own time entries as a PDF
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      201   {object}  exportResponse
// @Failure      401   {object}  map[string]string
// @Router       /v1/time/me/export [get]
func (h *TimeHandler) ExportMine(c echo.Context) error {
	in, err := h.rangeInput(c)
	if err != nil {
		return err
	}

	file, err := h.service.ExportMine(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toExportResponse(file))
}

// Get handles GET /v1/time/:id.
//
// @Summary      Get a time entry by id
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Time entry id"
// @Success      200  {object}  timeEntryResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/time/{id} [get]
func (h *TimeHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTimeEntryResponse(entry))
}

// Create handles POST /v1/time.
//
// @Summary      Create a time entry
// @Tags         time
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTimeRequest  true  "Entry details"
// @Success      201   {object}  timeEntryResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/time [post]
func (h *TimeHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), ports.CreateTimeInput{
		Actor:  actor,
		Date:   req.Date,
		Length: req.Length,
		Note:   req.Note,
		UserID: req.UserID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTimeEntryResponse(entry))
}

// Update handles PATCH /v1/time/:id.
//
// @Summary      Update a time entry
// @Tags         time
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Time entry id"
// @Param        body  body      updateTimeRequest  true  "Fields to change"
// @Success      200   {object}  timeEntryResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/time/{id} [patch]
func (h *TimeHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), ports.UpdateTimeInput{
		Actor:   actor,
		EntryID: c.Param("id"),
		Date:    req.Date,
		Length:  req.Length,
		Note:    req.Note,
		UserID:  req.UserID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTimeEntryResponse(entry))
}

// Delete handles DELETE /v1/time/:id.
//
// @Summary      Delete a time entry
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Time entry id"
// @Success      200  {object}  deletedResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/time/{id} [delete]
func (h *TimeHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletedResponse{ID: id})
}
