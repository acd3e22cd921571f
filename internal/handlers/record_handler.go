package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rmacedo/registros-api/internal/middleware"
	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/services"
)

// RequestPtr constrains a pointer to a request struct that can apply
// its validated fields onto a record of type PM.
type RequestPtr[R any, PM any] interface {
	*R
	Apply(rec PM)
}

// RecordHandler serves the record operations for one entity: create,
// update, activation toggle, list-all, list-active, get-by-id and
// export. One generic implementation covers all three entities; only
// the bind function and export row mapping differ.
type RecordHandler[M any, PM models.RecordPtr[M]] struct {
	service *services.RecordService[M, PM]
	export  *services.ExportService
	bind    func(c *gin.Context) (func(PM), error)
	headers []string
	row     func(rec M) []interface{}
}

// NewRecordHandler creates a record handler for one entity
func NewRecordHandler[M any, PM models.RecordPtr[M]](
	service *services.RecordService[M, PM],
	export *services.ExportService,
	bind func(c *gin.Context) (func(PM), error),
	headers []string,
	row func(rec M) []interface{},
) *RecordHandler[M, PM] {
	return &RecordHandler[M, PM]{
		service: service,
		export:  export,
		bind:    bind,
		headers: headers,
		row:     row,
	}
}

// bindRecordRequest builds a bind function for one request type. The
// request struct carries the binding tags; Apply copies the validated
// fields onto the record.
func bindRecordRequest[R any, PM any, PR RequestPtr[R, PM]](key string) func(c *gin.Context) (func(PM), error) {
	return func(c *gin.Context) (func(PM), error) {
		req := PR(new(R))
		if err := BindNestedOrFlat(c, key, req); err != nil {
			return nil, err
		}
		return req.Apply, nil
	}
}

// @Summary Create Record
// @Description Create a new record; the acting user is stamped as created_by
// @Accept json
// @Produce json
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
func (h *RecordHandler[M, PM]) Create(c *gin.Context) {
	apply, err := h.bind(c)
	if err != nil {
		respondError(c, services.NewValidationError(err))
		return
	}

	rec := PM(new(M))
	apply(rec)

	if err := h.service.Create(c.Request.Context(), rec, middleware.ActingUser(c)); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, MsgRecordCreated, rec)
}

// @Summary Update Record
// @Description Replace the record's client-settable fields; active and created_by are untouched
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
func (h *RecordHandler[M, PM]) Update(c *gin.Context) {
	id := pathID(c)

	rec, err := h.service.Update(c.Request.Context(), id, middleware.ActingUser(c), func(rec PM) error {
		apply, err := h.bind(c)
		if err != nil {
			return services.NewValidationError(err)
		}
		apply(rec)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, MsgRecordUpdated, rec)
}

// @Summary Toggle Record Activation
// @Description Flip the record between active and inactive
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
func (h *RecordHandler[M, PM]) ToggleActive(c *gin.Context) {
	rec, err := h.service.ToggleActive(c.Request.Context(), pathID(c), middleware.ActingUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	message := MsgRecordDeactivated
	if rec.IsActive() {
		message = MsgRecordActivated
	}
	respond(c, http.StatusOK, message, rec)
}

// @Summary List Records
// @Description List every record; an empty result set is a 404
// @Produce json
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
func (h *RecordHandler[M, PM]) Index(c *gin.Context) {
	recs, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, MsgRecordsReturned, recs)
}

// @Summary List Active Records
// @Description List records with active = true; an empty result set is a 404
// @Produce json
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
func (h *RecordHandler[M, PM]) Active(c *gin.Context) {
	recs, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, MsgRecordsReturned, recs)
}

// @Summary Get Record
// @Description Get a record by ID
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
func (h *RecordHandler[M, PM]) Show(c *gin.Context) {
	rec, err := h.service.FindByID(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, MsgRecordReturned, rec)
}

// @Summary Export Records
// @Description Download every record as CSV or XLSX
// @Produce text/csv
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
func (h *RecordHandler[M, PM]) Export(c *gin.Context) {
	recs, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	rows := make([][]interface{}, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, h.row(rec))
	}

	var data []byte
	var filename, contentType string

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, filename, err = h.export.RecordsCSV(h.service.Entity(), h.headers, rows)
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = h.export.RecordsXLSX(h.service.Entity(), h.headers, rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		respondError(c, services.NewValidationError(errFormat))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

func pathID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id)
}
