package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmacedo/registros-api/internal/services"
)

// Envelope is the fixed-shape wrapper applied to every response,
// success or failure.
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// User-facing response messages
const (
	MsgRecordCreated     = "Registro cadastrado com sucesso!"
	MsgRecordUpdated     = "Registro atualizado com sucesso"
	MsgRecordActivated   = "Registro ativado com sucesso"
	MsgRecordDeactivated = "Registro inativado com sucesso"
	MsgRecordsReturned   = "Registros retornados com sucesso"
	MsgRecordReturned    = "Registro retornado com sucesso"
)

// respond writes a success envelope
func respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{Status: true, Message: message, Data: data})
}

// respondError translates an error into its HTTP status and writes a
// failure envelope. All error-to-status mapping lives here: validation
// failures map to 400, missing records and empty result sets to 404,
// bad credentials to 401, anything else to 500. The envelope carries
// the error message, never a stack trace.
func respondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError

	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		code = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNoRecords):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	}

	c.JSON(code, Envelope{Status: false, Message: err.Error()})
}
