package response

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"

	"cardex/shared/constant"
	"cardex/shared/failure"
	"cardex/shared/logger"
)

// Message is the envelope for operations that return no data. Every response
// body carries the success flag so the dashboard can branch on it without
// inspecting status codes.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WithMessage sends a success response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: true, Message: message})
}

// WithJSON sends the JSON payload verbatim; the payload type is expected to
// carry its own success flag.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithError sends an error response. Internal errors are masked with a
// generic message so storage details never reach the caller.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	errMsg := err.Error()
	if code == http.StatusInternalServerError {
		errMsg = constant.ResponseErrorInternal
	}

	response(writer, code, Error{Success: false, Message: errMsg})
}

// WithCSV sends rows as a CSV attachment.
func WithCSV(writer http.ResponseWriter, fileName string, rows [][]string) {
	buf := &bytes.Buffer{}

	csvWriter := csv.NewWriter(buf)
	if err := csvWriter.WriteAll(rows); err != nil {
		logger.ErrorWithStack(err)
		WithError(writer, failure.InternalError(err))

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(buf.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Success: false, Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Success: false, Message: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
