package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
)

const (
	contentTypeJSON  = "application/json; charset=utf-8"
	contentTypePlain = "text/plain; charset=utf-8"
)

// replyWithError is the single place where handler errors become HTTP
// responses. Every error is logged, counted and answered with a 500 whose
// plain-text body is the error string.
func (gw *gatewayServer) replyWithError(
	writer http.ResponseWriter,
	request *http.Request,
	route string,
	err error,
) {
	kind := errorKind(err)
	requestsErrorsTotalCounter.With("route", route, "kind", kind).Add(1)

	gw.logger.Error().
		Str("route", route).
		Str("path", request.URL.Path).
		Str("kind", kind).
		Err(err).
		Msg("failed handling request")

	writer.Header().Set("Content-Type", contentTypePlain)
	writer.Header().Set("X-Content-Type-Options", "nosniff")
	writer.WriteHeader(http.StatusInternalServerError)

	if _, writeErr := writer.Write([]byte(err.Error())); writeErr != nil {
		gw.logger.Error().Err(writeErr).Msg("failed writing error response")
	}
}

// replyWithJSON writes a 200 response with res encoded as JSON. The body is
// fully encoded before any header is written.
func (gw *gatewayServer) replyWithJSON(
	writer http.ResponseWriter,
	request *http.Request,
	route string,
	res any,
) {
	resBz, err := json.Marshal(res)
	if err != nil {
		gw.replyWithError(writer, request, route, ErrGatewayEncodeResponse.Wrap(err.Error()))
		return
	}

	writer.Header().Set("Content-Type", contentTypeJSON)
	writer.WriteHeader(http.StatusOK)

	if _, err = writer.Write(resBz); err != nil {
		gw.logger.Error().Err(err).Msg("failed writing response")
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrGatewayDecodeRequest):
		return errorKindDecode
	case errors.Is(err, ErrGatewayEncodeResponse):
		return errorKindEncode
	default:
		return errorKindUpstream
	}
}
