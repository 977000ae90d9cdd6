package gateway

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"
)

// requestEncodings are tried in order when decoding the smart query request
// path parameter.
var requestEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// decodeSmartQueryRequest turns the base64 request path parameter into the
// JSON query message forwarded to the contract.
func decodeSmartQueryRequest(encoded string) (json.RawMessage, error) {
	decoded, err := decodeBase64(encoded)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(decoded) {
		return nil, ErrGatewayDecodeRequest.Wrap("request is not valid UTF-8")
	}

	if !json.Valid(decoded) {
		return nil, ErrGatewayDecodeRequest.Wrapf("request is not valid JSON: %q", decoded)
	}

	return json.RawMessage(decoded), nil
}

func decodeBase64(encoded string) ([]byte, error) {
	var firstErr error
	for _, encoding := range requestEncodings {
		decoded, err := encoding.DecodeString(encoded)
		if err == nil {
			return decoded, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, ErrGatewayDecodeRequest.Wrapf("request is not valid base64: %s", firstErr)
}

// extractRequestID returns the request_id field of a contract query result.
// A nil return with a nil error means the field is absent.
func extractRequestID(result json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(result, &fields); err != nil || fields == nil {
		return nil, ErrGatewayUnexpectedQueryResult.Wrapf("expected a JSON object, got %q", result)
	}

	return fields["request_id"], nil
}
