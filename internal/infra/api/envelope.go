package api

import (
	"bytes"
	"encoding/json"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"
)

// Envelope is the normalized form of a response body.
type Envelope struct {
	Data    json.RawMessage
	Meta    *entity.PageMeta
	Message string
	Errors  []domainerrors.FieldError

	// Failed is set when an envelope arrived with success=false.
	Failed bool
}

type wireEnvelope struct {
	Success *bool            `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Meta    *entity.PageMeta `json:"meta"`
	Errors  json.RawMessage  `json:"errors"`
	Error   json.RawMessage  `json:"error"`
}

// Unwrap normalizes raw. An object with a "success" key is an envelope and
// its data field is returned; any other body is returned as the data itself.
func Unwrap(raw []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &Envelope{}, nil
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("response body is not valid JSON")
	}
	if trimmed[0] != '{' {
		return &Envelope{Data: json.RawMessage(trimmed)}, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keys); err != nil {
		return nil, errors.Wrap(err, "decode response object")
	}
	if _, ok := keys["success"]; !ok {
		return &Envelope{Data: json.RawMessage(trimmed)}, nil
	}

	var wire wireEnvelope
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, errors.Wrap(err, "decode envelope")
	}

	return &Envelope{
		Data:    wire.Data,
		Meta:    wire.Meta,
		Message: wire.Message,
		Errors:  parseFieldErrors(wire.Errors),
		Failed:  wire.Success != nil && !*wire.Success,
	}, nil
}

// parseErrorBody pulls the message and field errors from a non-2xx body.
func parseErrorBody(raw []byte) (string, []domainerrors.FieldError) {
	var wire wireEnvelope
	if err := json.Unmarshal(bytes.TrimSpace(raw), &wire); err != nil {
		return "", nil
	}

	message := wire.Message
	if message == "" && len(wire.Error) > 0 {
		var s string
		if json.Unmarshal(wire.Error, &s) == nil {
			message = s
		} else {
			var obj struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(wire.Error, &obj) == nil {
				message = obj.Message
			}
		}
	}

	return message, parseFieldErrors(wire.Errors)
}

// parseFieldErrors accepts [{field, message}] and plain string lists.
func parseFieldErrors(raw json.RawMessage) []domainerrors.FieldError {
	if isEmptyJSON(raw) {
		return nil
	}

	var fields []domainerrors.FieldError
	if json.Unmarshal(raw, &fields) == nil {
		return fields
	}

	var messages []string
	if json.Unmarshal(raw, &messages) == nil {
		fields = make([]domainerrors.FieldError, 0, len(messages))
		for _, m := range messages {
			fields = append(fields, domainerrors.FieldError{Message: m})
		}

		return fields
	}

	return nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
