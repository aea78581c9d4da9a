package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// StatusSuccess is the only status value that carries label data.
const StatusSuccess = "success"

const (
	defaultErrorType    = "Unknown Error"
	defaultErrorMessage = "No message provided"
)

// LabelKind tells which variant of a successful response was decoded.
type LabelKind string

const (
	LabelKindPDF LabelKind = "pdf"
	LabelKindZPL LabelKind = "zpl"
)

// LabelResponse is a successful answer of the order endpoint. Exactly one of
// PDF and Labels is set, as reported by Kind.
type LabelResponse struct {
	Kind   LabelKind
	PDF    *PDFLabel
	Labels []ZPLLabel
}

// PDFLabel is a single base64 encoded PDF covering the whole order.
type PDFLabel struct {
	Data      string
	ParcelRef string
}

// ZPLLabel is the label of one parcel in Zebra Programming Language.
type ZPLLabel struct {
	ZPL        string
	ShipperRef string
	Number     string
}

// Ref returns the name used for the label file: the shipper reference when
// present, the parcel number otherwise.
func (l ZPLLabel) Ref() string {
	if l.ShipperRef != "" {
		return l.ShipperRef
	}
	return l.Number
}

// APIError is the error variant of a response.
type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type envelope struct {
	Status string          `json:"status"`
	Error  json.RawMessage `json:"error"`
	Data   json.RawMessage `json:"data"`
}

type dataPayload struct {
	PDF       *string      `json:"pdf"`
	ParcelRef refValue     `json:"parcel_ref"`
	Labels    []zplPayload `json:"labels"`
}

type zplPayload struct {
	ZPL        string      `json:"zpl"`
	ShipperRef fallbackRef `json:"shipper_ref"`
	Number     fallbackRef `json:"number"`
}

// refValue accepts references sent either as JSON strings or numbers.
type refValue string

func (r *refValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = refValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("reference must be a string or a number: %w", err)
	}
	*r = refValue(n.String())
	return nil
}

// fallbackRef is a label reference where false and zero count as absent, so
// the file name falls through to the next reference.
type fallbackRef string

func (r *fallbackRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("false")):
		*r = ""
		return nil
	case bytes.Equal(b, []byte("true")):
		*r = "true"
		return nil
	}
	var v refValue
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	if len(b) > 0 && b[0] != '"' {
		if f, err := strconv.ParseFloat(string(v), 64); err == nil && f == 0 {
			v = ""
		}
	}
	*r = fallbackRef(v)
	return nil
}

const dataSchemaJSON = `{
  "type": "object",
  "properties": {
    "pdf":        {"type": "string"},
    "parcel_ref": {"type": ["string", "number"]},
    "labels": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["zpl"],
        "properties": {
          "zpl":         {"type": "string"},
          "shipper_ref": {"type": ["string", "number", "boolean", "null"]},
          "number":      {"type": ["string", "number", "boolean", "null"]}
        }
      }
    }
  },
  "dependencies": {"pdf": ["parcel_ref"]}
}`

var dataSchema = mustCompileSchema(dataSchemaJSON)

func mustCompileSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compiling response schema: %v", err))
	}
	return s
}

// DecodeLabelResponse interprets the body of an order response.
// A non-success status, a data object failing schema validation, or a success
// without PDF or ZPL labels all yield a *LabelGenerationError.
func DecodeLabelResponse(body []byte) (LabelResponse, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return LabelResponse{}, &LabelGenerationError{
			Message: fmt.Sprintf("malformed API response: %v", err),
		}
	}

	if env.Status != StatusSuccess {
		apiErr, detail := decodeAPIError(env.Error)
		return LabelResponse{}, &LabelGenerationError{Type: apiErr.Type, Message: apiErr.Message, Detail: detail}
	}

	data := env.Data
	if isJSONNull(data) {
		data = json.RawMessage("{}")
	}

	result, err := dataSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return LabelResponse{}, &LabelGenerationError{
			Message: fmt.Sprintf("malformed API response data: %v", err),
		}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return LabelResponse{}, &LabelGenerationError{
			Message: "invalid API response data: " + strings.Join(msgs, "; "),
		}
	}

	var payload dataPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return LabelResponse{}, &LabelGenerationError{
			Message: fmt.Sprintf("malformed API response data: %v", err),
		}
	}

	switch {
	case payload.PDF != nil:
		return LabelResponse{
			Kind: LabelKindPDF,
			PDF:  &PDFLabel{Data: *payload.PDF, ParcelRef: string(payload.ParcelRef)},
		}, nil
	case len(payload.Labels) > 0:
		labels := make([]ZPLLabel, 0, len(payload.Labels))
		for _, l := range payload.Labels {
			labels = append(labels, ZPLLabel{
				ZPL:        l.ZPL,
				ShipperRef: string(l.ShipperRef),
				Number:     string(l.Number),
			})
		}
		return LabelResponse{Kind: LabelKindZPL, Labels: labels}, nil
	default:
		return LabelResponse{}, &LabelGenerationError{Message: NoLabelDataMessage}
	}
}

// decodeAPIError fills in the defaults. A malformed error object is reported
// with the defaults too; the decode error is returned for diagnostics.
func decodeAPIError(raw json.RawMessage) (APIError, error) {
	var (
		apiErr APIError
		detail error
	)
	if !isJSONNull(raw) {
		if err := json.Unmarshal(raw, &apiErr); err != nil {
			apiErr = APIError{}
			detail = fmt.Errorf("decoding error object: %w", err)
		}
	}
	if apiErr.Type == "" {
		apiErr.Type = defaultErrorType
	}
	if apiErr.Message == "" {
		apiErr.Message = defaultErrorMessage
	}
	return apiErr, detail
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
