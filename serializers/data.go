package serializers

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
)

// Data is a decoded JSON object keyed by field name.
type Data map[string]json.RawMessage

// Options controls a single Validate call.
type Options struct {
	// Partial validates only the fields present in the payload.
	Partial bool
	// InstanceID is the id of the record being updated, if any.
	InstanceID string
	Translator ut.Translator
}

// ParseData decodes a request body. An empty body is an empty object. The
// error is a *ParseError for malformed JSON and a *ValidationError when the
// document is not an object.
func ParseData(body []byte, trans ut.Translator) (Data, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Data{}, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Detail: Message(trans, msgParseError, err.Error())}
	}

	if kind := jsonKind(raw); kind != "dict" {
		verr := newValidationError()
		verr.Add(NonFieldErrorsKey, Message(trans, msgNotObject, kind))
		return nil, verr
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &ParseError{Detail: Message(trans, msgParseError, err.Error())}
	}
	return data, nil
}

func jsonKind(raw json.RawMessage) string {
	switch raw[0] {
	case '{':
		return "dict"
	case '[':
		return "list"
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case 'n':
		return "NoneType"
	}
	if bytes.ContainsAny(raw, ".eE") {
		return "float"
	}
	return "int"
}

// fieldReader decodes declared fields out of Data, recording type errors and
// which struct fields must go through rule validation.
type fieldReader struct {
	data    Data
	partial bool
	trans   ut.Translator
	errs    *ValidationError
	checked []string
}

func newFieldReader(data Data, opts Options) *fieldReader {
	return &fieldReader{
		data:    data,
		partial: opts.Partial,
		trans:   opts.Translator,
		errs:    newValidationError(),
	}
}

// raw returns the field's raw value, or nil when the field is absent or null.
// Absent fields are still checked in full mode so required rules fire.
func (r *fieldReader) raw(key, structField string) json.RawMessage {
	raw, ok := r.data[key]
	if !ok {
		if !r.partial {
			r.checked = append(r.checked, structField)
		}
		return nil
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		r.errs.Add(key, Message(r.trans, msgNull))
		return nil
	}
	return raw
}

func (r *fieldReader) string(key, structField string, trim bool) *string {
	raw := r.raw(key, structField)
	if raw == nil {
		return nil
	}
	s, ok := coerceString(raw)
	if !ok {
		r.errs.Add(key, Message(r.trans, msgInvalidString))
		return nil
	}
	if trim {
		s = strings.TrimSpace(s)
	}
	r.checked = append(r.checked, structField)
	return &s
}

func (r *fieldReader) integer(key, structField string) *int {
	raw := r.raw(key, structField)
	if raw == nil {
		return nil
	}
	n, ok := coerceInteger(raw)
	if !ok {
		r.errs.Add(key, Message(r.trans, msgInvalidInteger))
		return nil
	}
	r.checked = append(r.checked, structField)
	return &n
}

// coerceString accepts JSON strings and numbers; numbers keep their literal text.
func coerceString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	switch kind := jsonKind(raw); kind {
	case "str":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case "int", "float":
		return string(raw), true
	}
	return "", false
}

// wholeDecimal matches a fractional part that is all zeros, as in "3.0".
var wholeDecimal = regexp.MustCompile(`\.0*\s*$`)

// coerceInteger accepts integers, whole-valued decimals and strings holding
// either, so 3, 3.0, "3" and " 3.00 " all read as 3.
func coerceInteger(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	var text string
	switch jsonKind(raw) {
	case "str":
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
	case "int", "float":
		text = string(raw)
	default:
		return 0, false
	}
	text = wholeDecimal.ReplaceAllString(strings.TrimSpace(text), "")
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
