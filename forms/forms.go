// Package forms flattens submitted form data into plain values and handles
// the typed coercions (checkbox, number) that happen before schema
// validation. Coercion failures are collected as field errors so the user
// sees every bad field at once.
package forms

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"salonbook-backend/apperrors"
)

// Values is a flattened form: a key submitted once is a string, a repeated
// key is a []string.
type Values map[string]any

// Parse reads the request body as a form submission and flattens it.
func Parse(r *http.Request) (Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, apperrors.InvalidInput("Malformed form submission")
	}
	return Flatten(r.PostForm), nil
}

func Flatten(src url.Values) Values {
	out := make(Values, len(src))
	for key, vals := range src {
		switch len(vals) {
		case 0:
		case 1:
			out[key] = vals[0]
		default:
			out[key] = append([]string(nil), vals...)
		}
	}
	return out
}

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Get returns the scalar value for key, or the first value of a repeated key.
func (v Values) Get(key string) (string, bool) {
	raw, ok := v[key]
	if !ok {
		return "", false
	}
	switch val := raw.(type) {
	case string:
		return val, true
	case []string:
		if len(val) > 0 {
			return val[0], true
		}
	}
	return "", false
}

// Decoder builds typed input values out of a flattened form, accumulating
// per-field coercion errors.
type Decoder struct {
	vals Values
	errs apperrors.FieldErrors
}

func NewDecoder(vals Values) *Decoder {
	return &Decoder{vals: vals, errs: apperrors.FieldErrors{}}
}

func (d *Decoder) String(key string) string {
	s, _ := d.vals.Get(key)
	return s
}

func (d *Decoder) Trimmed(key string) string {
	return strings.TrimSpace(d.String(key))
}

// Bool decodes a checkbox field. An absent key yields def; "on", "true" and
// "1" are true; "off", "false", "0" and the empty string are false.
func (d *Decoder) Bool(key string, def bool) bool {
	s, ok := d.vals.Get(key)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1":
		return true
	case "off", "false", "0", "":
		return false
	}
	return def
}

// Int decodes a whole number; the empty string decodes to zero and leaves
// required-ness to the validation layer.
func (d *Decoder) Int(key string) int {
	s := d.Trimmed(key)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		d.errs.Add(key, "must be a whole number")
		return 0
	}
	return n
}

func (d *Decoder) Float(key string) float64 {
	s := d.Trimmed(key)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.errs.Add(key, "must be a number")
		return 0
	}
	return f
}

// OptionalInt decodes to nil when the field is absent or empty.
func (d *Decoder) OptionalInt(key string) *int {
	s := d.Trimmed(key)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		d.errs.Add(key, "must be a whole number")
		return nil
	}
	return &n
}

// OptionalFloat decodes to nil when the field is absent or empty.
func (d *Decoder) OptionalFloat(key string) *float64 {
	s := d.Trimmed(key)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.errs.Add(key, "must be a number")
		return nil
	}
	return &f
}

// Err returns a validation error carrying every coercion failure, or nil.
func (d *Decoder) Err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return apperrors.Validation(d.errs)
}
