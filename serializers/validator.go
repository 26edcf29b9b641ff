// Package serializers validates request payloads for the user and room
// endpoints and maps stored entities back to their wire representation.
package serializers

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"room-server/entities"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Validator holds the field rules shared by every serializer and one
// translator per supported language.
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
	fallback ut.Translator
}

// NewValidator prepares the rule set and message catalogs. defaultLocale is
// used when a request names no supported language; unknown values fall back
// to English.
func NewValidator(defaultLocale string) (*Validator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("gender", validGender); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("passwordlen", passwordLength); err != nil {
		return nil, err
	}

	english := en.New()
	uni := ut.New(english, english, ja.New())
	for _, loc := range []locales.Translator{english, ja.New()} {
		trans, _ := uni.GetTranslator(loc.Locale())
		if err := registerCatalog(v, trans, catalogs[loc.Locale()]); err != nil {
			return nil, fmt.Errorf("register %s messages: %w", loc.Locale(), err)
		}
	}

	fallback, ok := uni.GetTranslator(strings.ToLower(defaultLocale))
	if !ok {
		fallback, _ = uni.GetTranslator("en")
	}

	return &Validator{validate: v, uni: uni, fallback: fallback}, nil
}

func registerCatalog(v *validator.Validate, trans ut.Translator, catalog map[string]string) error {
	for key, text := range catalog {
		if err := trans.Add(key, text, true); err != nil {
			return err
		}
	}

	noop := func(ut.Translator) error { return nil }
	simple := func(tr ut.Translator, fe validator.FieldError) string {
		return Message(tr, fe.Tag())
	}
	withParam := func(tr ut.Translator, fe validator.FieldError) string {
		return Message(tr, fe.Tag(), fe.Param())
	}
	withValue := func(tr ut.Translator, fe validator.FieldError) string {
		return Message(tr, fe.Tag(), valueString(fe.Value()))
	}

	translations := map[string]validator.TranslationFunc{
		msgRequired:       simple,
		msgNotBlank:       simple,
		msgDate:           simple,
		msgPasswordLength: simple,
		msgMaxLength:      withParam,
		msgMinValue:       withParam,
		msgChoice:         withValue,
	}
	for tag, fn := range translations {
		if err := v.RegisterTranslation(tag, trans, noop, fn); err != nil {
			return err
		}
	}
	return nil
}

// Translator picks the catalog for an Accept-Language header value.
func (v *Validator) Translator(acceptLanguage string) ut.Translator {
	for _, tag := range preferredLanguages(acceptLanguage) {
		if trans, ok := v.uni.GetTranslator(tag); ok {
			return trans
		}
	}
	return v.fallback
}

// Message renders key from the translator's catalog, returning the key itself
// if the catalog has no such entry.
func Message(trans ut.Translator, key string, params ...string) string {
	msg, err := trans.T(key, params...)
	if err != nil {
		return key
	}
	return msg
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validGender(fl validator.FieldLevel) bool {
	return entities.Gender(fl.Field().String()).Valid()
}

// bcrypt ignores input past 72 bytes.
func passwordLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= 72
}

func valueString(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	return fmt.Sprint(rv.Interface())
}

// preferredLanguages returns the primary subtags of an Accept-Language value
// ordered by quality.
func preferredLanguages(header string) []string {
	type lang struct {
		tag string
		q   float64
	}
	var langs []lang
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		q := 1.0
		if i := strings.Index(part, ";"); i >= 0 {
			params := part[i+1:]
			part = strings.TrimSpace(part[:i])
			if qs, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
				if parsed, err := strconv.ParseFloat(qs, 64); err == nil {
					q = parsed
				}
			}
		}
		if q <= 0 || part == "*" {
			continue
		}
		primary, _, _ := strings.Cut(part, "-")
		primary, _, _ = strings.Cut(primary, "_")
		langs = append(langs, lang{tag: strings.ToLower(primary), q: q})
	}
	sort.SliceStable(langs, func(i, j int) bool { return langs[i].q > langs[j].q })

	tags := make([]string, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, l.tag)
	}
	return tags
}
