package utils

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"net/http"
	"strings"

	"github.com/gorilla/schema"
)

const multipartMemory = 32 << 20

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag("form")
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// DecodeForm parses the submitted form, multipart bodies included, into dst
// using its form tags. Nested slices use the medications.0.dosage notation.
func DecodeForm(r *http.Request, dst interface{}) error {
	if err := parseForm(r); err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	if err := formDecoder.Decode(dst, r.Form); err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	return nil
}

func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}

// FormValue returns a trimmed form or query value.
func FormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func IsHXRequest(r *http.Request) bool {
	return r.Header.Get(constvars.HeaderHXRequest) == "true"
}
