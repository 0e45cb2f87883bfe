package form

import (
	"net/http"

	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	// Forms carry the CSRF token and submit buttons next to the payload
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	return d
}

// Decode parses the request form into dst using `schema` struct tags
func Decode(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return decoder.Decode(dst, r.PostForm)
}

// DecodeQuery decodes the URL query of r into dst
func DecodeQuery(r *http.Request, dst interface{}) error {
	return decoder.Decode(dst, r.URL.Query())
}
