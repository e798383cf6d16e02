package telegram

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Params is an ordered set of text form fields. Order of Set calls is the
// order fields appear on the wire.
type Params []param

type param struct {
	name  string
	value string
}

// Set appends a field, dropping it entirely when the value is empty
func (p *Params) Set(name, value string) {
	if value == "" {
		return
	}
	*p = append(*p, param{name, value})
}

// File is a single binary attachment
type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// encodeForm builds a multipart/form-data body with a fresh boundary. Text
// parts are declared text/plain; charset=utf-8, the file part keeps its own
// content type and raw bytes.
func encodeForm(params Params, file *File) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, p := range params {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(p.name)))
		header.Set("Content-Type", "text/plain; charset=utf-8")
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write([]byte(p.value)); err != nil {
			return nil, "", err
		}
	}

	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(file.Field), escapeQuotes(file.Name)))
		header.Set("Content-Type", file.ContentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	// writes the trailing boundary terminator
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
