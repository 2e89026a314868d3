package facilities

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Attachment is a file part sent under `attachfiles[]`.
type Attachment struct {
	Name   string
	Reader io.Reader
}

// Form collects multipart fields using the `resource[field]` naming convention.
type Form struct {
	resource    string
	fields      map[string]string
	order       []string
	attachments []Attachment
}

// NewForm starts a form namespaced under resource (e.g. "pantry").
func NewForm(resource string) *Form {
	return &Form{resource: resource, fields: map[string]string{}}
}

// Set adds resource[field]=value.
func (f *Form) Set(field, value string) *Form {
	key := f.key(field)
	if _, exists := f.fields[key]; !exists {
		f.order = append(f.order, key)
	}
	f.fields[key] = value
	return f
}

// Attach appends a file under attachfiles[].
func (f *Form) Attach(name string, r io.Reader) *Form {
	f.attachments = append(f.attachments, Attachment{Name: name, Reader: r})
	return f
}

// Fields returns a copy of the encoded field map.
func (f *Form) Fields() map[string]string {
	out := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}
	return out
}

// Attachments returns the attached file names.
func (f *Form) Attachments() []string {
	names := make([]string, len(f.attachments))
	for i, att := range f.attachments {
		names[i] = att.Name
	}
	return names
}

// Encode renders the multipart body and its content type.
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, key := range f.order {
		if err := writer.WriteField(key, f.fields[key]); err != nil {
			return nil, "", fmt.Errorf("facilities: write field %s: %w", key, err)
		}
	}
	for _, att := range f.attachments {
		part, err := writer.CreateFormFile("attachfiles[]", att.Name)
		if err != nil {
			return nil, "", fmt.Errorf("facilities: attach %s: %w", att.Name, err)
		}
		if att.Reader != nil {
			if _, err := io.Copy(part, att.Reader); err != nil {
				return nil, "", fmt.Errorf("facilities: copy %s: %w", att.Name, err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("facilities: close form: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func (f *Form) key(field string) string {
	if f.resource == "" {
		return field
	}
	return fmt.Sprintf("%s[%s]", f.resource, field)
}
