package facilities

import (
	"context"
	"io"
)

// Lister fetches one page of a resource.
type Lister interface {
	List(ctx context.Context, req ListRequest) (Page, error)
}

// JSONSubmitter sends JSON mutations.
type JSONSubmitter interface {
	PostJSON(ctx context.Context, path string, payload, target any) error
	PutJSON(ctx context.Context, path string, payload, target any) error
}

// FormSubmitter sends multipart mutations.
type FormSubmitter interface {
	SubmitForm(ctx context.Context, method, path string, form *Form, target any) error
}

// Downloader streams binary documents.
type Downloader interface {
	Download(ctx context.Context, path string, query *Query, w io.Writer) (int64, error)
}

// API is a convenience union for code that needs every transport call.
type API interface {
	Lister
	JSONSubmitter
	FormSubmitter
	Downloader
}

var _ API = (*Client)(nil)
