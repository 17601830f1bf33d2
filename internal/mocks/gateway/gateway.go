package gateway

// Package gateway contains a hand-written test double for the outbound
// gateway port.

import (
	"context"
	"net/url"

	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

var _ ports.Gateway = (*MockGateway)(nil)

// Call records one request that passed through the double.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   ports.MultipartForm
}

// MockGateway is a func-field double for ports.Gateway. Unset func fields
// report a gateway error so tests fail loudly on unexpected calls unless
// they opt in.
type MockGateway struct {
	GetFunc    func(ctx context.Context, path string, query url.Values, out any) error
	PostFunc   func(ctx context.Context, path string, body, out any) error
	PutFunc    func(ctx context.Context, path string, body, out any) error
	DeleteFunc func(ctx context.Context, path string) error
	UploadFunc func(ctx context.Context, path string, form ports.MultipartForm, out any) error

	// Calls records every request in order.
	Calls []Call
}

func (m *MockGateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	m.Calls = append(m.Calls, Call{Method: "GET", Path: path, Query: query})
	if m.GetFunc != nil {
		return m.GetFunc(ctx, path, query, out)
	}
	return apperrors.Gateway("unexpected GET " + path)
}

func (m *MockGateway) Post(ctx context.Context, path string, body, out any) error {
	m.Calls = append(m.Calls, Call{Method: "POST", Path: path, Body: body})
	if m.PostFunc != nil {
		return m.PostFunc(ctx, path, body, out)
	}
	return apperrors.Gateway("unexpected POST " + path)
}

func (m *MockGateway) Put(ctx context.Context, path string, body, out any) error {
	m.Calls = append(m.Calls, Call{Method: "PUT", Path: path, Body: body})
	if m.PutFunc != nil {
		return m.PutFunc(ctx, path, body, out)
	}
	return apperrors.Gateway("unexpected PUT " + path)
}

func (m *MockGateway) Delete(ctx context.Context, path string) error {
	m.Calls = append(m.Calls, Call{Method: "DELETE", Path: path})
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, path)
	}
	return apperrors.Gateway("unexpected DELETE " + path)
}

func (m *MockGateway) Upload(ctx context.Context, path string, form ports.MultipartForm, out any) error {
	m.Calls = append(m.Calls, Call{Method: "UPLOAD", Path: path, Form: form})
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, path, form, out)
	}
	return apperrors.Gateway("unexpected UPLOAD " + path)
}
