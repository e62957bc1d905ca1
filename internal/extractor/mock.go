package extractor

import "context"

// MockClient is a canned Client implementation for tests.
type MockClient struct {
	Result      *Result
	Err         error
	LastRequest Request
	Calls       int
}

// Extract validates the request like a real client, records it, and returns
// the canned result.
func (m *MockClient) Extract(_ context.Context, req Request) (*Result, error) {
	m.Calls++
	m.LastRequest = req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
