// Package mockapi lets code talk to the mock backend through a plain
// *http.Client without any network: a RoundTripper dispatches each request
// straight into the router. The caller cannot tell it is not a real server,
// which is the whole point of the mock layer.
package mockapi

import (
	"net/http"
	"net/http/httptest"
)

// Transport serves every request by invoking an in-process handler. Each
// round trip runs synchronously to completion; there is no cancellation
// mid-call and no timeout, because no wire is involved.
type Transport struct {
	handler http.Handler
}

// NewTransport intercepts requests with the given handler, typically the
// app router.
func NewTransport(h http.Handler) *Transport {
	return &Transport{handler: h}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
