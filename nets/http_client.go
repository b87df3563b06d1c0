package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// HTTPClientTimeout bounds a whole request, body included.
type HTTPClientTimeout time.Duration

func (Module) HTTPClientTimeout() HTTPClientTimeout {
	return HTTPClientTimeout(time.Minute)
}

func (Module) HTTPClient(
	dialer Dialer,
	timeout HTTPClientTimeout,
) HTTPClient {
	return &http.Client{
		Timeout: time.Duration(timeout),
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
