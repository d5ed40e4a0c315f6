//go:build js

package agent

import (
	nethttp "net/http"
	"time"

	http "github.com/bogdanfinn/fhttp"
)

// fetchDoer sends requests through the browser's fetch via net/http.
type fetchDoer struct {
	client *nethttp.Client
}

func defaultHTTPClient(timeout time.Duration) (HTTPDoer, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &fetchDoer{client: &nethttp.Client{Timeout: timeout}}, nil
}

func (d *fetchDoer) Do(req *http.Request) (*http.Response, error) {
	out, err := nethttp.NewRequestWithContext(req.Context(), req.Method, req.URL.String(), req.Body)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, v := range values {
			out.Header.Add(key, v)
		}
	}

	resp, err := d.client.Do(out)
	if err != nil {
		return nil, err
	}

	header := make(http.Header, len(resp.Header))
	for key, values := range resp.Header {
		header[key] = values
	}
	return &http.Response{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Header:     header,
		Body:       resp.Body,
		Request:    req,
	}, nil
}
