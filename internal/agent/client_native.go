//go:build !js

package agent

import (
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

func defaultHTTPClient(timeout time.Duration) (HTTPDoer, error) {
	seconds := int(timeout / time.Second)
	if seconds <= 0 {
		seconds = int(DefaultTimeout / time.Second)
	}
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(seconds),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithNotFollowRedirects(),
	}
	return tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
}
