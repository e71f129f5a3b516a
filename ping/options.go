// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"net/http"

	"github.com/siemens/remoteping/config"
	"github.com/siemens/remoteping/pingapi"
)

// Option can be passed to New, NewAnswered, and the NewNetwork... functions.
type Option func(*options)

type options struct {
	serverURL string
	httpc     *http.Client
	client    *pingapi.Client
}

// WithServerURL sets the ping server's base URL explicitly, instead of taking
// it from the environment.
func WithServerURL(serverURL string) Option {
	return func(o *options) {
		o.serverURL = serverURL
	}
}

// WithHTTPClient sets the HTTP client to use when talking to the ping server.
func WithHTTPClient(httpc *http.Client) Option {
	return func(o *options) {
		o.httpc = httpc
	}
}

// WithClient uses the specified ping server client, taking precedence over
// WithServerURL and WithHTTPClient.
func WithClient(client *pingapi.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// newClient returns the ping server client according to the specified options,
// resolving the server URL from the environment if necessary.
func newClient(opts []Option) (*pingapi.Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client != nil {
		return o.client, nil
	}
	var serverURL config.ServerURL
	var err error
	if o.serverURL != "" {
		serverURL, err = config.Parse(o.serverURL)
	} else {
		serverURL, err = config.Resolve()
	}
	if err != nil {
		return nil, err
	}
	return pingapi.New(serverURL.String(), pingapi.WithHTTPClient(o.httpc)), nil
}
