// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pingapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"strings"

	"github.com/siemens/remoteping/types"

	"github.com/rs/xid"
	"github.com/thediveo/lxkns/log"
	"github.com/tidwall/gjson"
)

// RequestIDHeader is the HTTP header carrying a unique request ID.
const RequestIDHeader = "X-Request-Id"

// maxBodySize limits the size of ping server responses we're willing to read.
const maxBodySize = 16 << 20

// Client issues ping requests to a particular ping server.
type Client struct {
	base  string       // server base URL without trailing slash.
	httpc *http.Client // HTTP client to use for requests.
}

// Option can be passed to New when creating new Client objects.
type Option func(*Client)

// HostAnswer is the answer for a single host within a network, as returned by
// [Client.Network].
type HostAnswer struct {
	Address string // host address as reported by the server.
	types.Answer
}

// New returns a new Client for the ping server at the specified base URL. The
// Client uses [http.DefaultClient] unless told otherwise using
// [WithHTTPClient].
func New(serverURL string, options ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(serverURL, "/"),
		httpc: http.DefaultClient,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// WithHTTPClient sets the HTTP client to use, for instance, in order to
// configure timeouts or a specific transport.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// ServerURL returns the base URL of the ping server.
func (c *Client) ServerURL() string { return c.base }

// Host asks the ping server to ping the specified address, which can be either
// an IP address literal or a host name.
//
// If the server doesn't give a liveness verdict, Host returns a
// [types.PingError] with the server's detail message.
func (c *Client) Host(ctx context.Context, address string) (types.Answer, error) {
	status, body, err := c.get(ctx, "/"+url.PathEscape(address))
	if err != nil {
		return types.Answer{}, err
	}
	if !gjson.ValidBytes(body) {
		return types.Answer{}, &types.PingError{
			Target: address,
			Detail: fmt.Sprintf("malformed ping server response (HTTP status %d)", status),
		}
	}
	r := gjson.ParseBytes(body)
	alive := r.Get("alive")
	if !alive.Exists() {
		return types.Answer{}, &types.PingError{
			Target: address,
			Detail: detail(r, status),
		}
	}
	ip := r.Get("address")
	if !ip.Exists() {
		ip = r.Get("ip")
	}
	return types.Answer{
		IP:    ip.String(),
		Alive: alive.Bool(),
		RTT:   rtt(r.Get("rtt")),
	}, nil
}

// Network asks the ping server to ping all hosts in the specified network. The
// answers are returned in the order of the server's response. Network either
// returns answers for all hosts or an error, but never only some answers.
func (c *Client) Network(ctx context.Context, network netip.Prefix) ([]HostAnswer, error) {
	cidr := network.String()
	status, body, err := c.get(ctx, "/network/"+cidr)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, &types.PingError{
			Target: cidr,
			Detail: fmt.Sprintf("malformed ping server response (HTTP status %d)", status),
		}
	}
	r := gjson.ParseBytes(body)
	hosts := r.Get("hosts")
	if !hosts.IsArray() {
		return nil, &types.PingError{
			Target: cidr,
			Detail: detail(r, status),
		}
	}
	elements := hosts.Array()
	answers := make([]HostAnswer, 0, len(elements))
	for idx, host := range elements {
		addr := host.Get("address")
		alive := host.Get("alive")
		if !addr.Exists() || !alive.Exists() {
			return nil, &types.PingError{
				Target: cidr,
				Detail: fmt.Sprintf("incomplete answer for host #%d", idx),
			}
		}
		ip := host.Get("ip")
		if !ip.Exists() {
			ip = addr
		}
		answers = append(answers, HostAnswer{
			Address: addr.String(),
			Answer: types.Answer{
				IP:    ip.String(),
				Alive: alive.Bool(),
				RTT:   rtt(host.Get("rtt")),
			},
		})
	}
	return answers, nil
}

// get issues a GET request for the specified path relative to the server's base
// URL, returning the HTTP status code and response body.
func (c *Client) get(ctx context.Context, path string) (int, []byte, error) {
	reqID := xid.New().String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("cannot create ping request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	log.Debugf("ping request %s: GET %s", reqID, req.URL)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("ping request %s failed: %w", reqID, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("cannot read ping response %s: %w", reqID, err)
	}
	log.Debugf("ping response %s: HTTP status %d, %d bytes", reqID, resp.StatusCode, len(body))
	return resp.StatusCode, body, nil
}

// detail returns the ping server's error detail from a response, or a generic
// message if there is none.
func detail(r gjson.Result, status int) string {
	if d := r.Get("detail"); d.Exists() && d.String() != "" {
		return d.String()
	}
	return fmt.Sprintf("ping server gave no verdict (HTTP status %d)", status)
}

// rtt returns the RTT from a JSON value, which is invalid for missing or null
// values.
func rtt(v gjson.Result) types.RTT {
	if v.Type != gjson.Number {
		return types.RTT{}
	}
	return types.SomeRTT(v.Float())
}
