// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package connect

import (
	"fmt"
	"time"

	"github.com/z5labs/vfsopt/optional"
)

// Options is the mutable configuration context for one connection.
//
// Options is not safe for unsynchronized concurrent mutation. Every
// setter overwrites the previous value, so applying the same option
// twice is a no-op beyond the second write.
type Options struct {
	connectionTimeout     optional.Value[time.Duration]
	soTimeout             optional.Value[time.Duration]
	tlsVersions           optional.Value[string]
	keyStoreFile          optional.Value[string]
	proxyAuthenticator    optional.Value[Authenticator]
	cookies               []Cookie
	followRedirect        optional.Value[bool]
	preemptiveAuth        optional.Value[bool]
	userAgent             optional.Value[string]
	maxTotalConnections   optional.Value[int]
	maxConnectionsPerHost optional.Value[int]
}

// NewOptions returns an empty Options.
func NewOptions() *Options {
	return &Options{}
}

// SetConnectionTimeout sets the connect timeout.
func (o *Options) SetConnectionTimeout(d time.Duration) error {
	o.connectionTimeout = optional.ValueOf(d)
	return nil
}

// ConnectionTimeout returns the connect timeout and whether it was set.
func (o *Options) ConnectionTimeout() (time.Duration, bool) {
	return o.connectionTimeout.Value()
}

// SetSoTimeout sets the socket read timeout.
func (o *Options) SetSoTimeout(d time.Duration) error {
	o.soTimeout = optional.ValueOf(d)
	return nil
}

// SoTimeout returns the socket read timeout and whether it was set.
func (o *Options) SoTimeout() (time.Duration, bool) {
	return o.soTimeout.Value()
}

// SetTLSVersions sets the enabled TLS versions as a comma joined list,
// e.g. "V_1_2,V_1_3".
func (o *Options) SetTLSVersions(versions string) error {
	o.tlsVersions = optional.ValueOf(versions)
	return nil
}

// TLSVersions returns the enabled TLS versions and whether they were set.
func (o *Options) TLSVersions() (string, bool) {
	return o.tlsVersions.Value()
}

// SetKeyStoreFile sets the absolute local path of the key store file.
func (o *Options) SetKeyStoreFile(path string) error {
	o.keyStoreFile = optional.ValueOf(path)
	return nil
}

// KeyStoreFile returns the key store file path and whether it was set.
func (o *Options) KeyStoreFile() (string, bool) {
	return o.keyStoreFile.Value()
}

// SetProxyAuthenticator sets the proxy credentials.
func (o *Options) SetProxyAuthenticator(a Authenticator) error {
	o.proxyAuthenticator = optional.ValueOf(a)
	return nil
}

// ProxyAuthenticator returns the proxy credentials and whether they were set.
func (o *Options) ProxyAuthenticator() (Authenticator, bool) {
	return o.proxyAuthenticator.Value()
}

// SetCookies replaces the cookies to add to each request.
func (o *Options) SetCookies(cookies []Cookie) error {
	cs := make([]Cookie, len(cookies))
	copy(cs, cookies)
	o.cookies = cs
	return nil
}

// Cookies returns a copy of the cookies to add to each request.
func (o *Options) Cookies() []Cookie {
	cs := make([]Cookie, len(o.cookies))
	copy(cs, o.cookies)
	return cs
}

// SetFollowRedirect sets whether redirects are followed automatically.
func (o *Options) SetFollowRedirect(follow bool) error {
	o.followRedirect = optional.ValueOf(follow)
	return nil
}

// FollowRedirect returns the redirect policy and whether it was set.
func (o *Options) FollowRedirect() (bool, bool) {
	return o.followRedirect.Value()
}

// SetPreemptiveAuth sets whether credentials are sent before a challenge.
func (o *Options) SetPreemptiveAuth(preemptive bool) error {
	o.preemptiveAuth = optional.ValueOf(preemptive)
	return nil
}

// PreemptiveAuth returns the preemptive auth policy and whether it was set.
func (o *Options) PreemptiveAuth() (bool, bool) {
	return o.preemptiveAuth.Value()
}

// SetUserAgent sets the User-Agent request header value.
func (o *Options) SetUserAgent(agent string) error {
	o.userAgent = optional.ValueOf(agent)
	return nil
}

// UserAgent returns the User-Agent value and whether it was set.
func (o *Options) UserAgent() (string, bool) {
	return o.userAgent.Value()
}

// SetMaxTotalConnections sets the connection pool size across all hosts.
// The pool requires at least one connection.
func (o *Options) SetMaxTotalConnections(n int) error {
	if n < 1 {
		return fmt.Errorf("max total connections must be at least 1: %d", n)
	}
	o.maxTotalConnections = optional.ValueOf(n)
	return nil
}

// MaxTotalConnections returns the pool size and whether it was set.
func (o *Options) MaxTotalConnections() (int, bool) {
	return o.maxTotalConnections.Value()
}

// SetMaxConnectionsPerHost sets the connection pool size per host.
// The pool requires at least one connection.
func (o *Options) SetMaxConnectionsPerHost(n int) error {
	if n < 1 {
		return fmt.Errorf("max connections per host must be at least 1: %d", n)
	}
	o.maxConnectionsPerHost = optional.ValueOf(n)
	return nil
}

// MaxConnectionsPerHost returns the per host pool size and whether it was set.
func (o *Options) MaxConnectionsPerHost() (int, bool) {
	return o.maxConnectionsPerHost.Value()
}
