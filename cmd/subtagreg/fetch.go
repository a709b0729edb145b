/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// loadRegistry returns the raw registry text, either from a local snapshot
// when --file is set or from the registry URL otherwise.
func loadRegistry(ctx context.Context, flags *compileFlags, logger *zap.Logger) ([]byte, error) {
	if flags.file != "" {
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return nil, errors.Wrap(err, "read registry snapshot")
		}

		return data, nil
	}

	return fetchRegistry(ctx, flags.url, flags.timeout, logger)
}

func fetchRegistry(ctx context.Context, rawURL string, timeout time.Duration, logger *zap.Logger) ([]byte, error) {
	target, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build registry request")
	}

	logger.Debug("fetching registry", zap.String("url", target))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch registry")
	}
	defer resp.Body.Close() //nolint:errcheck // Nothing useful to do with a close error on a fully read body.

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch registry: unexpected status %q", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read registry response")
	}

	return data, nil
}

// normalizeURL validates the registry URL and converts an internationalized
// host to its ASCII form.
func normalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "parse registry URL %q", rawURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errors.Errorf("registry URL %q: unsupported scheme %q", rawURL, u.Scheme)
	}

	host, err := idna.ToASCII(norm.NFC.String(u.Hostname()))
	if err != nil {
		return "", errors.Wrapf(err, "encode host of registry URL %q", rawURL)
	}

	if port := u.Port(); port != "" {
		u.Host = net.JoinHostPort(host, port)
	} else {
		u.Host = host
	}

	return u.String(), nil
}
