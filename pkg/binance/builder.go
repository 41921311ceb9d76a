package binance

import (
	"net/url"

	"spotdata/pkg/core"
)

// Base URLs for the Binance spot REST API.
const (
	ProductionURL = "https://api.binance.com"
	SandboxURL    = "https://testnet.binance.vision"
)

// buildRequest assembles a full request for the given endpoint: base URL,
// path, canonical query string, and the API-key header when credentials
// are configured.
//
// The canonical query string is embedded in the URL verbatim so that the
// bytes the signer would see are the bytes that travel. The builder never
// invokes signQuery itself; callers that need a signed query must derive
// and attach the signature before dispatch.
//
// Returns an InvalidURL error when the composed string does not parse,
// which can happen with unescaped parameter values (see core.Param.Encode).
func (c *Client) buildRequest(endpoint Endpoint, params core.Params) (*core.Request, error) {
	full := c.baseURL + endpoint.Path()
	if canonical := params.Canonical(); canonical != "" {
		full += "?" + canonical
	}

	if _, err := url.Parse(full); err != nil {
		return nil, &core.APIError{
			Type:    core.ErrorTypeInvalidURL,
			Message: "compose request url",
			Cause:   err,
		}
	}

	req := core.NewRequest(full)
	if c.config.HasCredentials() {
		req.SetHeader("X-MBX-APIKEY", c.config.Credentials.APIKey)
	}

	return req, nil
}
