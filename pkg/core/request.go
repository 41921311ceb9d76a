package core

// Request is a fully assembled HTTP request: absolute URL with the
// canonical query string already embedded, plus any identity headers.
// It is built once per call and never reused.
type Request struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	// Signature is the HMAC query signature, when one was derived.
	// Deriving it is the caller's responsibility; request assembly never
	// computes it.
	Signature string `json:"signature,omitempty"`
}

// NewRequest creates a Request for the given absolute URL.
func NewRequest(url string) *Request {
	return &Request{
		URL:     url,
		Headers: make(map[string]string),
	}
}

// SetHeader sets a request header and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// SetSignature attaches a derived query signature and returns the request
// for chaining.
func (r *Request) SetSignature(sig string) *Request {
	r.Signature = sig
	return r
}
