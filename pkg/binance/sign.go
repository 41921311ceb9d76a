package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// signQuery derives the HMAC-SHA256 signature for a canonical query string.
//
// The canonical string is first base64-encoded and the MAC is computed over
// that base64 text, keyed by the secret. The intermediate base64 step is
// part of the compatibility contract with the server-side verifier and must
// not be replaced with a plain HMAC over the raw query string.
//
// The signature is hex-encoded lowercase. Output is deterministic for equal
// (canonical, secret) input.
//
// Note: request assembly never calls this function; attaching the signature
// as a query parameter is left to the caller. See buildRequest.
func signQuery(canonical, secret string) string {
	payload := base64.StdEncoding.EncodeToString([]byte(canonical))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
