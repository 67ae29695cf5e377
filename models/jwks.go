package models

// JSONWebKeySet is the document served at the signing-key discovery URL.
type JSONWebKeySet struct {
	Keys []JSONWebKey `json:"keys"`
}

// JSONWebKey is a single public signing key from the discovery document.
// Only the fields needed to select and convert an RSA signature key are
// modeled; everything else in the document is ignored.
type JSONWebKey struct {
	// Kty is the key type, e.g. "RSA".
	Kty string `json:"kty"`

	// Use is the intended key usage; signature keys carry "sig".
	Use string `json:"use"`

	// Kid is the key identifier matched against the token header.
	Kid string `json:"kid"`

	// Alg is the signature algorithm the key is meant for, e.g. "RS256".
	Alg string `json:"alg,omitempty"`

	// X5C is the X.509 certificate chain, base64 (standard, not URL)
	// DER encodings. The leaf certificate holds the verification key.
	X5C []string `json:"x5c"`
}
