package common

// AuthHeaderName is the request header carrying the bearer token.
const AuthHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the Authorization header.
// The comparison is case-sensitive.
const BearerPrefix = "Bearer "
