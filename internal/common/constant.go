package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value inside the authorization header.
const BearerPrefix = "Bearer "
