// Package common contains shared constants and sentinel errors used across
// todokeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// bearer token on outbound requests.
const AccessTokenHeaderName = "authorization"

// BearerScheme is the authorization scheme prefix accepted by both transports.
const BearerScheme = "Bearer"
