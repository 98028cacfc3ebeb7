package usecasecontract

import "time"

// IConfigProvider exposes the runtime configuration usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}
