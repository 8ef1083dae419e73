package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	ReservationStatusActive    = "active"
	ReservationStatusCancelled = "cancelled"
)

const (
	RequestParamID       = "id"
	RequestParamMonth    = "month"
	RequestParamRoomID   = "room_id"
	RequestParamStatus   = "status"
	RequestParamCategory = "category"
	RequestParamActive   = "active"
)

const (
	MonthsPerYear = 12
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "store"

	OtelEntityAttributeKey = "entity"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	ISODateFormat = "2006-01-02"
	DateFormat    = time.RFC3339
)

const (
	Asterix = "*"
	Empty   = ""
)
