package constants

import "time"

// Database
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
)

// Timeouts
const (
	DefaultTimeout        = 10 * time.Second
	DefaultRequestTimeout = 5 * time.Second
	ShutdownTimeout       = 10 * time.Second
)

// Redis keys
const (
	RedisKeyBestMeetingTime   = "meeting:best_time:"
	RedisKeyTimeTable         = "meeting:timetable:"
	RedisKeyInsightGeneration = "meeting:insights_gen:"
	InsightCacheTTL           = 10 * time.Minute
	InsightGenerationTTL      = 24 * time.Hour
)

// Tokens
const (
	ScopeTokenAccess    = "access"
	TokenRoleHost       = "HOST"
	TokenRoleMember     = "MEMBER"
	AccessTokenTTL      = 24 * time.Hour
	ContextTokenData    = "token_data"
	AuthorizationType   = "Bearer"
	HeaderAuthorization = "Authorization"
)

// Background tasks
const (
	TaskWarmMeetingInsights = "meeting:warm_insights"
	QueueDefault            = "default"
	TaskMaxRetry            = 3
)

// Meeting
const (
	MeetingCodeLength    = 8
	MeetingSlugMaxLength = 24
	MaxPriority          = 3
)
