package config

const (
	KeyMaxAttemptsPerAddress  = "security.login_limit.max_attempts_per_address"
	KeyAddressResetInterval   = "security.login_limit.address_reset_interval"
	KeyMaxAttemptsPerUsername = "security.login_limit.max_attempts_per_username"
	KeyUsernameResetInterval  = "security.login_limit.username_reset_interval"
	KeyNormalizeUsernames     = "security.login_limit.normalize_usernames"

	KeyAdminUsers = "admin.users"

	KeyAuditDBFile = "audit.db_file"

	KeyLogFile       = "log.file"
	KeyLogMaxSizeMB  = "log.max_size_mb"
	KeyLogMaxBackups = "log.max_backups"
	KeyLogMaxAgeDays = "log.max_age_days"
)
