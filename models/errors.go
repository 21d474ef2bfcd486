package models

import "errors"

// 核心錯誤：用 errors.Is 判斷，呼叫端負責回報給使用者
var (
	ErrMalformedTimestamp   = errors.New("malformed timestamp")
	ErrPlateNotFound        = errors.New("plate not found")
	ErrNegativeDuration     = errors.New("negative parking duration")
	ErrAssistantUnavailable = errors.New("assistant service unavailable")
	ErrNoRecords            = errors.New("no parking records loaded")
)
