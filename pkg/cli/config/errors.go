package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound   = goerr.New("configuration file not found")
	ErrInvalidConfig    = goerr.New("invalid configuration")
	ErrDuplicateID      = goerr.New("duplicate ID")
	ErrUnknownReference = goerr.New("reference to unknown ID")
	ErrMissingLabel     = goerr.New("label is required")
	ErrMissingTitle     = goerr.New("title is required")
	ErrMissingText      = goerr.New("text is required")
	ErrInvalidRank      = goerr.New("rank must be a positive integer")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	SeverityIDKey = "severity_id"
	RiskIDKey     = "risk_id"
	SectionIDKey  = "section_id"
	QuestionIDKey = "question_id"
)
