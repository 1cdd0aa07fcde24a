package services

import "errors"

// Общие ошибки сервисного слоя, маппятся на HTTP-статусы в handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrTeamNameRequired         = errors.New("team name is required")
	ErrTournamentNameRequired   = errors.New("tournament name is required")
	ErrPlayerNameRequired       = errors.New("player name is required")
	ErrPlayerNumberInvalid      = errors.New("player number must be between 0 and 99")
	ErrInvalidTeamReference     = errors.New("one or more team ids are invalid")
	ErrUnsupportedFormat        = errors.New("unsupported tournament format")
	ErrInsufficientParticipants = errors.New("at least two teams required to generate a schedule")
	ErrNegativeScore            = errors.New("scores must be non-negative")

	// Ошибки конфликтов
	ErrTeamNameConflict         = errors.New("team name is already in use")
	ErrTournamentNameConflict   = errors.New("tournament name is already in use")
	ErrScheduleAlreadyGenerated = errors.New("schedule already generated for this tournament")
	ErrTeamInUse                = errors.New("team is referenced by a tournament or match")

	// Ошибки, специфичные для сущностей
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")

	// Загрузка файлов
	ErrLogoUploadFailed    = errors.New("logo upload failed")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
