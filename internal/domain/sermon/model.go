package sermon

import (
	"net/url"
	"time"

	"churchportal/internal/domain/validation"
)

// DateLayout is the format of SermonDate.
const DateLayout = "2006-01-02"

// Max length constants for user-editable fields.
const (
	MaxTitleLength     = 200
	MaxSpeakerLength   = 100
	MaxScriptureLength = 200
	MaxURLLength       = 2048
)

// Domain errors
var (
	ErrEmptyTitle        = validation.New("title", "sermon title cannot be empty")
	ErrTitleTooLong      = validation.New("title", "sermon title cannot exceed 200 characters")
	ErrEmptySpeaker      = validation.New("speaker", "sermon speaker cannot be empty")
	ErrSpeakerTooLong    = validation.New("speaker", "sermon speaker cannot exceed 100 characters")
	ErrScriptureTooLong  = validation.New("scripture", "sermon scripture cannot exceed 200 characters")
	ErrInvalidSermonDate = validation.New("sermon_date", "sermon date must be formatted YYYY-MM-DD")
	ErrInvalidAudioURL   = validation.New("audio_url", "sermon audio_url must be an http(s) URL")
	ErrInvalidVideoURL   = validation.New("video_url", "sermon video_url must be an http(s) URL")
)

// Sermon is a recorded message in the sermon library.
// AudioURL and VideoURL are optional media links.
type Sermon struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Speaker    string `json:"speaker"`
	Scripture  string `json:"scripture"`
	SermonDate string `json:"sermon_date"`
	AudioURL   string `json:"audio_url,omitempty"`
	VideoURL   string `json:"video_url,omitempty"`
}

// Patch carries the fields a caller wants to change. Nil fields are left as they are.
type Patch struct {
	Title      *string `json:"title,omitempty"`
	Speaker    *string `json:"speaker,omitempty"`
	Scripture  *string `json:"scripture,omitempty"`
	SermonDate *string `json:"sermon_date,omitempty"`
	AudioURL   *string `json:"audio_url,omitempty"`
	VideoURL   *string `json:"video_url,omitempty"`
}

// Validate checks if the Sermon has valid data.
// PRE: Sermon struct is populated
// POST: Returns nil if valid, a *validation.Error otherwise
func (s *Sermon) Validate() error {
	if validation.Blank(s.Title) {
		return ErrEmptyTitle
	}
	if len(s.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if validation.Blank(s.Speaker) {
		return ErrEmptySpeaker
	}
	if len(s.Speaker) > MaxSpeakerLength {
		return ErrSpeakerTooLong
	}
	if len(s.Scripture) > MaxScriptureLength {
		return ErrScriptureTooLong
	}
	if s.SermonDate != "" {
		if _, err := time.Parse(DateLayout, s.SermonDate); err != nil || len(s.SermonDate) != len(DateLayout) {
			return ErrInvalidSermonDate
		}
	}
	if !validMediaURL(s.AudioURL) {
		return ErrInvalidAudioURL
	}
	if !validMediaURL(s.VideoURL) {
		return ErrInvalidVideoURL
	}
	return nil
}

// Apply overlays p onto the sermon.
// INVARIANT: ID is never changed
func (s *Sermon) Apply(p Patch) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Speaker != nil {
		s.Speaker = *p.Speaker
	}
	if p.Scripture != nil {
		s.Scripture = *p.Scripture
	}
	if p.SermonDate != nil {
		s.SermonDate = *p.SermonDate
	}
	if p.AudioURL != nil {
		s.AudioURL = *p.AudioURL
	}
	if p.VideoURL != nil {
		s.VideoURL = *p.VideoURL
	}
}

// HasMedia reports whether the sermon links to audio or video.
func (s *Sermon) HasMedia() bool {
	return s.AudioURL != "" || s.VideoURL != ""
}

// validMediaURL accepts an empty link or an absolute http(s) URL.
func validMediaURL(raw string) bool {
	if raw == "" {
		return true
	}
	if len(raw) > MaxURLLength {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
