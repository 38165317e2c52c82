package dao

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventCodeExists      = errors.New("event code already exists")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserEmailExists      = errors.New("user already exists")

	// ErrSchemaDrift is returned when the drop-and-retry write loop could
	// not converge on a payload the backing schema accepts.
	ErrSchemaDrift = errors.New("schema drift retries exhausted")
)

// StringList stores a []string as a JSON text column so the same record
// type round-trips through both Postgres and the flat-file documents.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported StringList source type %T", src)
	}
}

func (StringList) GormDataType() string {
	return "text"
}

type Event struct {
	ID   string `gorm:"primaryKey;column:id" json:"id"`
	Code string `gorm:"column:event_code;uniqueIndex;not null" json:"eventCode"`

	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	Type        string `gorm:"column:type;not null" json:"type"`

	CreatorName  string `gorm:"column:creator_name" json:"creatorName"`
	CreatorEmail string `gorm:"column:creator_email;not null" json:"creatorEmail"`

	StartsAt             time.Time `gorm:"column:starts_at" json:"startsAt"`
	EndsAt               time.Time `gorm:"column:ends_at" json:"endsAt"`
	RegistrationDeadline time.Time `gorm:"column:registration_deadline" json:"registrationDeadline"`

	Mode  string `gorm:"column:mode" json:"mode"`
	Venue string `gorm:"column:venue" json:"venue"`

	TeamSizeMin     int `gorm:"column:team_size_min" json:"teamSizeMin"`
	TeamSizeMax     int `gorm:"column:team_size_max" json:"teamSizeMax"`
	MaxParticipants int `gorm:"column:max_participants" json:"maxParticipants"`

	Themes StringList `gorm:"column:themes" json:"themes"`
	Tracks StringList `gorm:"column:tracks" json:"tracks"`

	SubmissionGuidelines string `gorm:"column:submission_guidelines" json:"submissionGuidelines"`
	EvaluationCriteria   string `gorm:"column:evaluation_criteria" json:"evaluationCriteria"`
	PrizeDetails         string `gorm:"column:prize_details" json:"prizeDetails"`

	AuthorizedJudges StringList `gorm:"column:authorized_judges" json:"authorizedJudges"`

	Announcements []Announcement `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"announcements"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

type Announcement struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	EventID   string    `gorm:"column:event_id;index;not null" json:"-"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	Author    string    `gorm:"column:author" json:"author"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

type Submission struct {
	ID             string     `gorm:"primaryKey;column:id" json:"id"`
	EventID        string     `gorm:"column:event_id;index;not null" json:"eventId"`
	TeamName       string     `gorm:"column:team_name" json:"teamName"`
	SubmitterEmail string     `gorm:"column:submitter_email" json:"submitterEmail"`
	Title          string     `gorm:"column:title;not null" json:"title"`
	Link           string     `gorm:"column:link" json:"link"`
	FileRefs       StringList `gorm:"column:file_refs" json:"fileRefs"`
	CreatedAt      time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
}

type Review struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	SubmissionID string    `gorm:"column:submission_id;index;not null" json:"submissionId"`
	Score        float64   `gorm:"column:score;not null" json:"score"`
	Feedback     string    `gorm:"column:feedback" json:"feedback"`
	JudgeEmail   string    `gorm:"column:judge_email;not null" json:"judgeEmail"`
	JudgeName    string    `gorm:"column:judge_name" json:"judgeName"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

type Registration struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	EventID   string    `gorm:"column:event_id;index;not null" json:"eventId"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	TeamName  string    `gorm:"column:team_name" json:"teamName"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

type User struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"column:email;unique;not null" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"password"`
	Name      string    `gorm:"column:name" json:"name"`
	Role      string    `gorm:"column:role;not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Event{},
		&Announcement{},
		&Submission{},
		&Review{},
		&Registration{},
		&User{},
	)
}
