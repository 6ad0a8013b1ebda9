package db

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed seed_topics.yaml
var defaultTopicSeeds []byte

// TopicSeed is one entry of a topics YAML file.
type TopicSeed struct {
	Content   string `yaml:"content"`
	Presenter struct {
		Name string `yaml:"name"`
		ID   string `yaml:"id"`
	} `yaml:"presenter"`
	Category string  `yaml:"category"`
	Weight   float64 `yaml:"weight"`
	Enabled  *bool   `yaml:"enabled"`
}

type topicSeedFile struct {
	Topics []TopicSeed `yaml:"topics"`
}

// ProfileSeed is a demo leaderboard identity.
type ProfileSeed struct {
	UserID string
	Handle string
}

// LoadTopicSeeds reads a topics YAML file. An empty path loads the embedded defaults.
func LoadTopicSeeds(path string) ([]TopicSeed, error) {
	raw := defaultTopicSeeds
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		raw = b
	}
	return ParseTopicSeeds(raw)
}

// ParseTopicSeeds decodes and validates topics YAML.
func ParseTopicSeeds(raw []byte) ([]TopicSeed, error) {
	var f topicSeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, s := range f.Topics {
		if strings.TrimSpace(s.Content) == "" {
			return nil, fmt.Errorf("topic %d: content is empty", i)
		}
		if s.Weight <= 0 {
			return nil, fmt.Errorf("topic %d: weight must be positive", i)
		}
	}
	return f.Topics, nil
}

// ToTopic converts a seed entry into a Topic row.
func (s TopicSeed) ToTopic() Topic {
	t := Topic{
		Content:       strings.TrimSpace(s.Content),
		PresenterName: s.Presenter.Name,
		Category:      s.Category,
		Weight:        s.Weight,
		Enabled:       true,
	}
	if s.Presenter.ID != "" {
		id := s.Presenter.ID
		t.PresenterID = &id
	}
	if t.Category == "" {
		t.Category = "general"
	}
	if s.Enabled != nil {
		t.Enabled = *s.Enabled
	}
	return t
}

// SeedTopics inserts seed topics whose content is not already in the pool.
// Existing rows are left alone so history references stay valid.
//
// Returns the number of topics inserted.
func SeedTopics(db *gorm.DB, seeds []TopicSeed) (int, error) {
	inserted := 0
	for _, s := range seeds {
		t := s.ToTopic()

		var count int64
		if err := db.Model(&Topic{}).Where("content = ?", t.Content).Count(&count).Error; err != nil {
			return inserted, fmt.Errorf("failed to check topic: %w", err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			return inserted, fmt.Errorf("failed to seed topic: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

// SeedProfiles upserts demo profiles keyed by user id.
func SeedProfiles(db *gorm.DB, seeds []ProfileSeed) error {
	for _, s := range seeds {
		p := Profile{UserID: s.UserID, Handle: s.Handle}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"handle", "updated_at"}),
		}).Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	return nil
}

// SeedDevData populates the embedded topic pool and a handful of demo profiles.
// Compatible with both MySQL and SQLite.
func SeedDevData(db *gorm.DB) error {
	seeds, err := LoadTopicSeeds("")
	if err != nil {
		return err
	}
	if _, err := SeedTopics(db, seeds); err != nil {
		return err
	}
	return SeedProfiles(db, []ProfileSeed{
		{UserID: "demo-1", Handle: "aristotle"},
		{UserID: "demo-2", Handle: "hypatia"},
		{UserID: "demo-3", Handle: "confucius"},
	})
}
