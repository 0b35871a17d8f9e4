package service

import (
	"strconv"
	"strings"

	"microblog/database"
	"microblog/database/model"
	"microblog/util/common"
	"microblog/web/entity"

	"gorm.io/gorm"
)

const (
	SettingSiteName    = "site_name"
	SettingSiteTagline = "site_tagline"
	SettingPostsPublic = "posts_public"
)

// SettingService reads and writes the settings table, applying the seeded
// default whenever a key is absent. Every read hits the store; there is no
// caching layer.
type SettingService struct {
	db *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	setting := &model.Setting{}
	err := s.db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		return s.db.Create(&model.Setting{
			Key:   key,
			Value: value,
		}).Error
	} else if err != nil {
		return err
	}
	setting.Value = value
	return s.db.Save(setting).Error
}

func (s *SettingService) getString(key string) (string, error) {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		value, ok := database.DefaultSettings[key]
		if !ok {
			return "", common.NewErrorf("key <%v> has no default value", key)
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) getBool(key string) (bool, error) {
	str, err := s.getString(key)
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(str)
}

func (s *SettingService) GetSiteName() (string, error) {
	return s.getString(SettingSiteName)
}

func (s *SettingService) GetSiteTagline() (string, error) {
	return s.getString(SettingSiteTagline)
}

// GetPostsPublic reports whether the feed is publicly readable. Consumed by
// the visibility policy.
func (s *SettingService) GetPostsPublic() (bool, error) {
	return s.getBool(SettingPostsPublic)
}

// GetAllSettings resolves the full site configuration, falling back to the
// seeded default for every missing key.
func (s *SettingService) GetAllSettings() (*entity.SiteSettings, error) {
	siteName, err := s.GetSiteName()
	if err != nil {
		return nil, err
	}
	siteTagline, err := s.GetSiteTagline()
	if err != nil {
		return nil, err
	}
	postsPublic, err := s.GetPostsPublic()
	if err != nil {
		return nil, err
	}
	return &entity.SiteSettings{
		SiteName:    siteName,
		SiteTagline: siteTagline,
		PostsPublic: postsPublic,
	}, nil
}

// UpdateSettings validates and applies a settings update. Each provided field
// is upserted independently; omitted fields are left unchanged. The key writes
// are not atomic with each other, partial application under failure matches
// the documented model.
func (s *SettingService) UpdateSettings(form *entity.UpdateSettingsForm) error {
	if form.SiteName == nil || strings.TrimSpace(*form.SiteName) == "" {
		return common.NewValidationError("site name is required")
	}
	if form.SiteTagline != nil && strings.TrimSpace(*form.SiteTagline) == "" {
		return common.NewValidationError("site tagline cannot be empty")
	}

	var postsPublic *bool
	switch v := form.PostsPublic.(type) {
	case nil:
	case bool:
		postsPublic = &v
	default:
		return common.NewValidationError("posts_public setting must be a boolean")
	}

	if err := s.saveSetting(SettingSiteName, *form.SiteName); err != nil {
		return err
	}
	if form.SiteTagline != nil {
		if err := s.saveSetting(SettingSiteTagline, *form.SiteTagline); err != nil {
			return err
		}
	}
	if postsPublic != nil {
		if err := s.saveSetting(SettingPostsPublic, strconv.FormatBool(*postsPublic)); err != nil {
			return err
		}
	}
	return nil
}
