package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("profile not found")

const profilesFileName = ".atlascfg"

type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// DefaultProfilesPath is ~/.atlascfg, or .atlascfg in the working directory when
// the home directory cannot be determined.
func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return profilesFileName
	}
	return filepath.Join(home, profilesFileName)
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := sectionToProfile(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return domain.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return sectionToProfile(section)
}

func sectionToProfile(section *ini.Section) (domain.Profile, error) {
	profile := domain.Profile{
		Name:     section.Name(),
		Driver:   domain.Driver(section.Key("driver").String()),
		Schema:   section.Key("schema").String(),
		Settings: make(map[string]string),
	}
	for _, key := range section.Keys() {
		switch key.Name() {
		case "driver", "schema":
		default:
			profile.Settings[key.Name()] = key.String()
		}
	}

	// plain .databrickscfg sections carry no driver key
	if profile.Driver == "" && profile.Get("host") != "" && profile.Get("http_path") != "" {
		profile.Driver = domain.DriverDatabricks
	}
	if profile.Driver == "" {
		return domain.Profile{}, fmt.Errorf("profile %s has no driver", profile.Name)
	}
	return profile, nil
}
