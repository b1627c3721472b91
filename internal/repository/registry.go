package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrUnknownProject = errors.New("unknown project")

// Registry holds one warehouse repository per mine site. The primary site
// answers when no project code is given.
type Registry struct {
	primary  *WarehouseRepository
	projects map[string]*WarehouseRepository
}

func NewRegistry(primary *gorm.DB, projects map[string]*gorm.DB, ttl time.Duration, log zerolog.Logger) *Registry {
	reg := &Registry{
		primary:  NewWarehouseRepository(primary, ttl, log),
		projects: make(map[string]*WarehouseRepository, len(projects)),
	}
	for code, conn := range projects {
		reg.projects[strings.ToUpper(code)] = NewWarehouseRepository(conn, ttl, log.With().Str("project", code).Logger())
	}
	return reg
}

// Primary is the default mine-site warehouse.
func (r *Registry) Primary() *WarehouseRepository {
	return r.primary
}

// ForProject resolves a mine-site code to its warehouse.
func (r *Registry) ForProject(code string) (*WarehouseRepository, error) {
	repo, ok := r.projects[strings.ToUpper(code)]
	if !ok {
		return nil, ErrUnknownProject
	}
	return repo, nil
}
