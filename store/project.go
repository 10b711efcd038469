package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/oncurve/oncurve-api/schema"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

const uniqueViolation = "23505"

// ArtifactRegistry indexes generated file artifacts per
// (project, endpoint, arm) so the modeling stage can locate them.
type ArtifactRegistry interface {
	RegisterArtifact(projectID, endpoint, arm, kind, filePath string) error
}

// OncurveCore is the relational project registry
type OncurveCore interface {
	Ping() error

	CreateProject(name string) (*schema.Project, error)
	GetProject(id string) (*schema.Project, error)

	ArtifactRegistry
}

// OncurveStore is an implementation of OncurveCore
type OncurveStore struct {
	ormDB *gorm.DB
}

func NewOncurveStore(ormDB *gorm.DB) *OncurveStore {
	return &OncurveStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *OncurveStore) Ping() error {
	return s.ormDB.DB().Ping()
}

func (s *OncurveStore) CreateProject(name string) (*schema.Project, error) {
	project := schema.Project{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.ormDB.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *OncurveStore) GetProject(id string) (*schema.Project, error) {
	var project schema.Project
	if err := s.ormDB.Where("id = ?", id).First(&project).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// RegisterArtifact inserts the artifact row, or updates it when the
// (project, endpoint, arm) tuple already exists: re-running reconstruction
// overwrites, never appends.
func (s *OncurveStore) RegisterArtifact(projectID, endpoint, arm, kind, filePath string) error {
	artifact := schema.ProjectArtifact{
		ID:        uuid.New(),
		ProjectID: projectID,
		Endpoint:  endpoint,
		Arm:       arm,
		Kind:      kind,
		FilePath:  filePath,
	}

	err := s.ormDB.Create(&artifact).Error
	if err == nil {
		return nil
	}

	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
		return s.ormDB.Model(&schema.ProjectArtifact{}).
			Where("project_id = ? AND endpoint = ? AND arm = ?", projectID, endpoint, arm).
			Updates(map[string]interface{}{
				"kind":      kind,
				"file_path": filePath,
			}).Error
	}

	return err
}
