package schema

import (
	"time"

	"github.com/google/uuid"
)

// Project groups extractions and reconstructed datasets in the relational
// registry. Curve data and IPD records themselves live in mongo.
type Project struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectArtifact indexes a generated file artifact. One row per
// (project, endpoint, arm); re-running reconstruction overwrites it.
type ProjectArtifact struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ProjectID string    `json:"project_id" gorm:"unique_index:idx_project_endpoint_arm"`
	Endpoint  string    `json:"endpoint" gorm:"unique_index:idx_project_endpoint_arm"`
	Arm       string    `json:"arm" gorm:"unique_index:idx_project_endpoint_arm"`
	Kind      string    `json:"kind"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExtractionImage is a content-addressed record of an uploaded figure,
// deduplicated by digest within a project.
type ExtractionImage struct {
	ProjectID string    `json:"project_id" bson:"project_id"`
	Digest    string    `json:"digest" bson:"digest"`
	Size      int       `json:"size" bson:"size"`
	Image     []byte    `json:"-" bson:"image"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
