package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oncurve/oncurve-api/schema"
)

const ipdDatasetCollection = "ipd_datasets"

// IPDStore persists reconstructed patient records, one document per
// (project, endpoint, arm). Re-running reconstruction replaces the
// document; records are never appended to.
type IPDStore interface {
	ReplaceIPDRecords(projectID string, result schema.IPDArmResult) error
}

type ipdDataset struct {
	ProjectID string              `bson:"project_id"`
	Result    schema.IPDArmResult `bson:",inline"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

func (m *mongoDB) ReplaceIPDRecords(projectID string, result schema.IPDArmResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(ipdDatasetCollection)

	_, err := c.ReplaceOne(ctx,
		bson.M{
			"project_id": projectID,
			"endpoint":   result.Endpoint,
			"arm":        result.Arm,
		},
		ipdDataset{
			ProjectID: projectID,
			Result:    result,
			UpdatedAt: time.Now().UTC(),
		},
		options.Replace().SetUpsert(true),
	)

	return err
}
