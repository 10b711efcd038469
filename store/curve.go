package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oncurve/oncurve-api/schema"
)

const extractedCurveCollection = "extracted_curves"

// CurveStore persists canonical curve data keyed by (project, curve id).
// Re-digitizing the same curve overwrites rather than appends.
type CurveStore interface {
	SaveCurves(projectID, imageDigest string, curves []schema.ExtractedCurve) error
}

type curveRecord struct {
	ProjectID   string                `bson:"project_id"`
	ImageDigest string                `bson:"image_digest"`
	Curve       schema.ExtractedCurve `bson:",inline"`
	UpdatedAt   time.Time             `bson:"updated_at"`
}

func (m *mongoDB) SaveCurves(projectID, imageDigest string, curves []schema.ExtractedCurve) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(extractedCurveCollection)

	for _, curve := range curves {
		_, err := c.ReplaceOne(ctx,
			bson.M{
				"project_id": projectID,
				"curve_id":   curve.ID,
			},
			curveRecord{
				ProjectID:   projectID,
				ImageDigest: imageDigest,
				Curve:       curve,
				UpdatedAt:   time.Now().UTC(),
			},
			options.Replace().SetUpsert(true),
		)
		if nil != err {
			return err
		}
	}

	return nil
}
