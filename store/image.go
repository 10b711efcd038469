package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const extractionImageCollection = "extraction_images"

// ImageStore deduplicates uploaded figures by content digest within a
// project. The same figure digitized for several arms is stored once.
type ImageStore interface {
	SaveExtractionImage(projectID string, image []byte) (digest string, created bool, err error)
}

// ComputeImageDigest returns the hex sha256 of raw image bytes. The digest
// is the dedup key, so it must be deterministic across uploads.
func ComputeImageDigest(image []byte) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}

func (m *mongoDB) SaveExtractionImage(projectID string, image []byte) (string, bool, error) {
	digest := ComputeImageDigest(image)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(extractionImageCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"project_id": projectID,
			"digest":     digest,
		},
		bson.M{
			"$setOnInsert": bson.M{
				"image":      image,
				"size":       len(image),
				"created_at": time.Now().UTC(),
			},
		},
		options.Update().SetUpsert(true),
	)
	if nil != err {
		return "", false, err
	}

	return digest, result.UpsertedCount > 0, nil
}
