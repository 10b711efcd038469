package ipd

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/oncurve/oncurve-api/external/reconstruct"
	"github.com/oncurve/oncurve-api/external/statcomp"
	"github.com/oncurve/oncurve-api/schema"
	"github.com/oncurve/oncurve-api/store"
)

const (
	logPrefix = "ipd"

	// reconstruction calls fan out per arm but stay bounded so a burst of
	// endpoints does not overwhelm the collaborator
	defaultWorkers = 4

	defaultTotalPatients = 100
)

// Generator reconstructs pseudo individual patient data for a batch of
// endpoint/arm curves. Implemented by Service; mocked in handler tests.
type Generator interface {
	GenerateIPD(ctx context.Context, endpoints []EndpointRequest, projectID string) schema.IPDGenerationResult
}

// Enqueuer defers a failed persistence attempt to the background queue.
type Enqueuer interface {
	EnqueueIPDPersist(projectID string, result schema.IPDArmResult) error
}

type EndpointRequest struct {
	EndpointType string                `json:"endpointType"`
	Arm          string                `json:"arm"`
	Points       []schema.DataPoint    `json:"points"`
	RiskTable    []schema.RiskTableRow `json:"riskTable"`
}

// Service orchestrates per-arm reconstruction, the cross-arm comparison and
// best-effort persistence. Collaborator failures degrade to simulated
// summaries; nothing here is fatal to the overall request.
type Service struct {
	reconstructor reconstruct.Reconstructor
	comparator    statcomp.Comparator
	ipdStore      store.IPDStore
	registry      store.ArtifactRegistry
	enqueuer      Enqueuer
	outputDir     string
	workers       int
}

func NewService(
	r reconstruct.Reconstructor,
	c statcomp.Comparator,
	ipdStore store.IPDStore,
	registry store.ArtifactRegistry,
	enqueuer Enqueuer,
	outputDir string) *Service {
	return &Service{
		reconstructor: r,
		comparator:    c,
		ipdStore:      ipdStore,
		registry:      registry,
		enqueuer:      enqueuer,
		outputDir:     outputDir,
		workers:       defaultWorkers,
	}
}

// GenerateIPD reconstructs every endpoint/arm independently; a failure in
// one arm never aborts the others. Results are assembled by input index so
// output order is deterministic regardless of completion order.
func (s *Service) GenerateIPD(ctx context.Context, endpoints []EndpointRequest, projectID string) schema.IPDGenerationResult {
	results := make([]schema.IPDArmResult, len(endpoints))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i := range endpoints {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.generateArm(ctx, &endpoints[i])
		}(i)
	}
	wg.Wait()

	result := schema.IPDGenerationResult{
		Success:   true,
		Results:   results,
		ProjectID: projectID,
	}
	result.Validation = s.validateAcrossArms(ctx, results)

	if projectID != "" {
		result.SavedToDatabase = s.persistResults(projectID, results)
	}

	return result
}

func (s *Service) generateArm(ctx context.Context, ep *EndpointRequest) schema.IPDArmResult {
	// points arrive pre-sorted from validation; re-sorting here would
	// silently mask upstream extraction bugs
	kmTimes, kmSurvival := splitPoints(ep.Points)
	atriskTimes, atriskN := splitRiskTable(ep.RiskTable)

	resp, err := s.reconstructor.Reconstruct(ctx, &reconstruct.Request{
		KMTimes:       kmTimes,
		KMSurvival:    kmSurvival,
		AtRiskTimes:   atriskTimes,
		AtRiskN:       atriskN,
		TotalPatients: totalPatients(ep.RiskTable),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"endpoint": ep.EndpointType,
			"arm":      ep.Arm,
			"error":    err,
		}).Warn("ipd reconstruction failed, falling back to simulated summary")
		return s.simulatedArm(ep)
	}

	records := make([]schema.IPDPatientRecord, len(resp.Data.Time))
	for i := range resp.Data.Time {
		records[i] = schema.IPDPatientRecord{
			PatientID: i,
			Time:      resp.Data.Time[i],
			Event:     resp.Data.Event[i],
			Arm:       ep.Arm,
		}
	}

	result := schema.IPDArmResult{
		Endpoint: ep.EndpointType,
		Arm:      ep.Arm,
		// not a true weighted median: the original picks the time at the
		// middle index of the collaborator-ordered array, kept as-is for
		// summary compatibility
		MedianFollowup: midpointTime(resp.Data.Time),
		NPatients:      resp.Summary.NPatients,
		Events:         resp.Summary.NEvents,
		NCensored:      resp.Summary.NCensored,
		Data:           records,
	}
	if result.NPatients == 0 {
		result.NPatients = len(records)
	}
	if result.Events == 0 {
		for _, r := range records {
			result.Events += r.Event
		}
	}
	if result.NCensored == 0 {
		result.NCensored = result.NPatients - result.Events
	}

	filePath := filepath.Join(s.outputDir, armFileName(ep.EndpointType, ep.Arm, "csv"))
	if err := writeIPDFile(filePath, records); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"path":   filePath,
			"error":  err,
		}).Error("write ipd csv")
	} else {
		result.FilePath = filePath
	}

	return result
}

// armFileName keeps the artifact naming convention downstream consumers
// key on: a csv extension marks a real reconstruction, parquet marks a
// simulated placeholder.
func armFileName(endpointType, arm, ext string) string {
	return fmt.Sprintf("ipd_EndpointType.%s_%s.%s", endpointType, arm, ext)
}

func splitPoints(points []schema.DataPoint) ([]float64, []float64) {
	times := make([]float64, len(points))
	survival := make([]float64, len(points))
	for i, p := range points {
		times[i] = p.Time
		survival[i] = p.Survival
	}
	return times, survival
}

func splitRiskTable(rows []schema.RiskTableRow) ([]float64, []int) {
	times := make([]float64, len(rows))
	atRisk := make([]int, len(rows))
	for i, r := range rows {
		times[i] = r.Time
		atRisk[i] = r.AtRisk
	}
	return times, atRisk
}

// totalPatients prefers the at-risk count at time zero, falls back to the
// table maximum, and finally to a default cohort of 100.
func totalPatients(rows []schema.RiskTableRow) int {
	max := 0
	for _, r := range rows {
		if r.Time == 0 {
			return r.AtRisk
		}
		if r.AtRisk > max {
			max = r.AtRisk
		}
	}
	if max == 0 {
		return defaultTotalPatients
	}
	return max
}

func midpointTime(times []float64) float64 {
	if len(times) == 0 {
		return 0
	}
	return times[len(times)/2]
}

// persistResults writes reconstructed records through the store, best
// effort. A failed arm is logged, handed to the background queue when one
// is wired, and surfaced only through the returned flag; already-computed
// in-memory results are never rolled back.
func (s *Service) persistResults(projectID string, results []schema.IPDArmResult) bool {
	attempted, failed := 0, 0
	for _, r := range results {
		if s.registry != nil && r.FilePath != "" {
			kind := filepath.Ext(r.FilePath)
			if err := s.registry.RegisterArtifact(projectID, r.Endpoint, r.Arm, kind[1:], r.FilePath); err != nil {
				log.WithFields(log.Fields{
					"prefix":   logPrefix,
					"endpoint": r.Endpoint,
					"arm":      r.Arm,
					"error":    err,
				}).Warn("register ipd artifact")
			}
		}

		// simulated arms carry no patient-level records to store, and an
		// unconfigured store is not an error
		if len(r.Data) == 0 || s.ipdStore == nil {
			continue
		}

		attempted++
		if err := s.ipdStore.ReplaceIPDRecords(projectID, r); err != nil {
			failed++
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"endpoint": r.Endpoint,
				"arm":      r.Arm,
				"error":    err,
			}).Error("persist ipd records")

			if s.enqueuer != nil {
				if err := s.enqueuer.EnqueueIPDPersist(projectID, r); err != nil {
					log.WithFields(log.Fields{
						"prefix": logPrefix,
						"error":  err,
					}).Warn("enqueue deferred ipd persistence")
				}
			}
		}
	}
	return attempted > 0 && failed == 0
}
