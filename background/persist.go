package background

import (
	"encoding/json"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"

	"github.com/oncurve/oncurve-api/schema"
)

// TaskPersistIPD retries an IPD dataset write that failed inline.
const TaskPersistIPD = "persist_ipd_records"

// Enqueuer hands persistence jobs to the machinery queue. It satisfies
// ipd.Enqueuer.
type Enqueuer struct {
	taskServer *machinery.Server
}

func NewEnqueuer(taskServer *machinery.Server) *Enqueuer {
	return &Enqueuer{
		taskServer: taskServer,
	}
}

func (e *Enqueuer) EnqueueIPDPersist(projectID string, result schema.IPDArmResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	_, err = e.taskServer.SendTask(&tasks.Signature{
		Name: TaskPersistIPD,
		Args: []tasks.Arg{
			{Type: "string", Value: projectID},
			{Type: "string", Value: string(payload)},
		},
	})
	return err
}

// PersistIPDRecords is the worker-side task body for TaskPersistIPD.
func (m *BackgroundManager) PersistIPDRecords(projectID, payload string) error {
	var result schema.IPDArmResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   "background",
		"project":  projectID,
		"endpoint": result.Endpoint,
		"arm":      result.Arm,
	}).Info("retrying deferred ipd persistence")

	return m.mongoStore.ReplaceIPDRecords(projectID, result)
}
