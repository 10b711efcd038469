package schema

// IPDPatientRecord is one reconstructed pseudo-patient. Event 1 is an
// observed event, 0 is right-censored. Records are created once per arm and
// consumed, never mutated, by the modeling subsystem.
type IPDPatientRecord struct {
	PatientID int     `json:"patient_id" bson:"patient_id"`
	Time      float64 `json:"time" bson:"time"`
	Event     int     `json:"event" bson:"event"`
	Arm       string  `json:"arm" bson:"arm"`
}

type IPDArmStat struct {
	Arm       string `json:"arm" bson:"arm"`
	NPatients int    `json:"nPatients" bson:"n_patients"`
	Events    int    `json:"events" bson:"events"`
}

// IPDValidationMetrics holds the cross-arm comparison. Computed only when
// at least two arms carry reconstructed records.
type IPDValidationMetrics struct {
	HazardRatio   float64      `json:"hazardRatio" bson:"hazard_ratio"`
	HRLowerCI     float64      `json:"hrLowerCI" bson:"hr_lower_ci"`
	HRUpperCI     float64      `json:"hrUpperCI" bson:"hr_upper_ci"`
	PValue        float64      `json:"pValue" bson:"p_value"`
	ArmStats      []IPDArmStat `json:"armStats,omitempty" bson:"arm_stats,omitempty"`
	ReferenceArm  string       `json:"referenceArm,omitempty" bson:"reference_arm,omitempty"`
	ComparisonArm string       `json:"comparisonArm,omitempty" bson:"comparison_arm,omitempty"`
}

// IPDArmResult is the per-(endpoint, arm) outcome of reconstruction. A
// Simulated result carries summary numbers only, no patient-level Data, and
// a ".parquet" file path so degraded provenance is visible from the name.
type IPDArmResult struct {
	Endpoint       string             `json:"endpoint" bson:"endpoint"`
	Arm            string             `json:"arm" bson:"arm"`
	FilePath       string             `json:"filePath" bson:"file_path"`
	NPatients      int                `json:"nPatients" bson:"n_patients"`
	Events         int                `json:"events" bson:"events"`
	NCensored      int                `json:"nCensored" bson:"n_censored"`
	MedianFollowup float64            `json:"medianFollowup" bson:"median_followup"`
	Simulated      bool               `json:"simulated,omitempty" bson:"simulated,omitempty"`
	Data           []IPDPatientRecord `json:"data,omitempty" bson:"data,omitempty"`
}

// EndpointValidationFailure reports an endpoint/arm pair that was rejected
// by validation before reconstruction was attempted.
type EndpointValidationFailure struct {
	Endpoint string           `json:"endpoint"`
	Arm      string           `json:"arm"`
	Result   ValidationResult `json:"validation"`
}

type IPDGenerationResult struct {
	Success         bool                        `json:"success"`
	Results         []IPDArmResult              `json:"results"`
	Validation      *IPDValidationMetrics       `json:"validation,omitempty"`
	Rejected        []EndpointValidationFailure `json:"rejected,omitempty"`
	SavedToDatabase bool                        `json:"savedToDatabase"`
	ProjectID       string                      `json:"projectId,omitempty"`
}
