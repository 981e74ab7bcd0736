package xplainable

import "encoding/json"

// dump converts a typed API response into a plain JSON-shaped map, mirroring
// the wire representation. Used by the Dump methods below.
func dump(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}

// ModelSummary is a single entry in a team model listing.
type ModelSummary struct {
	ModelID       string `json:"model_id"`
	ModelName     string `json:"model_name"`
	ModelType     string `json:"model_type"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	VersionCount  int    `json:"version_count,omitempty"`
	ActiveVersion string `json:"active_version,omitempty"`
}

// Dump returns the plain-map representation of the summary.
func (m ModelSummary) Dump() map[string]any { return dump(m) }

// Model is the full detail record for a model.
type Model struct {
	ModelID     string         `json:"model_id"`
	ModelName   string         `json:"model_name"`
	ModelType   string         `json:"model_type"`
	Description string         `json:"description,omitempty"`
	TargetName  string         `json:"target_name,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	Versions    []ModelVersion `json:"versions,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Dump returns the plain-map representation of the model.
func (m Model) Dump() map[string]any { return dump(m) }

// ModelVersion is one trained version of a model.
type ModelVersion struct {
	VersionID      string `json:"version_id"`
	VersionNumber  int    `json:"version_number"`
	CreatedAt      string `json:"created_at,omitempty"`
	PartitionCount int    `json:"partition_count,omitempty"`
}

// Dump returns the plain-map representation of the version.
func (v ModelVersion) Dump() map[string]any { return dump(v) }

// Partition is a per-partition profile within a model version.
type Partition struct {
	PartitionID string         `json:"partition_id"`
	Partition   string         `json:"partition"`
	Profile     map[string]any `json:"profile,omitempty"`
}

// Dump returns the plain-map representation of the partition.
func (p Partition) Dump() map[string]any { return dump(p) }

// Deployment is a deployed model version.
type Deployment struct {
	DeploymentID   string `json:"deployment_id"`
	ModelVersionID string `json:"model_version_id"`
	Active         bool   `json:"active"`
	Location       string `json:"location,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// Dump returns the plain-map representation of the deployment.
func (d Deployment) Dump() map[string]any { return dump(d) }

// Preprocessor is a stored preprocessing pipeline.
type Preprocessor struct {
	PreprocessorID string         `json:"preprocessor_id"`
	Name           string         `json:"preprocessor_name"`
	Description    string         `json:"description,omitempty"`
	Stages         []map[string]any `json:"stages,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
}

// Dump returns the plain-map representation of the preprocessor.
func (p Preprocessor) Dump() map[string]any { return dump(p) }

// Collection groups saved scenarios for a model.
type Collection struct {
	CollectionID string `json:"collection_id"`
	ModelID      string `json:"model_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Dump returns the plain-map representation of the collection.
func (c Collection) Dump() map[string]any { return dump(c) }

// Dataset is a sample or team dataset available on the platform.
type Dataset struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rows        int    `json:"rows,omitempty"`
	Columns     int    `json:"columns,omitempty"`
}

// Dump returns the plain-map representation of the dataset.
func (d Dataset) Dump() map[string]any { return dump(d) }

// VersionInfo reports platform and client version details.
type VersionInfo struct {
	APIVersion    string `json:"api_version"`
	ServerVersion string `json:"server_version,omitempty"`
	ClientVersion string `json:"client_version,omitempty"`
}

// Dump returns the plain-map representation of the version info.
func (v VersionInfo) Dump() map[string]any { return dump(v) }

// Report is a generated natural-language analysis of a model version.
type Report struct {
	ReportID string `json:"report_id,omitempty"`
	ModelID  string `json:"model_id"`
	Content  string `json:"content"`
	Format   string `json:"format,omitempty"`
}

// Dump returns the plain-map representation of the report.
func (r Report) Dump() map[string]any { return dump(r) }
