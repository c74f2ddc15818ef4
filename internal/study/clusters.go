package study

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ramp-metrics/internal/model"
)

// ClusterList is the on-disk shape of the thermal cluster descriptions.
type ClusterList struct {
	StudyID   string          `json:"study_id,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty"` // ISO 8601 timestamp
	Clusters  []model.Cluster `json:"clusters"`
}

// LoadClusters loads cluster descriptions from a JSON file.
func LoadClusters(filePath string) (*ClusterList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read clusters file: %w", err)
	}
	var list ClusterList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse clusters file: %w", err)
	}
	return &list, nil
}

// SaveClusters saves cluster descriptions to a JSON file.
func SaveClusters(list *ClusterList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal clusters: %w", err)
	}
	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write clusters file: %w", err)
	}
	return nil
}

// GetDefaultClustersPath returns the default path for the clusters file.
func GetDefaultClustersPath() string {
	if path := os.Getenv("CLUSTERS_FILE"); path != "" {
		return path
	}
	return "./data/clusters.json"
}
