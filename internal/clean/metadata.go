package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type encodingDoc struct {
	RunID     string      `yaml:"run_id"`
	CreatedAt time.Time   `yaml:"created_at"`
	Encodings EncodingMap `yaml:"encodings"`
}

type scalingDoc struct {
	RunID     string        `yaml:"run_id"`
	CreatedAt time.Time     `yaml:"created_at"`
	Scaling   ScalingParams `yaml:"scaling"`
}

// MetadataPaths returns the sidecar file names for a cleaned dataset path,
// e.g. data_cleaned.csv -> data_cleaned_encoding_map.yaml and
// data_cleaned_scaling_params.yaml.
func MetadataPaths(cleanedPath string) (encodingPath, scalingPath string) {
	base := strings.TrimSuffix(cleanedPath, filepath.Ext(cleanedPath))
	return base + "_encoding_map.yaml", base + "_scaling_params.yaml"
}

// SaveMetadata writes the encoding map and scaling parameters as YAML
// documents beside the cleaned dataset, keyed by the run id so a cleaned
// table can always be traced to the transformation that produced it.
func (r *Result) SaveMetadata(cleanedPath string) error {
	encPath, scalePath := MetadataPaths(cleanedPath)
	now := time.Now()

	if len(r.Encodings) > 0 {
		doc := encodingDoc{RunID: r.RunID, CreatedAt: now, Encodings: r.Encodings}
		b, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal encoding map: %w", err)
		}
		if err := os.WriteFile(encPath, b, 0o644); err != nil {
			return fmt.Errorf("write encoding map: %w", err)
		}
	}
	if len(r.Scaling) > 0 {
		doc := scalingDoc{RunID: r.RunID, CreatedAt: now, Scaling: r.Scaling}
		b, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal scaling params: %w", err)
		}
		if err := os.WriteFile(scalePath, b, 0o644); err != nil {
			return fmt.Errorf("write scaling params: %w", err)
		}
	}
	return nil
}

// LoadEncodingMap reads back an encoding map document.
func LoadEncodingMap(path string) (EncodingMap, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encoding map: %w", err)
	}
	var doc encodingDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse encoding map: %w", err)
	}
	return doc.Encodings, nil
}

// LoadScalingParams reads back a scaling parameters document.
func LoadScalingParams(path string) (ScalingParams, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaling params: %w", err)
	}
	var doc scalingDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse scaling params: %w", err)
	}
	return doc.Scaling, nil
}
