package picking

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/easydelivery/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileLoader implements domain.PickingLoader for YAML or JSON files.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader { return &FileLoader{} }

// Load reads a picking from path. JSON files are parsed as YAML documents.
func (l *FileLoader) Load(path string) (domain.Picking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Picking{}, fmt.Errorf("reading picking: %w", err)
	}

	var p domain.Picking
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.Picking{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if p.Carrier != nil && p.Carrier.DeliveryType != "" && !p.Carrier.DeliveryType.IsValid() {
		return domain.Picking{}, fmt.Errorf("picking %s: unknown delivery_type %q", p.Name, p.Carrier.DeliveryType)
	}

	return p, nil
}

// LoadCarriers reads a list of carriers from path.
func (l *FileLoader) LoadCarriers(path string) ([]domain.Carrier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading carriers: %w", err)
	}

	var carriers []domain.Carrier
	if err := yaml.Unmarshal(data, &carriers); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	for _, c := range carriers {
		if c.DeliveryType != "" && !c.DeliveryType.IsValid() {
			return nil, fmt.Errorf("carrier %s: unknown delivery_type %q", c.Name, c.DeliveryType)
		}
	}
	return carriers, nil
}

// SaveCarriers writes carriers to path as YAML.
func (l *FileLoader) SaveCarriers(path string, carriers []domain.Carrier) error {
	data, err := yaml.Marshal(carriers)
	if err != nil {
		return fmt.Errorf("encoding carriers: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
