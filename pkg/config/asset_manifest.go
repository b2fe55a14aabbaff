package config

import (
	"fmt"

	"github.com/decker502/horde-survivors/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// AssetManifest is data/assets.yaml: every asset key with its mesh and optional clips.
//
//	assets:
//	  player:
//	    file: models/Anne.glb
//	    scene: 0
//	    animations:
//	      idle: 3
//	      walk: 11
type AssetManifest struct {
	Assets map[string]AssetEntry `yaml:"assets"`
}

// AssetEntry describes one asset key. Animations maps an animation type name
// ("idle", "walk", "run", "take_hit", "die") to an animation index inside File.
// Keys without animations are static props.
type AssetEntry struct {
	File       string         `yaml:"file"`
	Scene      int            `yaml:"scene"`
	Animations map[string]int `yaml:"animations,omitempty"`
}

// LoadAssetManifest reads and validates an embedded manifest (e.g. "data/assets.yaml").
func LoadAssetManifest(path string) (*AssetManifest, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest %s: %w", path, err)
	}
	manifest, err := ParseAssetManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return manifest, nil
}

// ParseAssetManifest decodes and validates manifest YAML.
func ParseAssetManifest(data []byte) (*AssetManifest, error) {
	var manifest AssetManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse asset manifest YAML: %w", err)
	}
	if err := validateAssetManifest(&manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func validateAssetManifest(m *AssetManifest) error {
	if len(m.Assets) == 0 {
		return fmt.Errorf("%w: at least one asset is required", ErrInvalidConfig)
	}
	for key, entry := range m.Assets {
		if key == "" {
			return fmt.Errorf("%w: empty asset key", ErrInvalidConfig)
		}
		if entry.File == "" {
			return fmt.Errorf("%w: asset %s: file is required", ErrInvalidConfig, key)
		}
		if entry.Scene < 0 {
			return fmt.Errorf("%w: asset %s: scene index cannot be negative, got %d", ErrInvalidConfig, key, entry.Scene)
		}
		for anim, index := range entry.Animations {
			if index < 0 {
				return fmt.Errorf("%w: asset %s: animation %s index cannot be negative, got %d", ErrInvalidConfig, key, anim, index)
			}
		}
	}
	return nil
}
