// Package config loads the optional YAML settings file. Values present in
// the file override built-in defaults; explicit command-line flags override
// both.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the command-line options. Pointer fields distinguish "absent
// from the file" from a zero value.
type File struct {
	Duration      *float64 `yaml:"duration"`
	PicThreshold  *float64 `yaml:"pic_th"`
	PixThreshold  *float64 `yaml:"pix_th"`
	SceneLimit    *float64 `yaml:"scene_limit"`
	IntroLimit    *float64 `yaml:"intro_limit"`
	Merge         *string  `yaml:"merge"`
	White         *bool    `yaml:"white"`
	Policy        *string  `yaml:"policy"`
	DeferLimit    *float64 `yaml:"defer_limit"`
	MaxTransition *float64 `yaml:"max_transition"`
	AutoAdjust    *bool    `yaml:"auto_adjust"`
	OutDir        *string  `yaml:"out"`
	Catalog       *string  `yaml:"catalog"`

	FFmpegPath  *string `yaml:"ffmpeg_path"`
	FFprobePath *string `yaml:"ffprobe_path"`
}

// Load reads the settings file at path. When explicit is false a missing
// file is not an error; the caller gets an empty File.
func Load(path string, explicit bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}
