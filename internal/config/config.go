// Package config loads the YAML configuration shared by the rinchi
// commands and opens the identifier and store it describes.
//
// Example:
//
//	adapter: grpc
//	grpc:
//	  target: 127.0.0.1:7780
//	  timeout: 5s
//	mode: strict
//	parallel: 4
//	store_dirs:
//	  - /var/lib/rinchi
//	ipfs:
//	  enabled: true
//
// Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"xdao.co/rinchi/compliance"
	"xdao.co/rinchi/identifier"
	"xdao.co/rinchi/identifier/grpcid"
	"xdao.co/rinchi/rinchi"
	"xdao.co/rinchi/storage"
	"xdao.co/rinchi/storage/ipfs"
	"xdao.co/rinchi/storage/localfs"
)

const (
	AdapterLiteral = "literal"
	AdapterExec    = "exec"
	AdapterGRPC    = "grpc"
)

type Config struct {
	Adapter   string     `yaml:"adapter,omitempty"`
	Exec      ExecConfig `yaml:"exec,omitempty"`
	GRPC      GRPCConfig `yaml:"grpc,omitempty"`
	Mode      string     `yaml:"mode,omitempty"`
	Parallel  int        `yaml:"parallel,omitempty"`
	StoreDirs []string   `yaml:"store_dirs,omitempty"`
	IPFS      IPFSConfig `yaml:"ipfs,omitempty"`
}

type ExecConfig struct {
	Bin  string   `yaml:"bin,omitempty"`
	Args []string `yaml:"args,omitempty"`
}

// IPFSConfig adds the local Kubo repository as an archive.
type IPFSConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Bin     string `yaml:"bin,omitempty"`
	// Repo sets IPFS_PATH for the ipfs commands; empty keeps the default repo.
	Repo string `yaml:"repo,omitempty"`
}

type GRPCConfig struct {
	Target      string        `yaml:"target,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	MaxMsgBytes int           `yaml:"max_msg_bytes,omitempty"`
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("config: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Adapter {
	case "", AdapterLiteral, AdapterExec:
	case AdapterGRPC:
		if c.GRPC.Target == "" {
			return errors.New("config: grpc adapter requires grpc.target")
		}
	default:
		return fmt.Errorf("config: invalid adapter %q", c.Adapter)
	}
	if _, err := compliance.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("config: parallel must be >= 0, got %d", c.Parallel)
	}
	if c.GRPC.Timeout < 0 {
		return errors.New("config: grpc.timeout must not be negative")
	}
	seen := make(map[string]struct{}, len(c.StoreDirs))
	for _, d := range c.StoreDirs {
		if d == "" {
			return errors.New("config: empty store dir")
		}
		if _, ok := seen[d]; ok {
			return fmt.Errorf("config: duplicate store dir %q", d)
		}
		seen[d] = struct{}{}
	}
	return nil
}

// ComplianceMode returns the parsed mode; Validate must have passed.
func (c Config) ComplianceMode() compliance.Mode {
	m, _ := compliance.ParseMode(c.Mode)
	return m
}

// OpenIdentifier builds the configured adapter. The returned close function
// may be nil.
func (c Config) OpenIdentifier(log *zap.Logger) (rinchi.Identifier, func() error, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	switch c.Adapter {
	case "", AdapterLiteral:
		return identifier.Literal{}, nil, nil
	case AdapterExec:
		return identifier.NewExec(identifier.ExecOptions{Bin: c.Exec.Bin, Args: c.Exec.Args, Logger: log}), nil, nil
	default:
		client, err := grpcid.Dial(c.GRPC.Target, grpcid.DialOptions{MaxMsgBytes: c.GRPC.MaxMsgBytes})
		if err != nil {
			return nil, nil, err
		}
		client.Timeout = c.GRPC.Timeout
		return client, client.Close, nil
	}
}

// OpenStore opens the configured archives: every store directory, then the
// IPFS repository when enabled. It returns nil when none are configured.
// More than one archive yields a replicating store that writes to all of
// them and reads in that order.
func (c Config) OpenStore(log *zap.Logger) (storage.Store, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	named := make([]storage.Named, 0, len(c.StoreDirs)+1)
	for _, d := range c.StoreDirs {
		s, err := localfs.New(d)
		if err != nil {
			return nil, err
		}
		named = append(named, storage.Named{Name: d, Store: s})
	}
	if c.IPFS.Enabled {
		var env []string
		if c.IPFS.Repo != "" {
			env = append(os.Environ(), "IPFS_PATH="+c.IPFS.Repo)
		}
		named = append(named, storage.Named{Name: "ipfs", Store: ipfs.New(ipfs.Options{Bin: c.IPFS.Bin, Env: env, Logger: log})})
	}

	switch len(named) {
	case 0:
		return nil, nil
	case 1:
		return named[0].Store, nil
	}
	return storage.Replicating{Stores: named}, nil
}
