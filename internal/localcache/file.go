package localcache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fitguide/fitness-app/internal/domain"
)

// FileCache keeps each key in its own file under a directory.
type FileCache struct {
	dir string
}

var _ Cache = (*FileCache)(nil)

func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *FileCache) read(key string) ([]byte, error) {
	data, err := os.ReadFile(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// write replaces the file atomically so a crash never leaves half a list.
func (c *FileCache) write(key string, data []byte) error {
	tmp, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path(key))
}

func (c *FileCache) LoadLogs(_ context.Context) ([]domain.WorkoutLog, error) {
	data, err := c.read(LogsKey)
	if err != nil {
		return nil, fmt.Errorf("read logs: %w", err)
	}
	return decodeLogs(data)
}

func (c *FileCache) SaveLogs(_ context.Context, logs []domain.WorkoutLog) error {
	data, err := encodeLogs(logs)
	if err != nil {
		return err
	}
	if err := c.write(LogsKey, data); err != nil {
		return fmt.Errorf("write logs: %w", err)
	}
	return nil
}

func (c *FileCache) DeviceID(_ context.Context) (string, error) {
	data, err := c.read(DeviceIDKey)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (c *FileCache) SetDeviceID(_ context.Context, id string) error {
	if err := c.write(DeviceIDKey, []byte(id)); err != nil {
		return fmt.Errorf("write device id: %w", err)
	}
	return nil
}

func (c *FileCache) ClearDeviceID(_ context.Context) error {
	err := os.Remove(c.path(DeviceIDKey))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove device id: %w", err)
	}
	return nil
}
