package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bimt/campushub/internal/pkg/logger"
)

// LocalStorage implements Storage on the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to returned references
}

// NewLocalStorage creates a LocalStorage rooted at basePath. Returned
// references are baseURL + "/" + folder + "/" + name.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// objectName builds a collision-free object name: {unixms}_{suffix}{ext}
func objectName(ext string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), suffix, ext)
}

// SaveDataURI decodes a base64 payload and stores it under folder, returning
// the public reference. Already-durable strings (anything that is not a data
// URI) are passed through untouched.
func (ls *LocalStorage) SaveDataURI(dataURI, folder string) (string, error) {
	if !IsDataURI(dataURI) {
		return dataURI, nil
	}

	data, mimeType, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	name := objectName(extForMIME(mimeType))
	dstPath, err := ls.ensurePath(folder, name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write object")
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	ref := ls.publicURL(folder, name)
	logger.Info().Str("folder", folder).Str("object", name).Int("bytes", len(data)).Msg("Object stored")
	return ref, nil
}

// SaveFile stores a multipart upload under folder and returns the public
// reference. A nil fileHeader stores nothing and returns an empty reference.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, folder string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	name := objectName(filepath.Ext(fileHeader.Filename))
	dstPath, err := ls.ensurePath(folder, name)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	ref := ls.publicURL(folder, name)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", name).Msg("File saved")
	return ref, nil
}

// Delete removes a previously stored object given its public reference.
// Unknown or already-removed objects are treated as deleted.
func (ls *LocalStorage) Delete(url string) error {
	if url == "" {
		return nil
	}

	folder := path.Base(path.Dir(url))
	name := path.Base(url)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid object reference: %s", url)
	}

	physicalPath := filepath.Join(ls.basePath, folder, name)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Object to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

func (ls *LocalStorage) ensurePath(folder, name string) (string, error) {
	dir := ls.basePath
	if folder != "" {
		dir = filepath.Join(ls.basePath, folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dir).Msg("Failed to create storage subdirectory")
			return "", fmt.Errorf("failed to create storage subdirectory: %w", err)
		}
	}
	return filepath.Join(dir, name), nil
}

func (ls *LocalStorage) publicURL(folder, name string) string {
	if folder != "" {
		return ls.baseURL + "/" + folder + "/" + name
	}
	return ls.baseURL + "/" + name
}
