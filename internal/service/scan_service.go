package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fitguide/fitness-app/internal/ai"
	"fitguide/fitness-app/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MaxScanImageSize is the largest photo accepted for analysis.
const MaxScanImageSize = 5 << 20

var (
	ErrUnsupportedImage = errors.New("image must be a JPEG, PNG or WebP of at most 5MB")
	ErrScanForbidden    = errors.New("scan object does not belong to this user")
	ErrScanNotFound     = errors.New("scan image not found, upload it first")
	ErrScanUnavailable  = errors.New("scan uploads are not configured")
)

var scanExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// UploadTarget is where the client PUTs a photo before asking for analysis.
type UploadTarget struct {
	ObjectKey string    `json:"objectKey"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ScanService interface {
	CreateUpload(ctx context.Context, userID, contentType string) (*UploadTarget, error)
	// AnalyzeObject analyzes an uploaded photo and deletes it afterwards.
	AnalyzeObject(ctx context.Context, userID, objectKey string) (ai.Result, error)
	AnalyzeImage(ctx context.Context, data []byte) (ai.Result, error)
}

type scanService struct {
	fileStorage storage.FileStorage
	coach       *ai.Coach
}

// NewScanService accepts a nil fileStorage; only raw image analysis works then.
func NewScanService(fileStorage storage.FileStorage, coach *ai.Coach) ScanService {
	return &scanService{
		fileStorage: fileStorage,
		coach:       coach,
	}
}

func scanPrefix(userID string) string {
	return "scans/" + userID + "/"
}

func (s *scanService) CreateUpload(ctx context.Context, userID, contentType string) (*UploadTarget, error) {
	if s.fileStorage == nil {
		return nil, ErrScanUnavailable
	}
	ext, ok := scanExtensions[strings.ToLower(contentType)]
	if !ok {
		return nil, ErrUnsupportedImage
	}

	objectKey := fmt.Sprintf("%s%s.%s", scanPrefix(userID), uuid.NewString(), ext)
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, strings.ToLower(contentType), storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("create scan upload: %w", err)
	}

	return &UploadTarget{
		ObjectKey: objectKey,
		UploadURL: url,
		ExpiresAt: time.Now().Add(storage.DefaultPresignedURLExpiry).UTC(),
	}, nil
}

func (s *scanService) AnalyzeObject(ctx context.Context, userID, objectKey string) (ai.Result, error) {
	if s.fileStorage == nil {
		return ai.Result{}, ErrScanUnavailable
	}
	if !strings.HasPrefix(objectKey, scanPrefix(userID)) {
		return ai.Result{}, ErrScanForbidden
	}

	obj, err := s.fileStorage.GetObject(ctx, objectKey)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrObjectNotFound):
			return ai.Result{}, ErrScanNotFound
		case errors.Is(err, storage.ErrObjectTooLarge):
			return ai.Result{}, ErrUnsupportedImage
		}
		return ai.Result{}, fmt.Errorf("fetch scan %s: %w", objectKey, err)
	}

	res, err := s.AnalyzeImage(ctx, obj.Data)
	if delErr := s.fileStorage.DeleteObject(ctx, objectKey); delErr != nil {
		log.Warnf("scan %s: cleanup failed: %s", objectKey, delErr)
	}
	return res, err
}

func (s *scanService) AnalyzeImage(ctx context.Context, data []byte) (ai.Result, error) {
	if len(data) == 0 || len(data) > MaxScanImageSize {
		return ai.Result{}, ErrUnsupportedImage
	}
	// Sniff rather than trust the declared content type.
	mimeType := http.DetectContentType(data)
	if _, ok := scanExtensions[mimeType]; !ok {
		return ai.Result{}, ErrUnsupportedImage
	}
	return s.coach.AnalyzeEquipment(ctx, ai.Image{MIMEType: mimeType, Data: data}), nil
}
