package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"vendorcheck-backend/shared/config"
)

// LogoService stores company logos in MinIO, one object per supplier.
type LogoService struct {
	client       *minio.Client
	bucketName   string
	publicURL    string
	maxFileSize  int64
	allowedTypes map[string]bool
}

// validationError marks upload rejections the caller can show to the user.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func IsValidationError(err error) bool {
	var ve *validationError
	return errors.As(err, &ve)
}

func NewLogoService() (*LogoService, error) {
	cfg := config.GetConfig()

	parsedURL, err := url.Parse(cfg.MinIOServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO endpoint: %v", err)
	}

	endpoint := parsedURL.Host
	useSSL := cfg.MinIOUseSSL

	log.Printf("🔗 Connecting to MinIO: %s (SSL: %v)", endpoint, useSSL)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIORootUser, cfg.MinIORootPassword, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	maxMB, err := strconv.ParseInt(cfg.LogoMaxFileSizeMB, 10, 64)
	if err != nil || maxMB <= 0 {
		maxMB = 5
	}

	allowed := make(map[string]bool)
	for _, ext := range strings.Split(cfg.LogoAllowedTypes, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" {
			allowed[ext] = true
		}
	}

	service := &LogoService{
		client:       minioClient,
		bucketName:   cfg.MinIOBucketName,
		publicURL:    strings.TrimRight(cfg.MinIOServerURL, "/"),
		maxFileSize:  maxMB * 1024 * 1024,
		allowedTypes: allowed,
	}

	if err := service.initializeBucket(); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *LogoService) initializeBucket() error {
	ctx := context.Background()

	log.Printf("🪣 Checking bucket: %s", s.bucketName)

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("✅ MinIO bucket '%s' created successfully", s.bucketName)
	} else {
		log.Printf("✅ MinIO bucket '%s' already exists", s.bucketName)
	}

	return nil
}

// UploadLogo validates and stores a supplier's logo, replacing any previous
// one, and returns the public object URL.
func (s *LogoService) UploadLogo(ctx context.Context, supplierID uuid.UUID, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.allowedTypes[ext] {
		return "", &validationError{msg: fmt.Sprintf("file type %s is not allowed", ext)}
	}
	if file.Size > s.maxFileSize {
		return "", &validationError{msg: fmt.Sprintf("file exceeds the %d MB limit", s.maxFileSize/(1024*1024))}
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	// A fixed key per supplier makes every upload an overwrite, so stale
	// logos never accumulate.
	objectKey := fmt.Sprintf("logos/%s%s", supplierID, ext)

	log.Printf("⬆️ Uploading logo to: %s/%s (size: %d bytes)", s.bucketName, objectKey, file.Size)

	_, err = s.client.PutObject(ctx, s.bucketName, objectKey, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %v", err)
	}

	log.Printf("✅ Logo for supplier %s uploaded successfully", supplierID)
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucketName, objectKey), nil
}

// RemoveLogo deletes a supplier's stored logo.
func (s *LogoService) RemoveLogo(ctx context.Context, supplierID uuid.UUID, logoURL string) error {
	idx := strings.Index(logoURL, "/logos/")
	if idx < 0 {
		return fmt.Errorf("unrecognized logo URL: %s", logoURL)
	}
	objectKey := logoURL[idx+1:]

	err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove logo: %v", err)
	}

	log.Printf("🗑️ Logo removed for supplier %s", supplierID)
	return nil
}

// TestConnection verifies MinIO reachability at startup.
func (s *LogoService) TestConnection() error {
	ctx := context.Background()

	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %v", err)
	}

	log.Printf("✅ MinIO connection successful. Found %d buckets", len(buckets))
	return nil
}
