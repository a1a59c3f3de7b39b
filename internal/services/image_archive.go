package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gamelibrary-backend/internal/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ImageArchiver mirrors game images into object storage. The database copy
// of the image stays authoritative; archive errors never fail a request.
type ImageArchiver interface {
	Archive(ctx context.Context, gameID uint, image string) error
	Remove(ctx context.Context, gameID uint) error
	// PresignedURL returns "" when nothing is archived for the game.
	PresignedURL(ctx context.Context, gameID uint) (string, error)
}

type noopArchiver struct{}

func (noopArchiver) Archive(context.Context, uint, string) error { return nil }

func (noopArchiver) Remove(context.Context, uint) error { return nil }

func (noopArchiver) PresignedURL(context.Context, uint) (string, error) { return "", nil }

var ErrImageNotBase64 = errors.New("image is not valid base64")

type MinIOArchiver struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	logger *logrus.Logger
}

func NewMinIOArchiver(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOArchiver, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	archiver := &MinIOArchiver{
		client: minioClient,
		bucket: cfg.BucketName,
		expiry: cfg.URLExpiry,
		logger: logger,
	}
	if archiver.expiry <= 0 {
		archiver.expiry = 15 * time.Minute
	}

	if err := archiver.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return archiver, nil
}

func (a *MinIOArchiver) ensureBucket(ctx context.Context, region string) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	a.logger.WithField("bucket", a.bucket).Info("Bucket created successfully")
	return nil
}

// Archive uploads the decoded image as games/<id>/<random><ext> and drops
// any older object for the same game. An empty image clears the archive.
func (a *MinIOArchiver) Archive(ctx context.Context, gameID uint, image string) error {
	if strings.TrimSpace(image) == "" {
		return a.Remove(ctx, gameID)
	}

	data, err := decodeImage(image)
	if err != nil {
		return err
	}

	mime := mimetype.Detect(data)
	objectName := fmt.Sprintf("%s%s%s", objectPrefix(gameID), uuid.New().String()[:8], mime.Extension())

	_, err = a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mime.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	if err := a.removeExcept(ctx, gameID, objectName); err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"objectPath":  objectName,
		"contentType": mime.String(),
		"size":        len(data),
	}).Debug("Game image archived")
	return nil
}

func (a *MinIOArchiver) Remove(ctx context.Context, gameID uint) error {
	return a.removeExcept(ctx, gameID, "")
}

func (a *MinIOArchiver) removeExcept(ctx context.Context, gameID uint, keep string) error {
	objects := a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    objectPrefix(gameID),
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return fmt.Errorf("failed to list archived images: %w", object.Err)
		}
		if object.Key == keep {
			continue
		}
		if err := a.client.RemoveObject(ctx, a.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}
		a.logger.WithField("objectPath", object.Key).Debug("Archived image deleted")
	}
	return nil
}

func (a *MinIOArchiver) PresignedURL(ctx context.Context, gameID uint) (string, error) {
	var key string
	objects := a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    objectPrefix(gameID),
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return "", fmt.Errorf("failed to list archived images: %w", object.Err)
		}
		if key == "" {
			key = object.Key
		}
	}
	if key == "" {
		return "", nil
	}

	presigned, err := a.client.PresignedGetObject(ctx, a.bucket, key, a.expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return presigned.String(), nil
}

func objectPrefix(gameID uint) string {
	return fmt.Sprintf("games/%d/", gameID)
}

// decodeImage accepts standard or URL-safe base64, padded or not, with an
// optional data URI prefix.
func decodeImage(image string) ([]byte, error) {
	payload := strings.TrimSpace(image)
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx != -1 {
			payload = payload[idx+1:]
		}
	}

	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if data, err := enc.DecodeString(payload); err == nil {
			return data, nil
		}
	}
	return nil, ErrImageNotBase64
}
