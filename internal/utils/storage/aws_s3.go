package storage

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/internal/utils"
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	FolderScanImages     = "scan-images"
	FolderProgressPhotos = "progress-photos"

	MaxImageSize = 10 * 1024 * 1024 // 10MB
)

var AllowImage = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

type (
	AwsS3 interface {
		UploadBytes(data []byte, contentType string, folder string, ownerID string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		log.Fatalf("failed to load AWS config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

// UploadBytes stores the data under <folder>/<ownerID>/<uuid>.<ext> and
// returns the object key. Folders keep scan images and progress photos from
// ever colliding.
func (a *awsS3) UploadBytes(data []byte, contentType string, folder string, ownerID string) (string, error) {
	objectKey := fmt.Sprintf(
		"%s/%s/%s.%s",
		folder,
		ownerID,
		uuid.New().String(),
		ExtensionForMime(contentType),
	)

	_, err := a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	parts := strings.SplitN(link, ".amazonaws.com/", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// ValidateImage enforces the upload preconditions before any external call
// is made: non-empty, allow-listed MIME type, at most 10MB.
func ValidateImage(data []byte, mimeType string) error {
	if len(data) == 0 {
		return domain.ErrImageRequired
	}

	allowed := false
	for _, m := range AllowImage {
		if mimeType == m {
			allowed = true
			break
		}
	}
	if !allowed {
		return domain.ErrInvalidImageFormat
	}

	if len(data) > MaxImageSize {
		return domain.ErrImageTooLarge
	}

	return nil
}

func ExtensionForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}
