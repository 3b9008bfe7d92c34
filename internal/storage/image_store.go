package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/dmoura-dev/barber-booking-api/internal/config"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
)

const (
	maxImageWidth = 1024
	webpQuality   = 80
)

// ImageStore converte a foto de um serviço para WebP e sobe para o S3.
// Quando o bucket não está configurado o store é nil e o upload é recusado.
type ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &ImageStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func (s *ImageStore) UploadServiceImage(
	ctx context.Context,
	serviceID uuid.UUID,
	r io.Reader,
) (string, error) {

	if s == nil {
		return "", httperr.ErrBusiness("uploads_disabled")
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("services/%s.webp", serviceID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key), nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key), nil
}

// shrink limita a largura para não guardar originais de câmera inteiros
func shrink(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return img
	}

	height := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
