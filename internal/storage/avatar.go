// Package storage guarda os avatares de perfil num bucket S3.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/vincent-petithory/dataurl"

	"ultraai/internal/config"
	"ultraai/internal/logger"
)

const (
	// Limite de 2MB, igual ao validado no formulário do dashboard.
	MaxAvatarSize      = 2 << 20
	maxAvatarDimension = 256
)

var (
	ErrAvatarTooLarge    = errors.New("arquivo de avatar excede o limite de 2MB")
	ErrInvalidDataURL    = errors.New("data URL de avatar inválida")
	ErrUnsupportedFormat = errors.New("formato de imagem não suportado (use PNG, JPG ou GIF)")
)

type AvatarStore struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
	logger    logger.Logger
}

func NewAvatarStore(cfg config.StorageConfig) *AvatarStore {
	options := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
		options.UsePathStyle = true
	}

	return &AvatarStore{
		client:    s3.New(options),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		publicURL: cfg.PublicURL,
		logger:    logger.NewForComponent("AvatarStore"),
	}
}

// UploadFromDataURL recebe o avatar como data URL (como o formulário do
// dashboard envia), redimensiona para no máximo 256px e grava no bucket
// sob avatars/<userID>/. Retorna a URL pública durável do objeto.
func (s *AvatarStore) UploadFromDataURL(ctx context.Context, userID, rawDataURL string) (string, error) {
	data, contentType, ext, err := processDataURL(rawDataURL)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		s.logger.Error("Erro ao enviar avatar para o bucket", "error", err, "key", key)
		return "", fmt.Errorf("erro ao enviar avatar: %w", err)
	}

	url := s.objectURL(key)
	s.logger.Info("Avatar enviado", "userID", userID, "key", key)

	return url, nil
}

func (s *AvatarStore) objectURL(key string) string {
	if s.publicURL != "" {
		return strings.TrimRight(s.publicURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// processDataURL valida e normaliza a imagem antes do upload.
func processDataURL(rawDataURL string) ([]byte, string, string, error) {
	decoded, err := dataurl.DecodeString(rawDataURL)
	if err != nil {
		return nil, "", "", ErrInvalidDataURL
	}

	if len(decoded.Data) > MaxAvatarSize {
		return nil, "", "", ErrAvatarTooLarge
	}

	contentType := decoded.MediaType.ContentType()

	switch contentType {
	case "image/png":
		data, err := downscale(decoded.Data, png.Decode, func(buf *bytes.Buffer, img image.Image) error {
			return png.Encode(buf, img)
		})
		return data, contentType, ".png", err
	case "image/jpeg":
		data, err := downscale(decoded.Data, jpeg.Decode, func(buf *bytes.Buffer, img image.Image) error {
			return jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
		})
		return data, contentType, ".jpg", err
	case "image/gif":
		// GIF é mantido como está para não perder animação
		if _, err := gif.Decode(bytes.NewReader(decoded.Data)); err != nil {
			return nil, "", "", ErrUnsupportedFormat
		}
		return decoded.Data, contentType, ".gif", nil
	default:
		return nil, "", "", ErrUnsupportedFormat
	}
}

func downscale(data []byte, decode func(io.Reader) (image.Image, error), encode func(*bytes.Buffer, image.Image) error) ([]byte, error) {
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedFormat
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxAvatarDimension && bounds.Dy() <= maxAvatarDimension {
		return data, nil
	}

	thumbnail := resize.Thumbnail(maxAvatarDimension, maxAvatarDimension, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := encode(&buf, thumbnail); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
