package service

import (
	"context"
	"fmt"
	"io"

	"marketplace-backend/internal/client"
	"marketplace-backend/internal/dto"
)

const defaultUploadFolder = "marketplace"

// UploadService hands out signatures for direct browser uploads and relays
// server-side uploads to the media host.
type UploadService interface {
	Signature(folder string) *dto.UploadSignature
	UploadDirect(ctx context.Context, filename string, content io.Reader, folder string) (*dto.UploadResult, error)
}

type uploadServiceImpl struct {
	media client.MediaClient
}

func NewUploadService(media client.MediaClient) UploadService {
	return &uploadServiceImpl{
		media: media,
	}
}

func (s *uploadServiceImpl) Signature(folder string) *dto.UploadSignature {
	if folder == "" {
		folder = defaultUploadFolder
	}
	sig := s.media.SignUploadRequest(folder)
	return &dto.UploadSignature{
		Signature: sig.Signature,
		Timestamp: sig.Timestamp,
		APIKey:    sig.APIKey,
		CloudName: sig.CloudName,
	}
}

func (s *uploadServiceImpl) UploadDirect(ctx context.Context, filename string, content io.Reader, folder string) (*dto.UploadResult, error) {
	if folder == "" {
		folder = defaultUploadFolder
	}
	result, err := s.media.Upload(ctx, filename, content, folder)
	if err != nil {
		return nil, fmt.Errorf("media upload: %w", err)
	}
	return &dto.UploadResult{
		URL:      result.URL,
		PublicID: result.PublicID,
	}, nil
}
