package services

import (
	"fmt"

	"campus-news-api/config"
	"campus-news-api/models"
)

const bytesPerMB = 1024 * 1024

type UploadService interface {
	Sign(req models.UploadSignRequest) (*models.UploadSignResponse, error)
}

type uploadService struct {
	cfg config.UploadConfig
}

func NewUploadService(cfg config.UploadConfig) UploadService {
	return &uploadService{cfg: cfg}
}

// Sign checks the declared file metadata against the configured limits and
// hands back the upload parameters the client needs. No file bytes pass
// through this API; the client uploads directly to the media host.
func (s *uploadService) Sign(req models.UploadSignRequest) (*models.UploadSignResponse, error) {
	violations := map[string][]string{}

	maxBytes := s.cfg.MaxSizeMB * bytesPerMB
	if req.FileSize > maxBytes {
		violations["file_size"] = append(violations["file_size"],
			fmt.Sprintf("file exceeds the %dMB limit", s.cfg.MaxSizeMB))
	}

	allowed := false
	for _, t := range s.cfg.AllowedTypes {
		if req.ContentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		violations["content_type"] = append(violations["content_type"],
			fmt.Sprintf("content type %q is not allowed", req.ContentType))
	}

	if len(violations) > 0 {
		return nil, models.ValidationFailed(violations)
	}

	return &models.UploadSignResponse{
		UploadPreset: s.cfg.Preset,
		MaxFileSize:  maxBytes,
		AllowedTypes: s.cfg.AllowedTypes,
	}, nil
}
