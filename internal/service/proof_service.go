package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const sniffLen = 512

// allowedProofTypes maps accepted content types to the stored file extension.
var allowedProofTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// ProofUploadService implements ports.ProofService on top of a ProofStore.
type ProofUploadService struct {
	store   ports.ProofStore
	prefix  string
	maxSize int64
	log     zerolog.Logger
}

func NewProofUploadService(store ports.ProofStore, prefix string, maxSize int64, log zerolog.Logger) *ProofUploadService {
	return &ProofUploadService{
		store:   store,
		prefix:  strings.Trim(prefix, "/"),
		maxSize: maxSize,
		log:     log,
	}
}

// Upload checks the declared size and the sniffed content type, then stores
// the file under prefix/owner/random-name and returns its reference.
func (s *ProofUploadService) Upload(ctx context.Context, req ports.UploadProofRequest) (string, error) {
	if req.Size <= 0 {
		return "", apperror.Validation("proof file is empty")
	}
	if req.Size > s.maxSize {
		return "", apperror.Validation(fmt.Sprintf("proof file exceeds %d bytes", s.maxSize))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(req.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", apperror.Validation("could not read proof file")
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedProofTypes[contentType]
	if !ok {
		return "", apperror.Validation(fmt.Sprintf("unsupported proof type %q", contentType))
	}

	key := path.Join(s.prefix, req.OwnerID.String(), uuid.NewString()+ext)
	body := io.MultiReader(bytes.NewReader(head), req.Body)

	ref, err := s.store.Put(ctx, key, contentType, body, req.Size)
	if err != nil {
		return "", apperror.FromStorage("store proof", err)
	}

	s.log.Info().
		Str("owner_id", req.OwnerID.String()).
		Str("key", key).
		Str("filename", req.Filename).
		Str("content_type", contentType).
		Int64("size", req.Size).
		Msg("proof uploaded")
	return ref, nil
}
