package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
)

// StorageClient é o porto para o serviço externo de arquivos (anexos de
// pedidos, artes de bordado, comprovantes).
type StorageClient interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (publicURL string, err error)
}

// UploadUseCase envia arquivos para o storage externo sob um caminho
// determinístico por entidade.
type UploadUseCase struct {
	storage StorageClient
}

// NewUploadUseCase constrói o caso de uso.
func NewUploadUseCase(storage StorageClient) *UploadUseCase {
	return &UploadUseCase{storage: storage}
}

// Upload grava o arquivo em {entityCode}/{timestamp}-{filename} e devolve
// o caminho e a URL pública.
func (uc *UploadUseCase) Upload(ctx context.Context, entityCode, filename, contentType string, data []byte) (*dto.UploadResponse, error) {
	if entityCode == "" || filename == "" || len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	path := fmt.Sprintf("%s/%d-%s", entityCode, time.Now().UnixMilli(), sanitizeFilename(filename))
	url, err := uc.storage.Upload(ctx, path, contentType, data)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{Path: path, PublicURL: url}, nil
}

// sanitizeFilename descarta diretórios e troca espaços por underscore.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.ReplaceAll(base, " ", "_")
}
