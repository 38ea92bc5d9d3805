package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
)

// maxUploadSize limita o tamanho aceito por upload (10 MB).
const maxUploadSize = 10 << 20

// UploadHandler trata o envio de arquivos (fotos de pedidos, artes de bordado)
// para o storage externo.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Enviar arquivo vinculado a uma entidade (código do pedido/orçamento)
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        code  path      string  true  "Código da entidade (ex.: PED-000001)"
// @Param        file  formData  file    true  "Arquivo"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/uploads/{code} [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "código da entidade é obrigatório"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'file' é obrigatório"})
	}
	if fileHeader.Size > maxUploadSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "arquivo acima de 10 MB"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	out, err := h.uc.Upload(c.Context(), code, fileHeader.Filename, contentType, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
